package models

// PaymentIntentRequest asks for a Stripe PaymentIntent for a membership plan.
type PaymentIntentRequest struct {
	PlanID int `json:"planId" binding:"required"`
}

// PaymentIntentResponse carries the client secret the web client confirms with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	PlanName     string `json:"planName"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
