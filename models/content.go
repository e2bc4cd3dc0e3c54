package models

// ServiceIcon identifies one of the fixed set of icons the web client renders
// next to a service. The catalog is validated against this set at startup so
// an unknown icon is a build-time mistake, not a runtime fallback.
type ServiceIcon string

const (
	IconDumbbell   ServiceIcon = "Dumbbell"
	IconHeartPulse ServiceIcon = "HeartPulse"
	IconZap        ServiceIcon = "Zap"
	IconUsers      ServiceIcon = "Users"
	IconTrophy     ServiceIcon = "Trophy"
)

// KnownServiceIcons is the exhaustive icon set.
var KnownServiceIcons = map[ServiceIcon]bool{
	IconDumbbell:   true,
	IconHeartPulse: true,
	IconZap:        true,
	IconUsers:      true,
	IconTrophy:     true,
}

// Service is a bookable service offering.
type Service struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        ServiceIcon `json:"icon"`
}

// Trainer is a staff profile shown on the site and offered at booking time.
type Trainer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

// Program is a featured training program.
type Program struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Testimonial is a member quote for the marketing pages.
type Testimonial struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// PricingPlan is a membership tier.
type PricingPlan struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	AmountUSD int64    `json:"-"` // cents, used for payment intents
	Features  []string `json:"features"`
	IsPopular bool     `json:"isPopular,omitempty"`
}

// ContactRequest is the contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
