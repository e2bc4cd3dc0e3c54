package payment

import (
	"context"
	"fmt"

	"samfit/models"
	"samfit/services/content"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentCreator creates a payment intent for an amount in cents. Satisfied by
// the Stripe client in production.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// PaymentService issues payment intents for membership plans.
type PaymentService interface {
	CreatePlanIntent(ctx context.Context, uid string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Logger       *zap.Logger
	CreateIntent IntentCreator
}

// NewPaymentService wires the Stripe payment intent API.
func NewPaymentService(logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{
		Logger:       logger,
		CreateIntent: paymentintent.New,
	}
}

// CreatePlanIntent creates a Stripe PaymentIntent for the selected membership
// plan and returns the client secret the web client confirms with.
func (s *DefaultPaymentService) CreatePlanIntent(ctx context.Context, uid string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	plan := content.PlanByID(req.PlanID)
	if plan == nil {
		return nil, fmt.Errorf("unknown pricing plan: %d", req.PlanID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(plan.AmountUSD),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("uid", uid)
	params.AddMetadata("plan", plan.Name)

	intent, err := s.CreateIntent(params)
	if err != nil {
		s.Logger.Error("CreatePlanIntent failed", zap.String("plan", plan.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("Payment intent created", zap.String("plan", plan.Name), zap.Int64("amount", plan.AmountUSD))
	return &models.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		PlanName:     plan.Name,
		Amount:       plan.AmountUSD,
		Currency:     string(stripe.CurrencyUSD),
	}, nil
}
