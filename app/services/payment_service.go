package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/stripe"
)

// settlementCurrency is the implicit currency for every checkout.
const settlementCurrency = "usd"

var (
	// ErrInvalidAmount rejects non-positive checkout amounts before the
	// processor is called.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrPaymentProvider wraps processor failures; nothing was written.
	ErrPaymentProvider = errors.New("payment provider error")

	// ErrCartCleanup wraps a cart-delete failure after the payment record
	// was already written. The payment stands; only the cleanup failed.
	ErrCartCleanup = errors.New("cart cleanup failed")
)

// IntentCreator is the external payment processor capability: given a minor-
// unit amount it returns a client-usable secret.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*stripe.PaymentIntent, error)
}

// PaymentStore is the subset of the payment repository the service needs.
type PaymentStore interface {
	Create(ctx context.Context, p models.Payment) (primitive.ObjectID, error)
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// CartCleaner removes settled cart entries in bulk.
type CartCleaner interface {
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// PaymentInput is the completed-checkout payload submitted after the client
// confirms the card payment.
type PaymentInput struct {
	Email   string   `json:"email"   validate:"required,email"`
	Price   float64  `json:"price"   validate:"gte=0"`
	CartIDs []string `json:"cartIds"`
	MenuIDs []string `json:"menuIds"`
}

// SettlementResult reports both halves of the settlement: the payment
// insert and the cart cleanup. SkippedCartIDs lists ids that did not parse
// and were dropped from the delete set.
type SettlementResult struct {
	InsertedID     string   `json:"insertedId"`
	DeletedCount   int64    `json:"deletedCount"`
	SkippedCartIDs []string `json:"skippedCartIds,omitempty"`
}

type PaymentService struct {
	intents  IntentCreator
	payments PaymentStore
	carts    CartCleaner
}

func NewPaymentService(intents IntentCreator, payments PaymentStore, carts CartCleaner) *PaymentService {
	return &PaymentService{intents: intents, payments: payments, carts: carts}
}

// CreateIntent asks the processor for a payment intent over price (major
// currency units) and returns the client secret. The amount is scaled to
// cents with truncation, matching the processor's minor-unit convention.
// No local state is written.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidAmount
	}

	cents := int64(price * 100)

	intent, err := s.intents.CreatePaymentIntent(ctx, cents, settlementCurrency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	return intent.ClientSecret, nil
}

// Settle records the completed payment and removes the purchased cart
// entries as one logical unit:
//
//  1. The immutable payment record is inserted. On failure nothing else
//     runs and the storage error surfaces.
//  2. Every cart id that parses as an ObjectID is deleted in one call.
//     Unparseable ids are dropped from the delete set, and deleting zero
//     documents is fine; stale cart ids must not fail a real payment.
//
// If cleanup fails after the insert, the payment stands and the error is
// reported alongside the partial result.
func (s *PaymentService) Settle(ctx context.Context, in PaymentInput) (SettlementResult, error) {
	cartIDs, skipped := parseObjectIDs(in.CartIDs)

	record := models.Payment{
		Email:   in.Email,
		Price:   in.Price,
		CartIDs: in.CartIDs,
		MenuIDs: in.MenuIDs,
		Date:    time.Now().UTC(),
	}

	insertedID, err := s.payments.Create(ctx, record)
	if err != nil {
		metrics.PaymentsSettled.WithLabelValues("storage_error").Inc()
		return SettlementResult{}, err
	}

	result := SettlementResult{
		InsertedID:     insertedID.Hex(),
		SkippedCartIDs: skipped,
	}

	deleted, err := s.carts.DeleteMany(ctx, cartIDs)
	if err != nil {
		metrics.PaymentsSettled.WithLabelValues("cleanup_error").Inc()
		logger.WithCtx(ctx).Error("payment recorded but cart cleanup failed",
			"payment_id", result.InsertedID, "error", err)
		return result, fmt.Errorf("%w: %v", ErrCartCleanup, err)
	}
	result.DeletedCount = deleted

	metrics.PaymentsSettled.WithLabelValues("ok").Inc()
	metrics.RevenueSettled.Add(in.Price)

	logger.WithCtx(ctx).Info("payment settled",
		"payment_id", result.InsertedID,
		"email", in.Email,
		"amount", in.Price,
		"carts_removed", deleted,
		"carts_skipped", len(skipped),
	)

	return result, nil
}

// ListByEmail returns all payments recorded for email.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ByEmail(ctx, email)
}

// parseObjectIDs splits raw hex ids into parsed ObjectIDs and the ids that
// failed to parse. Callers decide what a parse failure means; settlement
// skips them, direct lookups reject the request.
func parseObjectIDs(raw []string) (ids []primitive.ObjectID, skipped []string) {
	for _, h := range raw {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			skipped = append(skipped, h)
			continue
		}
		ids = append(ids, id)
	}
	return ids, skipped
}
