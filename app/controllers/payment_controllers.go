package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreateIntent obtains a processor client secret for the given price.
// POST /create-payment-intent
func (p *PaymentController) CreateIntent(c *ctx.Context) {
	var in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	if !c.BindJSON(&in) {
		return
	}

	secret, err := p.payments.CreateIntent(c.Context(), in.Price)
	if errors.Is(err, services.ErrInvalidAmount) {
		c.BadRequest(err.Error())
		return
	}
	if err != nil {
		logger.WithCtx(c.Context()).Error("payment intent failed", "error", err)
		c.Error(http.StatusBadGateway, "payment provider unavailable")
		return
	}

	c.Success(map[string]string{"clientSecret": secret})
}

// Settle records a completed payment and clears the matching cart entries.
// POST /payments
func (p *PaymentController) Settle(c *ctx.Context) {
	var in services.PaymentInput
	if !c.BindJSON(&in) {
		return
	}

	result, err := p.payments.Settle(c.Context(), in)
	if errors.Is(err, services.ErrCartCleanup) {
		// The payment record was written; only the cleanup failed.
		c.Error(http.StatusInternalServerError, "payment recorded but cart cleanup failed")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(result)
}

// ListByEmail returns the caller's payment history. The path email must
// match the token email.
// GET /payments/{email}
func (p *PaymentController) ListByEmail(c *ctx.Context) {
	caller, ok := callerEmail(c)
	if !ok {
		return
	}

	email := c.Param("email")
	if email != caller {
		c.Forbidden()
		return
	}

	payments, err := p.payments.ListByEmail(c.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(payments)
}
