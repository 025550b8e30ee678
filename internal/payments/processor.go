package payments

import (
	"context"
	"time"

	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/logger"
	"github.com/google/uuid"
)

// Status is the outcome of a processed payment.
type Status string

const (
	StatusPaid            Status = "paid"
	StatusAwaitingDeposit Status = "awaiting_deposit"
)

// Result is returned when a payment is accepted.
type Result struct {
	PaymentID   string    `json:"payment_id"`
	OrderNumber string    `json:"order_number"`
	Method      string    `json:"payment_method"`
	Summary     Summary   `json:"summary"`
	Status      Status    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Processor settles a payment request.
type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
}

// SimulatedProcessor accepts every valid request without contacting a
// payment provider.
type SimulatedProcessor struct {
	log *logger.Logger
	now func() time.Time
}

func NewSimulatedProcessor(log *logger.Logger, now func() time.Time) *SimulatedProcessor {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &SimulatedProcessor{log: log, now: now}
}

// Process validates req and marks it paid. Bank transfers and virtual
// accounts wait for the deposit unless nothing is left to pay.
func (p *SimulatedProcessor) Process(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "process payment")
	}
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	summary := req.Summary()
	status := StatusPaid
	if summary.FinalAmount > 0 && (req.BankTransfer != nil || req.VirtualAccount != nil) {
		status = StatusAwaitingDeposit
	}
	result := Result{
		PaymentID:   "PAY-" + uuid.NewString(),
		OrderNumber: req.OrderNumber,
		Method:      req.Method.String(),
		Summary:     summary,
		Status:      status,
		ProcessedAt: p.now(),
	}

	ctx = p.log.WithOrderNumber(ctx, req.OrderNumber)
	ctx = p.log.WithFields(ctx, map[string]any{
		"payment_id":     result.PaymentID,
		"payment_method": result.Method,
		"final_amount":   summary.FinalAmount,
		"status":         string(status),
	})
	p.log.Info(ctx, "payment processed")
	return result, nil
}
