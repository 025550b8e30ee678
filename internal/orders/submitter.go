package orders

import (
	"context"
	"time"

	"github.com/angelmondragon/customer360/pkg/logger"
	"go.uber.org/multierr"
)

// Submitter receives a finished order. What it does with it (persistence,
// payment hand-off) is outside the composer.
type Submitter interface {
	Submit(ctx context.Context, snapshot Snapshot) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, snapshot Snapshot) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, snapshot Snapshot) (Receipt, error) {
	return f(ctx, snapshot)
}

// LogSubmitter accepts every order by logging it and forwards control to payment.
type LogSubmitter struct {
	log *logger.Logger
	now func() time.Time
}

func NewLogSubmitter(log *logger.Logger) *LogSubmitter {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSubmitter{log: log, now: time.Now}
}

func (s *LogSubmitter) Submit(ctx context.Context, snapshot Snapshot) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	ctx = s.log.WithOrderNumber(ctx, snapshot.BasicInfo.OrderNumber)
	ctx = s.log.WithFields(ctx, map[string]any{
		"member_id":      snapshot.BasicInfo.MemberID,
		"order_lines":    len(snapshot.OrderLines),
		"shipment_lines": len(snapshot.ShipmentLines),
		"total_amount":   snapshot.Total,
	})
	s.log.Info(ctx, "order submitted")

	if err := CheckShipments(snapshot.ShipmentLines); err != nil {
		findings := multierr.Errors(err)
		messages := make([]string, 0, len(findings))
		for _, f := range findings {
			messages = append(messages, f.Error())
		}
		s.log.Warn(s.log.WithField(ctx, "incomplete_shipments", messages), "order submitted with incomplete shipment details")
	}

	return Receipt{
		OrderNumber: snapshot.BasicInfo.OrderNumber,
		Total:       snapshot.Total,
		AcceptedAt:  s.now(),
		NextStep:    "payment",
	}, nil
}
