package actions

import (
	"context"
	"reflect"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/logger"
	"github.com/angelmondragon/customer360/pkg/metrics"
	"github.com/angelmondragon/customer360/pkg/validators"
)

// Confirmation acknowledges a completed action.
type Confirmation struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	CustomerID string    `json:"customer_id"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

// Handler performs a validated action.
type Handler interface {
	Handle(ctx context.Context, customerID string, req Request) (Confirmation, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, customerID string, req Request) (Confirmation, error)

func (f HandlerFunc) Handle(ctx context.Context, customerID string, req Request) (Confirmation, error) {
	return f(ctx, customerID, req)
}

// DispatcherParams groups dependencies for the dispatcher.
type DispatcherParams struct {
	Handler Handler
	// Directory, when set, is used to check sender, template and campaign ids.
	Directory *Directory
	Metrics   *metrics.ActionMetrics
	Logger    *logger.Logger
}

// Dispatcher validates CRM action requests and forwards them to a Handler.
type Dispatcher struct {
	handler   Handler
	directory *Directory
	metrics   *metrics.ActionMetrics
	log       *logger.Logger
}

// NewDispatcher constructs a dispatcher.
func NewDispatcher(params DispatcherParams) (*Dispatcher, error) {
	if params.Handler == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "action handler required")
	}
	log := params.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		handler:   params.Handler,
		directory: params.Directory,
		metrics:   params.Metrics,
		log:       log,
	}, nil
}

// Dispatch validates req for customerID and hands it to the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, customerID string, req Request) (Confirmation, error) {
	if req == nil {
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "action request required")
	}
	// Handlers switch on value types, so pointer requests never reach one.
	if v := reflect.ValueOf(req); v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "action request required")
		}
		d.metrics.Observe(string(req.Kind()), "invalid")
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "action request must be passed by value").
			WithDetails(map[string]string{"request": "must not be a pointer"})
	}
	kind := string(req.Kind())
	if err := d.validate(customerID, req); err != nil {
		d.metrics.Observe(kind, "invalid")
		return Confirmation{}, err
	}

	ctx = d.log.WithCustomerID(ctx, customerID)
	ctx = d.log.WithField(ctx, "action", kind)

	conf, err := d.handler.Handle(ctx, customerID, req)
	if err != nil {
		d.metrics.Observe(kind, "failure")
		if pkgerrors.As(err) == nil {
			err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dispatch action")
		}
		d.log.Error(ctx, "action failed", err)
		return Confirmation{}, err
	}
	d.metrics.Observe(kind, "success")
	return conf, nil
}

func (d *Dispatcher) validate(customerID string, req Request) error {
	if strings.TrimSpace(customerID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if err := validators.Struct(req); err != nil {
		return err
	}
	details := map[string]string{}
	if c, ok := req.(crossChecker); ok {
		for k, v := range c.crossCheck() {
			details[k] = v
		}
	}
	if d.directory != nil {
		for k, v := range d.directory.references(req) {
			details[k] = v
		}
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}
