package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/customer360/internal/catalog"
	"github.com/angelmondragon/customer360/internal/customers"
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/metrics"
	"github.com/angelmondragon/customer360/pkg/validators"
	"github.com/google/uuid"
)

const maxMemoLength = 2000

// Correlation decides which shipment lines follow an order line when it is removed.
type Correlation string

const (
	// CorrelateByName removes every shipment line whose product name equals the
	// removed order line's name, including unrelated lines that share it.
	CorrelateByName Correlation = "name"
	// CorrelateBySource removes only shipment lines created by the removed order line.
	CorrelateBySource Correlation = "source"
)

// QuantityPolicy decides what AddProduct does with a non-positive quantity.
type QuantityPolicy string

const (
	QuantityReject    QuantityPolicy = "reject"
	QuantityNormalize QuantityPolicy = "normalize"
)

// Operation labels reported to metrics.
const (
	OpAddProduct         = "add_product"
	OpRemoveOrderLine    = "remove_order_line"
	OpRemoveShipmentLine = "remove_shipment_line"
	OpEditShipmentField  = "edit_shipment_field"
	OpBulkEditShipment   = "bulk_edit_shipment"
)

// Option configures a Composer.
type Option func(*Composer)

func WithCorrelation(c Correlation) Option {
	return func(cmp *Composer) { cmp.correlation = c }
}

func WithQuantityPolicy(p QuantityPolicy) Option {
	return func(cmp *Composer) { cmp.quantity = p }
}

// WithIDGenerator replaces the uuid based line id generator. prefix is "OP"
// for order lines and "DI" for shipment lines.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(cmp *Composer) { cmp.newID = fn }
}

func WithClock(now func() time.Time) Option {
	return func(cmp *Composer) { cmp.now = now }
}

func WithMetrics(m *metrics.ComposerMetrics) Option {
	return func(cmp *Composer) { cmp.metrics = m }
}

// Composer keeps the order lines and shipment lines of one new-order session
// consistent. It is owned by a single session and is not safe for concurrent use.
type Composer struct {
	defaults    customers.ShipmentDefaults
	correlation Correlation
	quantity    QuantityPolicy
	newID       func(prefix string) string
	now         func() time.Time
	metrics     *metrics.ComposerMetrics

	header    BasicInfoInput
	memo      string
	lines     []OrderLine
	shipments []ShipmentLine
	submitted bool
	discarded bool
}

// NewComposer starts an empty session seeded with the customer's shipment defaults.
func NewComposer(defaults customers.ShipmentDefaults, opts ...Option) *Composer {
	c := &Composer{
		defaults:    defaults,
		correlation: CorrelateByName,
		quantity:    QuantityReject,
		newID:       defaultID,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// AddProduct appends one order line and exactly one shipment line for it.
func (c *Composer) AddProduct(product catalog.Product, quantity int) (OrderLine, ShipmentLine, error) {
	if err := c.ensureOpen(); err != nil {
		return OrderLine{}, ShipmentLine{}, err
	}
	if product.ID == "" || product.Name == "" {
		return OrderLine{}, ShipmentLine{}, pkgerrors.New(pkgerrors.CodeValidation, "product id and name are required")
	}
	if quantity <= 0 {
		if c.quantity != QuantityNormalize {
			return OrderLine{}, ShipmentLine{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
				WithDetails(map[string]any{"quantity": quantity})
		}
		quantity = 1
	}

	line := OrderLine{
		ID:                c.newID("OP"),
		ProductID:         product.ID,
		ProductName:       product.Name,
		OrderedQuantity:   quantity,
		DeliveredQuantity: 0,
		RemainingQuantity: quantity,
		UnitPrice:         product.MemberPrice,
		Orderable:         true,
		ProductForm:       product.Form,
	}
	shipment := ShipmentLine{
		ID:               c.newID("DI"),
		SourceLineID:     line.ID,
		Sequence:         len(c.shipments) + 1,
		ProductName:      product.Name,
		Count:            quantity,
		Division:         product.Form.Division(),
		RecipientAddress: c.defaults.Address,
		Recipient:        c.defaults.Recipient,
		RecipientPhone:   c.defaults.Phone,
		Courier:          c.defaults.Courier,
		Warehouse:        c.defaults.Warehouse,
		InvoiceIncluded:  true,
	}

	c.lines = append(c.lines, line)
	c.shipments = append(c.shipments, shipment)
	c.metrics.IncOperation(OpAddProduct)
	return line, shipment, nil
}

// RemoveOrderLine deletes the order line and its correlated shipment lines.
// It reports false, changing nothing, when no line has the id.
func (c *Composer) RemoveOrderLine(lineID string) bool {
	idx := -1
	for i, l := range c.lines {
		if l.ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	removed := c.lines[idx]
	c.lines = append(c.lines[:idx:idx], c.lines[idx+1:]...)

	kept := c.shipments[:0:0]
	for _, s := range c.shipments {
		if c.correlates(removed, s) {
			continue
		}
		kept = append(kept, s)
	}
	c.shipments = kept
	c.metrics.IncOperation(OpRemoveOrderLine)
	return true
}

func (c *Composer) correlates(line OrderLine, s ShipmentLine) bool {
	if c.correlation == CorrelateBySource {
		return s.SourceLineID == line.ID
	}
	return s.ProductName == line.ProductName
}

// RemoveShipmentLine deletes one shipment line. Remaining sequence numbers are
// left as they are.
func (c *Composer) RemoveShipmentLine(shipmentID string) bool {
	idx := c.shipmentIndex(shipmentID)
	if idx < 0 {
		return false
	}
	c.shipments = append(c.shipments[:idx:idx], c.shipments[idx+1:]...)
	c.metrics.IncOperation(OpRemoveShipmentLine)
	return true
}

func (c *Composer) shipmentIndex(id string) int {
	for i, s := range c.shipments {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// SetBasicInfo replaces the operator-editable header fields.
func (c *Composer) SetBasicInfo(input BasicInfoInput) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if err := validators.Struct(input); err != nil {
		return err
	}
	input.OrderType = validators.SanitizeString(input.OrderType, 50)
	c.header = input
	return nil
}

// SetMemo replaces the free-text order memo.
func (c *Composer) SetMemo(memo string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	c.memo = validators.SanitizeString(memo, maxMemoLength)
	return nil
}

// Total is Σ unit price × ordered quantity over the current order lines.
func (c *Composer) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Amount()
	}
	return total
}

// OrderLines returns a copy of the order lines in insertion order.
func (c *Composer) OrderLines() []OrderLine {
	return cloneOrderLines(c.lines)
}

// ShipmentLines returns a copy of the shipment lines in insertion order.
func (c *Composer) ShipmentLines() []ShipmentLine {
	return cloneShipmentLines(c.shipments)
}

// Len reports how many order lines the session holds.
func (c *Composer) Len() int {
	return len(c.lines)
}

// Memo returns the current order memo.
func (c *Composer) Memo() string {
	return c.memo
}

// State reports where the session is in its lifecycle.
func (c *Composer) State() State {
	switch {
	case c.discarded:
		return StateDiscarded
	case c.submitted:
		return StateSubmitted
	case len(c.lines) > 0:
		return StatePopulated
	default:
		return StateEmpty
	}
}

// Submit packages a snapshot and hands it to the submitter. Shipment lines are
// not checked for completeness. The composer stays usable afterwards so a
// failed hand-off can be retried.
func (c *Composer) Submit(ctx context.Context, submitter Submitter) (Snapshot, Receipt, error) {
	if err := c.ensureOpen(); err != nil {
		return Snapshot{}, Receipt{}, err
	}
	if len(c.lines) == 0 {
		return Snapshot{}, Receipt{}, pkgerrors.New(pkgerrors.CodeStateConflict, "order has no products")
	}
	if submitter == nil {
		return Snapshot{}, Receipt{}, pkgerrors.New(pkgerrors.CodeInternal, "submitter required")
	}

	snapshot := c.snapshot()
	receipt, err := submitter.Submit(ctx, snapshot)
	c.metrics.ObserveSubmission(snapshot.Total, err)
	if err != nil {
		return Snapshot{}, Receipt{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order").
			WithDetails(map[string]any{"order_number": snapshot.BasicInfo.OrderNumber})
	}
	c.submitted = true
	return snapshot, receipt, nil
}

func (c *Composer) snapshot() Snapshot {
	return Snapshot{
		BasicInfo: BasicInfo{
			MemberName:           c.defaults.MemberName,
			MemberGrade:          c.defaults.MemberGrade,
			MemberID:             c.defaults.MemberID,
			OrderNumber:          fmt.Sprintf("ORD-%d", c.now().UnixMilli()),
			OrderType:            c.header.OrderType,
			PurchaseChannelLarge: c.header.PurchaseChannelLarge,
			PurchaseChannelSmall: c.header.PurchaseChannelSmall,
		},
		OrderLines:    cloneOrderLines(c.lines),
		ShipmentLines: cloneShipmentLines(c.shipments),
		Memo:          c.memo,
		Total:         c.Total(),
	}
}

// Discard drops the session. Every later mutation fails with a state conflict.
func (c *Composer) Discard() {
	c.lines = nil
	c.shipments = nil
	c.memo = ""
	c.header = BasicInfoInput{}
	c.discarded = true
}

func (c *Composer) ensureOpen() error {
	if c.discarded {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "order session was discarded")
	}
	return nil
}
