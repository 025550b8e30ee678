package orders

import (
	"time"

	"github.com/angelmondragon/customer360/pkg/enums"
)

// OrderLine is one product entry in a draft order. Name, price and form are
// copied from the catalog when the line is added and never re-synced.
type OrderLine struct {
	ID                string            `json:"id"`
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	OrderedQuantity   int               `json:"order_quantity"`
	DeliveredQuantity int               `json:"delivery_quantity"`
	RemainingQuantity int               `json:"remaining_quantity"`
	UnitPrice         int64             `json:"unit_price"`
	Orderable         bool              `json:"is_orderable"`
	ProductForm       enums.ProductForm `json:"product_form"`
}

// Division classifies the line for display.
func (l OrderLine) Division() enums.Division {
	return l.ProductForm.Division()
}

// Amount is unit price times ordered quantity.
func (l OrderLine) Amount() int64 {
	return l.UnitPrice * int64(l.OrderedQuantity)
}

// ShipmentLine is one delivery record derived from an order line.
//
// SourceLineID always points at the order line that created it; it is only
// consulted when the composer correlates by source.
type ShipmentLine struct {
	ID                 string          `json:"id"`
	SourceLineID       string          `json:"source_line_id"`
	Sequence           int             `json:"sequence"`
	ProductName        string          `json:"product_name"`
	Count              int             `json:"delivery_count"`
	Division           enums.Division  `json:"division"`
	DeliveryDate       string          `json:"delivery_date"`
	RecipientAddress   string          `json:"recipient_address"`
	Recipient          string          `json:"recipient"`
	RecipientPhone     string          `json:"recipient_phone"`
	RecipientTel       string          `json:"recipient_tel"`
	Courier            enums.Courier   `json:"courier"`
	Warehouse          enums.Warehouse `json:"warehouse,omitempty"`
	ZipCode            string          `json:"zip_code,omitempty"`
	AddressDetail      string          `json:"address_detail,omitempty"`
	DeliveryMemo       string          `json:"delivery_memo,omitempty"`
	ShowPriceOnInvoice bool            `json:"show_price_on_invoice"`
	Reference          string          `json:"reference,omitempty"`
	InvoiceIncluded    bool            `json:"invoice_included"`
}

// BasicInfo is the order header.
type BasicInfo struct {
	MemberName           string                     `json:"member_name"`
	MemberGrade          enums.MembershipGrade      `json:"member_grade"`
	MemberID             string                     `json:"member_id"`
	OrderNumber          string                     `json:"order_number"`
	OrderType            string                     `json:"order_type"`
	PurchaseChannelLarge enums.PurchaseChannelLarge `json:"purchase_channel_large,omitempty"`
	PurchaseChannelSmall enums.PurchaseChannelSmall `json:"purchase_channel_small,omitempty"`
}

// BasicInfoInput carries the operator-editable header fields.
type BasicInfoInput struct {
	OrderType            string                     `json:"order_type" validate:"max=50"`
	PurchaseChannelLarge enums.PurchaseChannelLarge `json:"purchase_channel_large" validate:"omitempty,enum"`
	PurchaseChannelSmall enums.PurchaseChannelSmall `json:"purchase_channel_small" validate:"omitempty,enum"`
}

// Snapshot is the immutable package handed to a Submitter. It shares no
// memory with the composer that produced it.
type Snapshot struct {
	BasicInfo     BasicInfo      `json:"basic_info"`
	OrderLines    []OrderLine    `json:"products"`
	ShipmentLines []ShipmentLine `json:"deliveries"`
	Memo          string         `json:"order_memo,omitempty"`
	Total         int64          `json:"total_amount"`
}

// Receipt is what a Submitter returns on acceptance.
type Receipt struct {
	OrderNumber string    `json:"order_number"`
	Total       int64     `json:"total_amount"`
	AcceptedAt  time.Time `json:"accepted_at"`
	// NextStep names where control goes after submission, e.g. "payment".
	NextStep string `json:"next_step"`
}

// State is the lifecycle of a composition session.
type State string

const (
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
	StateSubmitted State = "submitted"
	StateDiscarded State = "discarded"
)

func cloneOrderLines(lines []OrderLine) []OrderLine {
	out := make([]OrderLine, len(lines))
	copy(out, lines)
	return out
}

func cloneShipmentLines(lines []ShipmentLine) []ShipmentLine {
	out := make([]ShipmentLine, len(lines))
	copy(out, lines)
	return out
}
