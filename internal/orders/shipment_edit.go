package orders

import (
	"strconv"
	"time"

	"github.com/angelmondragon/customer360/pkg/enums"
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/validators"
)

const dateLayout = "2006-01-02"

// ShipmentField names a single editable column of a shipment line.
type ShipmentField string

const (
	FieldDeliveryDate       ShipmentField = "delivery_date"
	FieldRecipient          ShipmentField = "recipient"
	FieldRecipientPhone     ShipmentField = "recipient_phone"
	FieldRecipientTel       ShipmentField = "recipient_tel"
	FieldRecipientAddress   ShipmentField = "recipient_address"
	FieldCourier            ShipmentField = "courier"
	FieldWarehouse          ShipmentField = "warehouse"
	FieldZipCode            ShipmentField = "zip_code"
	FieldAddressDetail      ShipmentField = "address_detail"
	FieldDeliveryMemo       ShipmentField = "delivery_memo"
	FieldReference          ShipmentField = "reference"
	FieldShowPriceOnInvoice ShipmentField = "show_price_on_invoice"
	FieldInvoiceIncluded    ShipmentField = "invoice_included"
)

// EditShipmentField updates one field of one shipment line in place. Values
// are the raw form input; booleans use strconv.ParseBool and dates YYYY-MM-DD.
func (c *Composer) EditShipmentField(shipmentID string, field ShipmentField, value string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	idx := c.shipmentIndex(shipmentID)
	if idx < 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shipment line not found").
			WithDetails(map[string]any{"shipment_id": shipmentID})
	}

	updated := c.shipments[idx]
	if err := setField(&updated, field, value); err != nil {
		return err
	}
	c.shipments[idx] = updated
	c.metrics.IncOperation(OpEditShipmentField)
	return nil
}

func setField(s *ShipmentLine, field ShipmentField, value string) error {
	switch field {
	case FieldDeliveryDate:
		if value != "" {
			if _, err := time.Parse(dateLayout, value); err != nil {
				return fieldError(field, value, "must be a YYYY-MM-DD date")
			}
		}
		s.DeliveryDate = value
	case FieldRecipient:
		s.Recipient = value
	case FieldRecipientPhone:
		s.RecipientPhone = value
	case FieldRecipientTel:
		s.RecipientTel = value
	case FieldRecipientAddress:
		s.RecipientAddress = value
	case FieldCourier:
		courier, err := enums.ParseCourier(value)
		if err != nil {
			return fieldError(field, value, "is not a recognized value")
		}
		s.Courier = courier
	case FieldWarehouse:
		if value == "" {
			s.Warehouse = ""
			return nil
		}
		warehouse, err := enums.ParseWarehouse(value)
		if err != nil {
			return fieldError(field, value, "is not a recognized value")
		}
		s.Warehouse = warehouse
	case FieldZipCode:
		s.ZipCode = value
	case FieldAddressDetail:
		s.AddressDetail = value
	case FieldDeliveryMemo:
		s.DeliveryMemo = value
	case FieldReference:
		s.Reference = value
	case FieldShowPriceOnInvoice, FieldInvoiceIncluded:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fieldError(field, value, "must be a boolean")
		}
		if field == FieldShowPriceOnInvoice {
			s.ShowPriceOnInvoice = b
		} else {
			s.InvoiceIncluded = b
		}
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown shipment field").
			WithDetails(map[string]string{"field": string(field)})
	}
	return nil
}

func fieldError(field ShipmentField, value, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid shipment field value").
		WithDetails(map[string]string{string(field): msg, "value": value})
}

// ShipmentOverrides is the bulk-edit form. Empty strings leave the existing
// value alone; ShowPriceOnInvoice has no empty state and is always written.
type ShipmentOverrides struct {
	DeliveryDate       string          `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	Recipient          string          `json:"recipient"`
	RecipientPhone     string          `json:"recipient_phone"`
	RecipientTel       string          `json:"recipient_tel"`
	Courier            enums.Courier   `json:"courier" validate:"omitempty,enum"`
	Warehouse          enums.Warehouse `json:"warehouse" validate:"omitempty,enum"`
	ZipCode            string          `json:"zip_code"`
	Address            string          `json:"address"`
	AddressDetail      string          `json:"address_detail"`
	DeliveryMemo       string          `json:"delivery_memo"`
	ShowPriceOnInvoice bool            `json:"show_price_on_invoice"`
}

// DefaultOverrides returns the bulk-edit form as it first opens.
func (c *Composer) DefaultOverrides() ShipmentOverrides {
	return ShipmentOverrides{
		Recipient:      c.defaults.Recipient,
		RecipientPhone: c.defaults.Phone,
		Courier:        c.defaults.Courier,
		Warehouse:      c.defaults.Warehouse,
		Address:        c.defaults.Address,
	}
}

// BulkEditShipment applies the overrides to every shipment line. Input is
// validated before any line changes, so either all lines update or none do.
func (c *Composer) BulkEditShipment(o ShipmentOverrides) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if err := validators.Struct(o); err != nil {
		return err
	}

	for i := range c.shipments {
		s := &c.shipments[i]
		s.DeliveryDate = override(o.DeliveryDate, s.DeliveryDate)
		s.Recipient = override(o.Recipient, s.Recipient)
		s.RecipientPhone = override(o.RecipientPhone, s.RecipientPhone)
		s.RecipientTel = override(o.RecipientTel, s.RecipientTel)
		s.Courier = override(o.Courier, s.Courier)
		s.Warehouse = override(o.Warehouse, s.Warehouse)
		s.ZipCode = override(o.ZipCode, s.ZipCode)
		s.RecipientAddress = override(o.Address, s.RecipientAddress)
		s.AddressDetail = override(o.AddressDetail, s.AddressDetail)
		s.DeliveryMemo = override(o.DeliveryMemo, s.DeliveryMemo)
		s.ShowPriceOnInvoice = o.ShowPriceOnInvoice
	}
	c.metrics.IncOperation(OpBulkEditShipment)
	return nil
}

func override[T ~string](next, current T) T {
	if next != "" {
		return next
	}
	return current
}
