package orders

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/angelmondragon/customer360/internal/catalog"
	"github.com/angelmondragon/customer360/internal/customers"
	"github.com/angelmondragon/customer360/pkg/enums"
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 12, 2, 9, 30, 0, 0, time.UTC)

func newTestComposer(t *testing.T, opts ...Option) *Composer {
	t.Helper()
	defaults := customers.Seed().ShipmentDefaults(enums.CourierCJ, enums.WarehouseJigok)
	seq := 0
	base := []Option{
		WithIDGenerator(func(prefix string) string {
			seq++
			return fmt.Sprintf("%s-%d", prefix, seq)
		}),
		WithClock(func() time.Time { return fixedNow }),
	}
	return NewComposer(defaults, append(base, opts...)...)
}

func product(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, ok := catalog.NewMemory(catalog.Seed()).Get(id)
	require.True(t, ok, "seed product %s", id)
	return p
}

func assertRemainingMatchesOrdered(t *testing.T, c *Composer) {
	t.Helper()
	for _, l := range c.OrderLines() {
		assert.Equal(t, l.OrderedQuantity-l.DeliveredQuantity, l.RemainingQuantity, "line %s", l.ID)
	}
}

func TestAddProductGrowsInLockstep(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	for i, id := range []string{"P001", "P003", "P004", "P001"} {
		_, _, err := c.AddProduct(product(t, id), i+1)
		require.NoError(t, err)
		require.Len(t, c.OrderLines(), i+1)
		require.Len(t, c.ShipmentLines(), i+1)
		require.Equal(t, i+1, c.Len())
		assertRemainingMatchesOrdered(t, c)
	}
}

func TestAddProductCopiesFieldsAndDefaults(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	line, ship, err := c.AddProduct(product(t, "P003"), 4)
	require.NoError(t, err)

	assert.Equal(t, "P003", line.ProductID)
	assert.Equal(t, "인산죽염 샘플 (10g)", line.ProductName)
	assert.Equal(t, 4, line.OrderedQuantity)
	assert.Equal(t, 0, line.DeliveredQuantity)
	assert.Equal(t, 4, line.RemainingQuantity)
	assert.Equal(t, int64(0), line.UnitPrice)
	assert.True(t, line.Orderable)
	assert.Equal(t, enums.DivisionOther, line.Division())

	assert.Equal(t, 1, ship.Sequence)
	assert.Equal(t, line.ID, ship.SourceLineID)
	assert.Equal(t, line.ProductName, ship.ProductName)
	assert.Equal(t, 4, ship.Count)
	assert.Equal(t, enums.DivisionOther, ship.Division)
	assert.Empty(t, ship.DeliveryDate)
	assert.Equal(t, "김지민", ship.Recipient)
	assert.Equal(t, "010-1234-5678", ship.RecipientPhone)
	assert.Equal(t, "서울특별시 강남구 테헤란로 123", ship.RecipientAddress)
	assert.Empty(t, ship.RecipientTel)
	assert.Equal(t, enums.CourierCJ, ship.Courier)
	assert.Equal(t, enums.WarehouseJigok, ship.Warehouse)
	assert.False(t, ship.ShowPriceOnInvoice)
	assert.True(t, ship.InvoiceIncluded)

	_, general, err := c.AddProduct(product(t, "P002"), 1)
	require.NoError(t, err)
	assert.Equal(t, enums.DivisionGeneral, general.Division)
	assert.Equal(t, 2, general.Sequence)
}

func TestAddProductDoesNotAlterExistingLines(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 2)
	require.NoError(t, err)
	require.NoError(t, c.EditShipmentField(c.ShipmentLines()[0].ID, FieldDeliveryDate, "2024-12-24"))
	beforeLines, beforeShips := c.OrderLines(), c.ShipmentLines()

	_, _, err = c.AddProduct(product(t, "P004"), 1)
	require.NoError(t, err)
	assert.Equal(t, beforeLines[0], c.OrderLines()[0])
	assert.Equal(t, beforeShips[0], c.ShipmentLines()[0])
}

func TestAddProductQuantityPolicy(t *testing.T) {
	t.Parallel()

	reject := newTestComposer(t)
	for _, qty := range []int{0, -3} {
		_, _, err := reject.AddProduct(product(t, "P001"), qty)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	}
	assert.Empty(t, reject.OrderLines())
	assert.Empty(t, reject.ShipmentLines())

	normalize := newTestComposer(t, WithQuantityPolicy(QuantityNormalize))
	line, ship, err := normalize.AddProduct(product(t, "P001"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.OrderedQuantity)
	assert.Equal(t, 1, line.RemainingQuantity)
	assert.Equal(t, 1, ship.Count)
}

func TestAddProductRejectsIncompleteProduct(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(catalog.Product{ID: "P999"}, 1)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, StateEmpty, c.State())
}

func TestTotal(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	assert.Equal(t, int64(0), c.Total())

	_, _, err := c.AddProduct(product(t, "P001"), 2)
	require.NoError(t, err)
	_, _, err = c.AddProduct(product(t, "P004"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(157500), c.Total())

	var want int64
	for _, l := range c.OrderLines() {
		want += l.UnitPrice * int64(l.OrderedQuantity)
	}
	assert.Equal(t, want, c.Total())

	require.True(t, c.RemoveOrderLine(c.OrderLines()[0].ID))
	assert.Equal(t, int64(76500), c.Total())
}

func TestBulkEditFieldSemantics(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	for _, id := range []string{"P001", "P002", "P004"} {
		_, _, err := c.AddProduct(product(t, id), 1)
		require.NoError(t, err)
	}
	ships := c.ShipmentLines()
	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldRecipient, "박서준"))
	require.NoError(t, c.EditShipmentField(ships[1].ID, FieldShowPriceOnInvoice, "true"))
	require.NoError(t, c.EditShipmentField(ships[2].ID, FieldDeliveryMemo, "경비실"))
	before := c.ShipmentLines()

	err := c.BulkEditShipment(ShipmentOverrides{
		Recipient:          "",
		Courier:            enums.CourierHanjin,
		ShowPriceOnInvoice: true,
	})
	require.NoError(t, err)

	after := c.ShipmentLines()
	require.Len(t, after, 3)
	for i, s := range after {
		assert.Equal(t, before[i].Recipient, s.Recipient, "recipient untouched on row %d", i)
		assert.Equal(t, enums.CourierHanjin, s.Courier, "courier on row %d", i)
		assert.True(t, s.ShowPriceOnInvoice, "show price on row %d", i)
		assert.Equal(t, before[i].DeliveryMemo, s.DeliveryMemo, "memo untouched on row %d", i)
		assert.Equal(t, before[i].Warehouse, s.Warehouse, "warehouse untouched on row %d", i)
	}

	require.NoError(t, c.BulkEditShipment(ShipmentOverrides{ShowPriceOnInvoice: false}))
	for _, s := range c.ShipmentLines() {
		assert.False(t, s.ShowPriceOnInvoice, "show price is always overwritten")
		assert.Equal(t, enums.CourierHanjin, s.Courier)
	}
}

func TestBulkEditOverwritesEveryPopulatedField(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	o := ShipmentOverrides{
		DeliveryDate:   "2024-12-20",
		Recipient:      "이하늘",
		RecipientPhone: "010-9999-0000",
		RecipientTel:   "02-555-1234",
		Courier:        enums.CourierLotte,
		Warehouse:      enums.WarehouseSuwon,
		ZipCode:        "06236",
		Address:        "서울특별시 강남구 역삼로 1",
		AddressDetail:  "101동 202호",
		DeliveryMemo:   "문 앞",
	}
	require.NoError(t, c.BulkEditShipment(o))

	s := c.ShipmentLines()[0]
	assert.Equal(t, o.DeliveryDate, s.DeliveryDate)
	assert.Equal(t, o.Recipient, s.Recipient)
	assert.Equal(t, o.RecipientPhone, s.RecipientPhone)
	assert.Equal(t, o.RecipientTel, s.RecipientTel)
	assert.Equal(t, o.Courier, s.Courier)
	assert.Equal(t, o.Warehouse, s.Warehouse)
	assert.Equal(t, o.ZipCode, s.ZipCode)
	assert.Equal(t, o.Address, s.RecipientAddress)
	assert.Equal(t, o.AddressDetail, s.AddressDetail)
	assert.Equal(t, o.DeliveryMemo, s.DeliveryMemo)
}

func TestBulkEditInvalidInputChangesNothing(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)
	before := c.ShipmentLines()

	err = c.BulkEditShipment(ShipmentOverrides{Recipient: "새이름", Courier: "DHL", ShowPriceOnInvoice: true})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	err = c.BulkEditShipment(ShipmentOverrides{DeliveryDate: "12/24/2024"})
	require.Error(t, err)

	assert.Equal(t, before, c.ShipmentLines())
}

func TestDefaultOverridesMirrorProfile(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	o := c.DefaultOverrides()
	assert.Equal(t, "김지민", o.Recipient)
	assert.Equal(t, "010-1234-5678", o.RecipientPhone)
	assert.Equal(t, "서울특별시 강남구 테헤란로 123", o.Address)
	assert.Equal(t, enums.CourierCJ, o.Courier)
	assert.Equal(t, enums.WarehouseJigok, o.Warehouse)
	assert.Empty(t, o.DeliveryDate)
	assert.False(t, o.ShowPriceOnInvoice)
}

// Removing an order line cascades to shipment lines by product name, so a
// second line for the same product loses its shipment too.
func TestRemoveOrderLineCascadesByName(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	first, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)
	second, _, err := c.AddProduct(product(t, "P001"), 3)
	require.NoError(t, err)
	_, other, err := c.AddProduct(product(t, "P004"), 1)
	require.NoError(t, err)

	require.True(t, c.RemoveOrderLine(first.ID))

	lines := c.OrderLines()
	require.Len(t, lines, 2)
	assert.Equal(t, second.ID, lines[0].ID)

	ships := c.ShipmentLines()
	require.Len(t, ships, 1, "both shipment lines named after the product are removed")
	assert.Equal(t, other.ID, ships[0].ID)
}

func TestRemoveOrderLineCascadesBySourceWhenConfigured(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t, WithCorrelation(CorrelateBySource))
	first, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)
	_, secondShip, err := c.AddProduct(product(t, "P001"), 3)
	require.NoError(t, err)

	require.True(t, c.RemoveOrderLine(first.ID))

	ships := c.ShipmentLines()
	require.Len(t, ships, 1, "only the removed line's shipment goes away")
	assert.Equal(t, secondShip.ID, ships[0].ID)
}

func TestRemoveOrderLineUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)
	beforeLines, beforeShips := c.OrderLines(), c.ShipmentLines()

	assert.False(t, c.RemoveOrderLine("OP-missing"))
	assert.Equal(t, beforeLines, c.OrderLines())
	assert.Equal(t, beforeShips, c.ShipmentLines())
}

func TestRemoveShipmentLineLeavesSequenceGap(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	for _, id := range []string{"P001", "P002", "P004"} {
		_, _, err := c.AddProduct(product(t, id), 1)
		require.NoError(t, err)
	}
	ships := c.ShipmentLines()
	require.Equal(t, []int{1, 2, 3}, sequences(ships))

	require.True(t, c.RemoveShipmentLine(ships[1].ID))
	assert.Equal(t, []int{1, 3}, sequences(c.ShipmentLines()))
	assert.Len(t, c.OrderLines(), 3, "order lines are untouched")
	assert.False(t, c.RemoveShipmentLine(ships[1].ID))
}

func TestSequenceAfterRemovalFollowsCurrentCount(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	for _, id := range []string{"P001", "P002", "P004"} {
		_, _, err := c.AddProduct(product(t, id), 1)
		require.NoError(t, err)
	}
	require.True(t, c.RemoveShipmentLine(c.ShipmentLines()[0].ID))

	_, ship, err := c.AddProduct(product(t, "P005"), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, ship.Sequence)
	assert.Equal(t, []int{2, 3, 3}, sequences(c.ShipmentLines()))
}

func sequences(ships []ShipmentLine) []int {
	out := make([]int, 0, len(ships))
	for _, s := range ships {
		out = append(out, s.Sequence)
	}
	return out
}

func TestEditShipmentField(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	for _, id := range []string{"P001", "P004"} {
		_, _, err := c.AddProduct(product(t, id), 1)
		require.NoError(t, err)
	}
	ships := c.ShipmentLines()

	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldDeliveryDate, "2024-12-24"))
	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldCourier, "우체국"))
	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldWarehouse, ""))
	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldInvoiceIncluded, "false"))
	require.NoError(t, c.EditShipmentField(ships[0].ID, FieldReference, "선물 포장"))

	got := c.ShipmentLines()
	assert.Equal(t, "2024-12-24", got[0].DeliveryDate)
	assert.Equal(t, enums.CourierPostOffice, got[0].Courier)
	assert.Empty(t, got[0].Warehouse)
	assert.False(t, got[0].InvoiceIncluded)
	assert.Equal(t, "선물 포장", got[0].Reference)
	assert.Equal(t, ships[1], got[1], "other rows are untouched")
}

func TestEditShipmentFieldErrors(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, ship, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		id    string
		field ShipmentField
		value string
		code  pkgerrors.Code
	}{
		{name: "unknown id", id: "DI-missing", field: FieldRecipient, value: "x", code: pkgerrors.CodeNotFound},
		{name: "unknown field", id: ship.ID, field: "color", value: "red", code: pkgerrors.CodeValidation},
		{name: "bad date", id: ship.ID, field: FieldDeliveryDate, value: "2024-13-40", code: pkgerrors.CodeValidation},
		{name: "bad courier", id: ship.ID, field: FieldCourier, value: "", code: pkgerrors.CodeValidation},
		{name: "bad warehouse", id: ship.ID, field: FieldWarehouse, value: "창고99", code: pkgerrors.CodeValidation},
		{name: "bad bool", id: ship.ID, field: FieldShowPriceOnInvoice, value: "yes please", code: pkgerrors.CodeValidation},
	}
	for _, tt := range tests {
		err := c.EditShipmentField(tt.id, tt.field, tt.value)
		require.Error(t, err, tt.name)
		assert.True(t, pkgerrors.IsCode(err, tt.code), "%s: got %v", tt.name, err)
	}
	assert.Equal(t, ship, c.ShipmentLines()[0])
}

func TestSubmitSnapshotIsImmutable(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 2)
	require.NoError(t, err)
	_, _, err = c.AddProduct(product(t, "P004"), 1)
	require.NoError(t, err)
	require.NoError(t, c.SetMemo("  부재시 경비실  "))
	assert.Equal(t, "부재시 경비실", c.Memo())

	var received Snapshot
	sub := SubmitterFunc(func(ctx context.Context, s Snapshot) (Receipt, error) {
		received = s
		return Receipt{OrderNumber: s.BasicInfo.OrderNumber, Total: s.Total, NextStep: "payment"}, nil
	})
	snap, receipt, err := c.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, snap, received)
	assert.Equal(t, "payment", receipt.NextStep)
	assert.Equal(t, int64(157500), snap.Total)
	assert.Equal(t, fmt.Sprintf("ORD-%d", fixedNow.UnixMilli()), snap.BasicInfo.OrderNumber)
	assert.Equal(t, "부재시 경비실", snap.Memo)
	assert.Equal(t, StateSubmitted, c.State())

	require.NoError(t, c.BulkEditShipment(ShipmentOverrides{Recipient: "변경", ShowPriceOnInvoice: true}))
	require.NoError(t, c.EditShipmentField(c.ShipmentLines()[0].ID, FieldDeliveryDate, "2025-01-02"))
	require.True(t, c.RemoveOrderLine(c.OrderLines()[0].ID))
	_, _, err = c.AddProduct(product(t, "P005"), 5)
	require.NoError(t, err)

	require.Len(t, snap.OrderLines, 2)
	require.Len(t, snap.ShipmentLines, 2)
	assert.Equal(t, "P001", snap.OrderLines[0].ProductID)
	for _, s := range snap.ShipmentLines {
		assert.Equal(t, "김지민", s.Recipient)
		assert.False(t, s.ShowPriceOnInvoice)
		assert.Empty(t, s.DeliveryDate)
	}
	assert.Equal(t, int64(157500), snap.Total)
}

func TestSubmitCarriesBasicInfo(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P002"), 1)
	require.NoError(t, err)
	require.NoError(t, c.SetBasicInfo(BasicInfoInput{
		OrderType:            " 주문 ",
		PurchaseChannelLarge: enums.PurchaseChannelPhone,
		PurchaseChannelSmall: enums.PurchaseChannelInboundCall,
	}))

	snap, _, err := c.Submit(context.Background(), NewLogSubmitter(nil))
	require.NoError(t, err)
	assert.Equal(t, BasicInfo{
		MemberName:           "김지민",
		MemberGrade:          enums.MembershipGradeVIP,
		MemberID:             "CUST-2024-001",
		OrderNumber:          fmt.Sprintf("ORD-%d", fixedNow.UnixMilli()),
		OrderType:            "주문",
		PurchaseChannelLarge: enums.PurchaseChannelPhone,
		PurchaseChannelSmall: enums.PurchaseChannelInboundCall,
	}, snap.BasicInfo)

	err = c.SetBasicInfo(BasicInfoInput{PurchaseChannelLarge: "라디오"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSubmitAllowsIncompleteShipments(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	snap, _, err := c.Submit(context.Background(), NewLogSubmitter(nil))
	require.NoError(t, err)
	assert.Empty(t, snap.ShipmentLines[0].DeliveryDate)
}

func TestSubmitRequiresOrderLines(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	called := false
	sub := SubmitterFunc(func(ctx context.Context, s Snapshot) (Receipt, error) {
		called = true
		return Receipt{}, nil
	})
	_, _, err := c.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	assert.False(t, called)
}

func TestSubmitFailureIsReportedAndRetryable(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := newTestComposer(t, WithMetrics(metrics.NewComposerMetrics(reg, "test")))
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	offline := errors.New("order service offline")
	_, _, err = c.Submit(context.Background(), SubmitterFunc(func(ctx context.Context, s Snapshot) (Receipt, error) {
		return Receipt{}, offline
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, offline)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
	assert.Equal(t, StatePopulated, c.State())

	_, receipt, err := c.Submit(context.Background(), NewLogSubmitter(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(40500), receipt.Total)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	results := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "test_composer_submissions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			results[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"failure": 1, "success": 1}, results)
}

func TestSubmitHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = c.Submit(ctx, NewLogSubmitter(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscardBlocksFurtherMutation(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)
	assert.Equal(t, StatePopulated, c.State())

	c.Discard()
	assert.Equal(t, StateDiscarded, c.State())
	assert.Empty(t, c.OrderLines())
	assert.Empty(t, c.Memo())
	assert.Empty(t, c.ShipmentLines())
	assert.Equal(t, int64(0), c.Total())

	_, _, err = c.AddProduct(product(t, "P001"), 1)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	assert.True(t, pkgerrors.IsCode(c.BulkEditShipment(ShipmentOverrides{}), pkgerrors.CodeStateConflict))
	assert.True(t, pkgerrors.IsCode(c.SetMemo("x"), pkgerrors.CodeStateConflict))
	_, _, err = c.Submit(context.Background(), NewLogSubmitter(nil))
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := newTestComposer(t)
	_, _, err := c.AddProduct(product(t, "P001"), 1)
	require.NoError(t, err)

	lines := c.OrderLines()
	lines[0].OrderedQuantity = 99
	ships := c.ShipmentLines()
	ships[0].Recipient = "mutated"

	assert.Equal(t, 1, c.OrderLines()[0].OrderedQuantity)
	assert.Equal(t, "김지민", c.ShipmentLines()[0].Recipient)
}

func TestDefaultIDsArePrefixedAndUnique(t *testing.T) {
	t.Parallel()

	c := NewComposer(customers.Seed().ShipmentDefaults(enums.CourierCJ, enums.WarehouseJigok))
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		line, ship, err := c.AddProduct(product(t, "P001"), 1)
		require.NoError(t, err)
		assert.Regexp(t, `^OP-[0-9a-f-]{36}$`, line.ID)
		assert.Regexp(t, `^DI-[0-9a-f-]{36}$`, ship.ID)
		assert.False(t, seen[line.ID] || seen[ship.ID])
		seen[line.ID], seen[ship.ID] = true, true
	}
}
