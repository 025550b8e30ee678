package enums

// Courier is the delivery company assigned to a shipment line.
type Courier string

const (
	CourierPostOffice Courier = "우체국"
	CourierCJ         Courier = "CJ택배"
	CourierHanjin     Courier = "한진택배"
	CourierLotte      Courier = "롯데택배"
	CourierPickup     Courier = "직접수령"
	CourierUnassigned Courier = "미배정"
	CourierOther      Courier = "기타"
)

var validCouriers = []Courier{
	CourierPostOffice,
	CourierCJ,
	CourierHanjin,
	CourierLotte,
	CourierPickup,
	CourierUnassigned,
	CourierOther,
}

// String implements fmt.Stringer.
func (c Courier) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Courier.
func (c Courier) IsValid() bool {
	return contains(validCouriers, c)
}

// ParseCourier converts raw input into a Courier.
func ParseCourier(value string) (Courier, error) {
	return parse(validCouriers, value, "courier")
}

// Warehouse is the stock location a shipment line is released from.
type Warehouse string

const (
	WarehouseJigok       Warehouse = "지곡물류"
	WarehouseBaeksang13F Warehouse = "백상빌딩13층"
	WarehouseGarlic1     Warehouse = "마늘창고1"
	WarehouseGarlic2     Warehouse = "마늘창고2"
	WarehouseGarlic3     Warehouse = "마늘창고3"
	WarehouseGangnam     Warehouse = "강남직영"
	WarehouseBundang     Warehouse = "분당직영"
	WarehouseSuwon       Warehouse = "수원직영"
	WarehouseIlsan       Warehouse = "일산직영"
	WarehouseWellness    Warehouse = "웰니스호텔"
)

var validWarehouses = []Warehouse{
	WarehouseJigok,
	WarehouseBaeksang13F,
	WarehouseGarlic1,
	WarehouseGarlic2,
	WarehouseGarlic3,
	WarehouseGangnam,
	WarehouseBundang,
	WarehouseSuwon,
	WarehouseIlsan,
	WarehouseWellness,
}

// String implements fmt.Stringer.
func (w Warehouse) String() string {
	return string(w)
}

// IsValid reports whether the value is a known Warehouse.
func (w Warehouse) IsValid() bool {
	return contains(validWarehouses, w)
}

// ParseWarehouse converts raw input into a Warehouse.
func ParseWarehouse(value string) (Warehouse, error) {
	return parse(validWarehouses, value, "warehouse")
}
