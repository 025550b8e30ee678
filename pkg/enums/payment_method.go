package enums

// PaymentMethod describes how a customer settles a composed order.
type PaymentMethod string

const (
	PaymentMethodPointsDeposit  PaymentMethod = "적립금/예치금"
	PaymentMethodCoupon         PaymentMethod = "쿠폰"
	PaymentMethodVirtualAccount PaymentMethod = "가상계좌"
	PaymentMethodBankTransfer   PaymentMethod = "무통장입금"
	PaymentMethodCreditCard     PaymentMethod = "신용카드"
	PaymentMethodDirectCash     PaymentMethod = "직영(현금)"
	PaymentMethodDirectCard     PaymentMethod = "직영(카드)"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
	PaymentMethodVirtualAccount,
	PaymentMethodPointsDeposit,
	PaymentMethodCoupon,
	PaymentMethodDirectCash,
	PaymentMethodDirectCard,
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	return contains(validPaymentMethods, p)
}

// IsDirect reports whether the method is settled at a directly managed store.
func (p PaymentMethod) IsDirect() bool {
	return p == PaymentMethodDirectCash || p == PaymentMethodDirectCard
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	return parse(validPaymentMethods, value, "payment method")
}

// DiscountType is how a coupon reduces an order amount.
type DiscountType string

const (
	DiscountTypeFixed        DiscountType = "Fixed"
	DiscountTypePercentage   DiscountType = "Percentage"
	DiscountTypeFreeShipping DiscountType = "Free Shipping"
)

var validDiscountTypes = []DiscountType{
	DiscountTypeFixed,
	DiscountTypePercentage,
	DiscountTypeFreeShipping,
}

// String implements fmt.Stringer.
func (d DiscountType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DiscountType.
func (d DiscountType) IsValid() bool {
	return contains(validDiscountTypes, d)
}

// ParseDiscountType converts raw input into a DiscountType.
func ParseDiscountType(value string) (DiscountType, error) {
	return parse(validDiscountTypes, value, "discount type")
}
