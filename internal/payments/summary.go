package payments

import (
	"github.com/angelmondragon/customer360/pkg/enums"
	"github.com/shopspring/decimal"
)

// Summary is the amount breakdown shown above the payment method picker.
type Summary struct {
	OrderAmount    int64 `json:"order_amount"`
	UsePoints      int64 `json:"use_points"`
	UseDeposit     int64 `json:"use_deposit"`
	CouponDiscount int64 `json:"coupon_discount"`
	TotalDiscount  int64 `json:"total_discount"`
	FinalAmount    int64 `json:"final_amount"`
}

// Summarize subtracts points, deposit and coupon from the order amount. The
// final amount never drops below zero.
func Summarize(orderAmount, points, deposit, coupon int64) Summary {
	discount := points + deposit + coupon
	return Summary{
		OrderAmount:    orderAmount,
		UsePoints:      points,
		UseDeposit:     deposit,
		CouponDiscount: coupon,
		TotalDiscount:  discount,
		FinalAmount:    max(0, orderAmount-discount),
	}
}

// Coupon is a coupon held by the customer.
type Coupon struct {
	ID            string             `json:"id"`
	TemplateID    string             `json:"template_id"`
	TemplateName  string             `json:"template_name"`
	DiscountType  enums.DiscountType `json:"discount_type"`
	DiscountValue int64              `json:"discount_value"`
	ValidFrom     string             `json:"valid_from"`
	ValidTo       string             `json:"valid_to"`
}

var hundred = decimal.NewFromInt(100)

// CouponValue is how many won the coupon takes off a goods amount. Percentage
// coupons round half up to the won and fixed coupons are capped at the amount.
// Free shipping coupons do not reduce the goods amount.
func CouponValue(c Coupon, amount int64) int64 {
	if amount <= 0 || c.DiscountValue <= 0 {
		return 0
	}
	switch c.DiscountType {
	case enums.DiscountTypeFixed:
		return min(c.DiscountValue, amount)
	case enums.DiscountTypePercentage:
		pct := min(c.DiscountValue, 100)
		return decimal.NewFromInt(amount).
			Mul(decimal.NewFromInt(pct)).
			Div(hundred).
			Round(0).
			IntPart()
	}
	return 0
}
