package payments

import (
	"slices"
	"strings"

	"github.com/angelmondragon/customer360/pkg/enums"
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/validators"
)

// Banks lists the banks offered for bank transfer and virtual accounts.
var Banks = []string{
	"국민은행",
	"신한은행",
	"우리은행",
	"하나은행",
	"KB국민은행",
	"농협은행",
	"기업은행",
	"외환은행",
	"씨티은행",
	"SC제일은행",
}

// DirectType is how a directly managed store took the payment.
type DirectType string

const (
	DirectCash DirectType = "현금"
	DirectCard DirectType = "카드"
)

func (d DirectType) IsValid() bool {
	return d == DirectCash || d == DirectCard
}

// CardDetail is the credit card section of the payment form.
type CardDetail struct {
	Number     string `json:"card_number" validate:"required,credit_card"`
	Expiry     string `json:"card_expiry" validate:"required,datetime=01/06"`
	CVC        string `json:"card_cvc" validate:"required,numeric,min=3,max=4"`
	HolderName string `json:"card_holder_name" validate:"required,max=50"`
}

// BankTransferDetail is the manual bank transfer section.
type BankTransferDetail struct {
	Bank          string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,max=30"`
	Depositor     string `json:"depositor_name" validate:"required,max=50"`
}

type VirtualAccountDetail struct {
	Bank string `json:"bank" validate:"required"`
}

type DirectDetail struct {
	Type DirectType `json:"type" validate:"required,enum"`
}

// Request is a submitted payment form. Exactly the detail matching Method is
// set; points/deposit and coupon methods carry none.
type Request struct {
	OrderNumber    string                `json:"order_number" validate:"required"`
	OrderAmount    int64                 `json:"order_amount" validate:"gte=0"`
	Method         enums.PaymentMethod   `json:"payment_method" validate:"required,enum"`
	UsePoints      int64                 `json:"use_points" validate:"gte=0"`
	UseDeposit     int64                 `json:"use_deposit" validate:"gte=0"`
	CouponDiscount int64                 `json:"coupon_discount" validate:"gte=0"`
	Card           *CardDetail           `json:"card_info,omitempty"`
	BankTransfer   *BankTransferDetail   `json:"bank_info,omitempty"`
	VirtualAccount *VirtualAccountDetail `json:"virtual_account,omitempty"`
	Direct         *DirectDetail         `json:"direct_payment,omitempty"`
}

// Summary returns the amounts the request settles.
func (r Request) Summary() Summary {
	return Summarize(r.OrderAmount, r.UsePoints, r.UseDeposit, r.CouponDiscount)
}

// Validate checks field rules and that the detail sections match Method.
func (r Request) Validate() error {
	if err := validators.Struct(r); err != nil {
		return err
	}

	present := map[string]bool{
		"card_info":       r.Card != nil,
		"bank_info":       r.BankTransfer != nil,
		"virtual_account": r.VirtualAccount != nil,
		"direct_payment":  r.Direct != nil,
	}
	want := detailFor(r.Method)
	details := map[string]string{}
	for name, ok := range present {
		switch {
		case name == want && !ok:
			details[name] = "is required"
		case name != want && ok:
			details[name] = "is not allowed here"
		}
	}
	if r.BankTransfer != nil && !knownBank(r.BankTransfer.Bank) {
		details["bank_name"] = "is not a recognized value"
	}
	if r.VirtualAccount != nil && !knownBank(r.VirtualAccount.Bank) {
		details["bank"] = "is not a recognized value"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

func detailFor(m enums.PaymentMethod) string {
	switch {
	case m == enums.PaymentMethodCreditCard:
		return "card_info"
	case m == enums.PaymentMethodBankTransfer:
		return "bank_info"
	case m == enums.PaymentMethodVirtualAccount:
		return "virtual_account"
	case m.IsDirect():
		return "direct_payment"
	}
	return ""
}

func knownBank(name string) bool {
	return slices.Contains(Banks, strings.TrimSpace(name))
}
