package customers

import (
	"strings"

	"github.com/angelmondragon/customer360/pkg/enums"
)

// Customer is the profile shown in the dashboard header.
type Customer struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Email               string                `json:"email"`
	Phone               string                `json:"phone"`
	Avatar              string                `json:"avatar,omitempty"`
	MembershipGrade     enums.MembershipGrade `json:"membership_grade"`
	LifecycleStage      enums.LifecycleStage  `json:"lifecycle_stage"`
	CLV                 int64                 `json:"clv"`
	TotalSales          int64                 `json:"total_sales"`
	LastPurchaseDate    string                `json:"last_purchase_date"`
	ChurnRiskScore      int                   `json:"churn_risk_score"`
	BirthDate           string                `json:"birth_date,omitempty"`
	Gender              enums.Gender          `json:"gender,omitempty"`
	Address             string                `json:"address,omitempty"`
	Interests           []string              `json:"interests"`
	PreferredCategories []string              `json:"preferred_categories"`
	SignupChannel       string                `json:"signup_channel"`
	CreatedAt           string                `json:"created_at"`
}

// ShipmentDefaults seeds recipient and logistics fields on new shipment lines.
type ShipmentDefaults struct {
	MemberID    string
	MemberName  string
	MemberGrade enums.MembershipGrade
	Recipient   string
	Phone       string
	Address     string
	Courier     enums.Courier
	Warehouse   enums.Warehouse
}

// ShipmentDefaults derives composer defaults from the profile.
func (c Customer) ShipmentDefaults(courier enums.Courier, warehouse enums.Warehouse) ShipmentDefaults {
	return ShipmentDefaults{
		MemberID:    c.ID,
		MemberName:  c.Name,
		MemberGrade: c.MembershipGrade,
		Recipient:   c.Name,
		Phone:       c.Phone,
		Address:     c.Address,
		Courier:     courier,
		Warehouse:   warehouse,
	}
}

// ProfileEdit is the editable subset of a profile. Interests and preferred
// categories arrive as comma separated text.
type ProfileEdit struct {
	Name                string
	Email               string
	Phone               string
	BirthDate           string
	Gender              enums.Gender
	Address             string
	Interests           string
	PreferredCategories string
	LifecycleStage      enums.LifecycleStage
	SignupChannel       string
}

// EditFromCustomer pre-fills an edit form from the current profile.
func EditFromCustomer(c Customer) ProfileEdit {
	return ProfileEdit{
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		BirthDate:           c.BirthDate,
		Gender:              c.Gender,
		Address:             c.Address,
		Interests:           strings.Join(c.Interests, ", "),
		PreferredCategories: strings.Join(c.PreferredCategories, ", "),
		LifecycleStage:      c.LifecycleStage,
		SignupChannel:       c.SignupChannel,
	}
}

// ApplyProfileEdit returns a copy of c with the edit applied.
func ApplyProfileEdit(c Customer, edit ProfileEdit) Customer {
	out := c
	out.Name = edit.Name
	out.Email = edit.Email
	out.Phone = edit.Phone
	out.BirthDate = edit.BirthDate
	out.Gender = edit.Gender
	out.Address = edit.Address
	out.Interests = SplitList(edit.Interests)
	out.PreferredCategories = SplitList(edit.PreferredCategories)
	out.LifecycleStage = edit.LifecycleStage
	out.SignupChannel = edit.SignupChannel
	return out
}

// SplitList splits comma separated text, trimming entries and dropping blanks.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
