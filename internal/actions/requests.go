package actions

import (
	"github.com/angelmondragon/customer360/internal/customers"
	"github.com/angelmondragon/customer360/pkg/enums"
)

// Kind names a CRM action.
type Kind string

const (
	KindSendMessage   Kind = "send_message"
	KindIssueCoupon   Kind = "issue_coupon"
	KindAwardPoints   Kind = "award_points"
	KindAddToCampaign Kind = "add_to_campaign"
	KindEditProfile   Kind = "edit_profile"
	KindNote          Kind = "note"
	KindVOC           Kind = "voc"
)

// Request is the payload of one CRM action.
type Request interface {
	Kind() Kind
}

// crossChecker is implemented by requests with rules spanning several fields.
type crossChecker interface {
	crossCheck() map[string]string
}

type SendMessageRequest struct {
	Channel    enums.MessageChannel `json:"channel" validate:"required,enum"`
	SenderID   string               `json:"sender_id" validate:"required"`
	TemplateID string               `json:"template_id,omitempty"`
	// Title is required for EMAIL and PUSH.
	Title            string             `json:"title,omitempty" validate:"max=200"`
	Body             string             `json:"body" validate:"required,max=2000"`
	ScheduleType     enums.ScheduleType `json:"schedule_type" validate:"required,enum"`
	ScheduleDatetime string             `json:"schedule_datetime,omitempty" validate:"required_if=ScheduleType RESERVED,omitempty,datetime=2006-01-02T15:04"`
}

func (SendMessageRequest) Kind() Kind { return KindSendMessage }

func (r SendMessageRequest) crossCheck() map[string]string {
	out := map[string]string{}
	needsTitle := r.Channel == enums.MessageChannelEmail || r.Channel == enums.MessageChannelPush
	if needsTitle && r.Title == "" {
		out["title"] = "is required"
	}
	if r.ScheduleType == enums.ScheduleImmediate && r.ScheduleDatetime != "" {
		out["schedule_datetime"] = "is not allowed here"
	}
	return out
}

type IssueCouponRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
	ValidFrom  string `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo    string `json:"valid_to" validate:"required,datetime=2006-01-02"`
	Remark     string `json:"remark,omitempty" validate:"max=500"`
}

func (IssueCouponRequest) Kind() Kind { return KindIssueCoupon }

func (r IssueCouponRequest) crossCheck() map[string]string {
	// Both dates are already YYYY-MM-DD, so string order is date order.
	if r.ValidTo < r.ValidFrom {
		return map[string]string{"valid_to": "must not be before valid_from"}
	}
	return nil
}

type AwardPointsRequest struct {
	Points     int64  `json:"points" validate:"gt=0"`
	Reason     string `json:"reason" validate:"required,max=200"`
	ExpireDate string `json:"expire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (AwardPointsRequest) Kind() Kind { return KindAwardPoints }

type AddToCampaignRequest struct {
	CampaignID string `json:"campaign_id" validate:"required"`
	Reason     string `json:"reason,omitempty" validate:"max=200"`
}

func (AddToCampaignRequest) Kind() Kind { return KindAddToCampaign }

// EditProfileRequest carries interests and preferred categories as comma
// separated text, the way the profile form collects them.
type EditProfileRequest struct {
	Name                string               `json:"name" validate:"required,max=50"`
	Email               string               `json:"email,omitempty" validate:"omitempty,email"`
	Phone               string               `json:"phone,omitempty" validate:"max=20"`
	BirthDate           string               `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender              enums.Gender         `json:"gender,omitempty" validate:"omitempty,enum"`
	Address             string               `json:"address,omitempty" validate:"max=200"`
	Interests           string               `json:"interests,omitempty"`
	PreferredCategories string               `json:"preferred_categories,omitempty"`
	LifecycleStage      enums.LifecycleStage `json:"lifecycle_stage,omitempty" validate:"omitempty,enum"`
	SignupChannel       string               `json:"signup_channel,omitempty"`
}

func (EditProfileRequest) Kind() Kind { return KindEditProfile }

// EditProfileFrom pre-fills the form from the current profile.
func EditProfileFrom(c customers.Customer) EditProfileRequest {
	e := customers.EditFromCustomer(c)
	return EditProfileRequest{
		Name:                e.Name,
		Email:               e.Email,
		Phone:               e.Phone,
		BirthDate:           e.BirthDate,
		Gender:              e.Gender,
		Address:             e.Address,
		Interests:           e.Interests,
		PreferredCategories: e.PreferredCategories,
		LifecycleStage:      e.LifecycleStage,
		SignupChannel:       e.SignupChannel,
	}
}

// Edit converts the request into a profile edit.
func (r EditProfileRequest) Edit() customers.ProfileEdit {
	return customers.ProfileEdit{
		Name:                r.Name,
		Email:               r.Email,
		Phone:               r.Phone,
		BirthDate:           r.BirthDate,
		Gender:              r.Gender,
		Address:             r.Address,
		Interests:           r.Interests,
		PreferredCategories: r.PreferredCategories,
		LifecycleStage:      r.LifecycleStage,
		SignupChannel:       r.SignupChannel,
	}
}

type NoteRequest struct {
	Title    string             `json:"title,omitempty" validate:"max=100"`
	Content  string             `json:"content" validate:"required,max=2000"`
	Category enums.NoteCategory `json:"category" validate:"required,enum"`
	Priority enums.Priority     `json:"priority" validate:"required,enum"`
}

func (NoteRequest) Kind() Kind { return KindNote }

// NewNoteRequest returns the note form defaults.
func NewNoteRequest() NoteRequest {
	return NoteRequest{Category: enums.NoteCategoryGeneral, Priority: enums.PriorityMedium}
}

type VOCRequest struct {
	Channel      enums.VOCChannel `json:"channel" validate:"required,enum"`
	Type         enums.VOCType    `json:"type" validate:"required,enum"`
	Title        string           `json:"title" validate:"required,max=200"`
	Content      string           `json:"content" validate:"required,max=4000"`
	Priority     enums.Priority   `json:"priority" validate:"required,enum"`
	DepartmentID string           `json:"department_id,omitempty"`
	AssigneeID   string           `json:"assignee_id,omitempty"`
	DueDate      string           `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (VOCRequest) Kind() Kind { return KindVOC }
