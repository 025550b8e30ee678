package actions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelmondragon/customer360/internal/customers"
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/logger"
	"github.com/google/uuid"
)

var idPrefixes = map[Kind]string{
	KindSendMessage:   "MSG",
	KindIssueCoupon:   "CPN",
	KindAwardPoints:   "PNT",
	KindAddToCampaign: "CMP",
	KindEditProfile:   "PRF",
	KindNote:          "NOTE",
	KindVOC:           "VOC",
}

// SimulatedHandler confirms every action without reaching a messaging,
// coupon or ticketing system. Profile edits are applied to the profile it
// was given so later reads see them.
type SimulatedHandler struct {
	log *logger.Logger
	now func() time.Time

	mu      sync.Mutex
	profile customers.Customer
}

func NewSimulatedHandler(log *logger.Logger, profile customers.Customer) *SimulatedHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatedHandler{log: log, now: time.Now, profile: profile}
}

// Profile returns the profile with every edit handled so far.
func (h *SimulatedHandler) Profile() customers.Customer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.profile
}

func (h *SimulatedHandler) Handle(ctx context.Context, customerID string, req Request) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}
	prefix, ok := idPrefixes[req.Kind()]
	if !ok {
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported action").
			WithDetails(map[string]any{"kind": string(req.Kind())})
	}

	var message string
	switch r := req.(type) {
	case SendMessageRequest:
		message = "메시지가 발송되었습니다!"
		if r.ScheduleDatetime != "" {
			message = fmt.Sprintf("메시지가 %s에 발송 예약되었습니다!", r.ScheduleDatetime)
		}
	case IssueCouponRequest:
		message = "쿠폰이 발급되었습니다!"
	case AwardPointsRequest:
		message = fmt.Sprintf("%dP가 지급되었습니다!", r.Points)
	case AddToCampaignRequest:
		message = "캠페인에 등록되었습니다!"
	case EditProfileRequest:
		h.applyProfile(customerID, r)
		message = "프로필이 수정되었습니다!"
	case NoteRequest:
		message = "메모가 저장되었습니다!"
	case VOCRequest:
		message = "VOC가 등록되었습니다!"
	default:
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported action request type")
	}

	conf := Confirmation{
		ID:         prefix + "-" + uuid.NewString(),
		Kind:       req.Kind(),
		CustomerID: customerID,
		Message:    message,
		At:         h.now(),
	}
	h.log.Info(h.log.WithField(ctx, "confirmation_id", conf.ID), message)
	return conf, nil
}

func (h *SimulatedHandler) applyProfile(customerID string, r EditProfileRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.profile.ID != customerID {
		return
	}
	h.profile = customers.ApplyProfileEdit(h.profile, r.Edit())
}
