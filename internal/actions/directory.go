package actions

import "github.com/angelmondragon/customer360/pkg/enums"

// MessageTemplate pre-fills a message's title and body.
type MessageTemplate struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Channel enums.MessageChannel `json:"channel"`
	Subject string               `json:"subject,omitempty"`
	Body    string               `json:"body"`
}

// Sender is an outbound number or account for one channel.
type Sender struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Channel    enums.MessageChannel `json:"channel"`
	Identifier string               `json:"identifier"`
}

type Campaign struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Channel       string `json:"channel"`
	Status        string `json:"status"`
	TargetSummary string `json:"target_summary,omitempty"`
}

type CouponTemplate struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Directory is the reference data the action forms pick from.
type Directory struct {
	Templates       []MessageTemplate
	Senders         []Sender
	Campaigns       []Campaign
	CouponTemplates []CouponTemplate
}

// SeedDirectory returns the demo reference data.
func SeedDirectory() Directory {
	return Directory{
		Templates: []MessageTemplate{
			{ID: "TPL-001", Name: "장바구니 리마인더", Channel: enums.MessageChannelKakao, Body: "고객님, 장바구니에 상품이 있습니다. 지금 구매하시면 특별 할인 혜택을 드립니다!"},
			{ID: "TPL-002", Name: "신상품 입고 알림", Channel: enums.MessageChannelPush, Subject: "고객님이 좋아하실 신상품이 입고되었습니다", Body: "고객님의 관심 카테고리에 새로운 상품이 입고되었습니다. 지금 확인해보세요!"},
			{ID: "TPL-003", Name: "VIP 쿠폰 발급", Channel: enums.MessageChannelEmail, Subject: "VIP 고객님께 특별한 선물을 드립니다", Body: "VIP 고객님께 감사의 마음을 담아 15% 할인 쿠폰을 드립니다."},
		},
		Senders: []Sender{
			{ID: "SND-001", Name: "CRM 시스템", Channel: enums.MessageChannelSMS, Identifier: "1588-1234"},
			{ID: "SND-002", Name: "CRM 알림톡", Channel: enums.MessageChannelKakao, Identifier: "@crm_official"},
			{ID: "SND-003", Name: "CRM 공식", Channel: enums.MessageChannelEmail, Identifier: "noreply@crm.com"},
			{ID: "SND-004", Name: "CRM 앱", Channel: enums.MessageChannelPush, Identifier: "CRM_APP"},
		},
		Campaigns: []Campaign{
			{ID: "CAMP-2024-12", Name: "연말 특별 세일", Start: "2024-12-01", End: "2024-12-31", Channel: "Multi-channel", Status: "Active", TargetSummary: "VIP 고객 1,234명"},
			{ID: "CAMP-2024-11", Name: "가을 시즌 특가", Start: "2024-11-01", End: "2024-11-30", Channel: "KAKAO, PUSH", Status: "Active"},
		},
		CouponTemplates: []CouponTemplate{
			{ID: "TPL-001", Label: "10,000원 할인 쿠폰"},
			{ID: "TPL-002", Label: "15% 할인 쿠폰"},
			{ID: "TPL-003", Label: "20% 할인 쿠폰 (VIP 전용)"},
			{ID: "TPL-004", Label: "무료배송 쿠폰"},
			{ID: "TPL-005", Label: "신상품 30% 할인"},
		},
	}
}

// TemplatesFor lists the message templates usable on channel.
func (d Directory) TemplatesFor(channel enums.MessageChannel) []MessageTemplate {
	var out []MessageTemplate
	for _, t := range d.Templates {
		if t.Channel == channel {
			out = append(out, t)
		}
	}
	return out
}

// SendersFor lists the senders usable on channel.
func (d Directory) SendersFor(channel enums.MessageChannel) []Sender {
	var out []Sender
	for _, s := range d.Senders {
		if s.Channel == channel {
			out = append(out, s)
		}
	}
	return out
}

// ApplyTemplate copies the template's subject and body into req. Unknown ids
// leave req unchanged and report false.
func (d Directory) ApplyTemplate(req SendMessageRequest, templateID string) (SendMessageRequest, bool) {
	for _, t := range d.Templates {
		if t.ID == templateID {
			req.TemplateID = t.ID
			req.Title = t.Subject
			req.Body = t.Body
			return req, true
		}
	}
	return req, false
}

// references lists unknown reference ids in req, keyed by json field name.
func (d Directory) references(req Request) map[string]string {
	out := map[string]string{}
	switch r := req.(type) {
	case SendMessageRequest:
		if !d.hasSender(r.SenderID, r.Channel) {
			out["sender_id"] = "is not a sender for this channel"
		}
		if r.TemplateID != "" && !d.hasTemplate(r.TemplateID) {
			out["template_id"] = "is not a recognized value"
		}
	case IssueCouponRequest:
		if !d.hasCouponTemplate(r.TemplateID) {
			out["template_id"] = "is not a recognized value"
		}
	case AddToCampaignRequest:
		if !d.hasCampaign(r.CampaignID) {
			out["campaign_id"] = "is not a recognized value"
		}
	}
	return out
}

func (d Directory) hasSender(id string, channel enums.MessageChannel) bool {
	for _, s := range d.Senders {
		if s.ID == id && s.Channel == channel {
			return true
		}
	}
	return false
}

func (d Directory) hasTemplate(id string) bool {
	for _, t := range d.Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (d Directory) hasCouponTemplate(id string) bool {
	for _, t := range d.CouponTemplates {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (d Directory) hasCampaign(id string) bool {
	for _, c := range d.Campaigns {
		if c.ID == id {
			return true
		}
	}
	return false
}
