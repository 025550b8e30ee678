package enums

// MessageChannel is the outbound channel for a CRM message.
type MessageChannel string

const (
	MessageChannelSMS   MessageChannel = "SMS"
	MessageChannelKakao MessageChannel = "KAKAO"
	MessageChannelPush  MessageChannel = "PUSH"
	MessageChannelEmail MessageChannel = "EMAIL"
)

var validMessageChannels = []MessageChannel{
	MessageChannelSMS,
	MessageChannelKakao,
	MessageChannelPush,
	MessageChannelEmail,
}

func (c MessageChannel) String() string {
	return string(c)
}

func (c MessageChannel) IsValid() bool {
	return contains(validMessageChannels, c)
}

func ParseMessageChannel(value string) (MessageChannel, error) {
	return parse(validMessageChannels, value, "message channel")
}

// ScheduleType decides whether a message goes out now or at a reserved time.
type ScheduleType string

const (
	ScheduleImmediate ScheduleType = "IMMEDIATE"
	ScheduleReserved  ScheduleType = "RESERVED"
)

var validScheduleTypes = []ScheduleType{ScheduleImmediate, ScheduleReserved}

func (s ScheduleType) IsValid() bool {
	return contains(validScheduleTypes, s)
}

func ParseScheduleType(value string) (ScheduleType, error) {
	return parse(validScheduleTypes, value, "schedule type")
}

// NoteCategory groups operator notes on a customer.
type NoteCategory string

const (
	NoteCategoryGeneral   NoteCategory = "General"
	NoteCategoryCS        NoteCategory = "CS"
	NoteCategoryMarketing NoteCategory = "Marketing"
	NoteCategorySales     NoteCategory = "Sales"
)

var validNoteCategories = []NoteCategory{
	NoteCategoryGeneral,
	NoteCategoryCS,
	NoteCategoryMarketing,
	NoteCategorySales,
}

func (c NoteCategory) IsValid() bool {
	return contains(validNoteCategories, c)
}

func ParseNoteCategory(value string) (NoteCategory, error) {
	return parse(validNoteCategories, value, "note category")
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var validPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) IsValid() bool {
	return contains(validPriorities, p)
}

func ParsePriority(value string) (Priority, error) {
	return parse(validPriorities, value, "priority")
}

// VOCChannel is where a voice-of-customer ticket originated.
type VOCChannel string

const (
	VOCChannelCall  VOCChannel = "Call"
	VOCChannelChat  VOCChannel = "Chat"
	VOCChannelEmail VOCChannel = "Email"
	VOCChannelVisit VOCChannel = "Visit"
	VOCChannelOther VOCChannel = "Other"
)

var validVOCChannels = []VOCChannel{
	VOCChannelCall,
	VOCChannelChat,
	VOCChannelEmail,
	VOCChannelVisit,
	VOCChannelOther,
}

func (c VOCChannel) IsValid() bool {
	return contains(validVOCChannels, c)
}

func ParseVOCChannel(value string) (VOCChannel, error) {
	return parse(validVOCChannels, value, "voc channel")
}

type VOCType string

const (
	VOCTypeComplaint  VOCType = "Complaint"
	VOCTypeInquiry    VOCType = "Inquiry"
	VOCTypeCompliment VOCType = "Compliment"
	VOCTypeSuggestion VOCType = "Suggestion"
)

var validVOCTypes = []VOCType{
	VOCTypeComplaint,
	VOCTypeInquiry,
	VOCTypeCompliment,
	VOCTypeSuggestion,
}

func (t VOCType) IsValid() bool {
	return contains(validVOCTypes, t)
}

func ParseVOCType(value string) (VOCType, error) {
	return parse(validVOCTypes, value, "voc type")
}
