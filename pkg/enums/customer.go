package enums

// MembershipGrade is the loyalty tier of a customer.
type MembershipGrade string

const (
	MembershipGradeVIP    MembershipGrade = "VIP"
	MembershipGradeGold   MembershipGrade = "Gold"
	MembershipGradeSilver MembershipGrade = "Silver"
	MembershipGradeBronze MembershipGrade = "Bronze"
	MembershipGradeBasic  MembershipGrade = "Basic"
)

var validMembershipGrades = []MembershipGrade{
	MembershipGradeVIP,
	MembershipGradeGold,
	MembershipGradeSilver,
	MembershipGradeBronze,
	MembershipGradeBasic,
}

func (g MembershipGrade) String() string {
	return string(g)
}

func (g MembershipGrade) IsValid() bool {
	return contains(validMembershipGrades, g)
}

func ParseMembershipGrade(value string) (MembershipGrade, error) {
	return parse(validMembershipGrades, value, "membership grade")
}

// LifecycleStage is where a customer sits in the retention funnel.
type LifecycleStage string

const (
	LifecycleStageNew     LifecycleStage = "New"
	LifecycleStageActive  LifecycleStage = "Active"
	LifecycleStageAtRisk  LifecycleStage = "At Risk"
	LifecycleStageDormant LifecycleStage = "Dormant"
	LifecycleStageChurned LifecycleStage = "Churned"
)

var validLifecycleStages = []LifecycleStage{
	LifecycleStageNew,
	LifecycleStageActive,
	LifecycleStageAtRisk,
	LifecycleStageDormant,
	LifecycleStageChurned,
}

func (s LifecycleStage) String() string {
	return string(s)
}

func (s LifecycleStage) IsValid() bool {
	return contains(validLifecycleStages, s)
}

func ParseLifecycleStage(value string) (LifecycleStage, error) {
	return parse(validLifecycleStages, value, "lifecycle stage")
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Other"
)

var validGenders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) IsValid() bool {
	return contains(validGenders, g)
}

func ParseGender(value string) (Gender, error) {
	return parse(validGenders, value, "gender")
}
