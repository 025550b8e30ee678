package customers

import "github.com/angelmondragon/customer360/pkg/enums"

// Seed returns the demo customer shown by the dashboard.
func Seed() Customer {
	return Customer{
		ID:                  "CUST-2024-001",
		Name:                "김지민",
		Email:               "jimin.kim@example.com",
		Phone:               "010-1234-5678",
		Avatar:              "/assets/images/jimin_photo.jpg",
		MembershipGrade:     enums.MembershipGradeVIP,
		LifecycleStage:      enums.LifecycleStageActive,
		CLV:                 15800000,
		TotalSales:          12500000,
		LastPurchaseDate:    "2024-11-15",
		ChurnRiskScore:      15,
		BirthDate:           "1992-03-15",
		Gender:              enums.GenderFemale,
		Address:             "서울특별시 강남구 테헤란로 123",
		Interests:           []string{"패션", "뷰티", "건강식품", "여행"},
		PreferredCategories: []string{"여성의류", "화장품", "액세서리"},
		SignupChannel:       "모바일 앱",
		CreatedAt:           "2022-06-10",
	}
}
