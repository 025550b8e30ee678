package catalog

import "github.com/angelmondragon/customer360/pkg/enums"

// Seed returns the demo product list used by the dashboard.
func Seed() []Product {
	return []Product{
		{
			ID:            "P001",
			Name:          "인산죽염 9회죽염 250g",
			Form:          enums.ProductFormNormal,
			Type:          enums.ProductTypeManufactured,
			Category:      enums.ProductCategoryBambooSalt,
			ConsumerPrice: 45000,
			MemberPrice:   40500,
			StockQuantity: 100,
		},
		{
			ID:            "P002",
			Name:          "인산죽염 생활용품 세트",
			Form:          enums.ProductFormSet,
			Type:          enums.ProductTypeMerchandise,
			Category:      enums.ProductCategorySetCombination,
			ConsumerPrice: 120000,
			MemberPrice:   108000,
			StockQuantity: 50,
		},
		{
			ID:            "P003",
			Name:          "인산죽염 샘플 (10g)",
			Form:          enums.ProductFormSample,
			Type:          enums.ProductTypeManufactured,
			Category:      enums.ProductCategoryBambooSalt,
			StockQuantity: 500,
		},
		{
			ID:            "P004",
			Name:          "인산가 건강식품 진액류 500ml",
			Form:          enums.ProductFormNormal,
			Type:          enums.ProductTypeMerchandise,
			Category:      enums.ProductCategoryExtract,
			ConsumerPrice: 85000,
			MemberPrice:   76500,
			StockQuantity: 75,
		},
		{
			ID:            "P005",
			Name:          "인산 명품장류 세트",
			Form:          enums.ProductFormSet,
			Type:          enums.ProductTypeMerchandise,
			Category:      enums.ProductCategorySauce,
			ConsumerPrice: 150000,
			MemberPrice:   135000,
			StockQuantity: 30,
		},
	}
}
