package enums

// ProductForm is the packaging form of a catalog product.
type ProductForm string

const (
	ProductFormNormal ProductForm = "일반품"
	ProductFormSet    ProductForm = "SET품"
	ProductFormSample ProductForm = "샘플"
)

var validProductForms = []ProductForm{
	ProductFormNormal,
	ProductFormSet,
	ProductFormSample,
}

// String implements fmt.Stringer.
func (f ProductForm) String() string {
	return string(f)
}

// IsValid reports whether the value is a known ProductForm.
func (f ProductForm) IsValid() bool {
	return contains(validProductForms, f)
}

// Division classifies a form for order and shipment lines: samples are "other", everything else "general".
func (f ProductForm) Division() Division {
	if f == ProductFormSample {
		return DivisionOther
	}
	return DivisionGeneral
}

// ParseProductForm converts raw input into a ProductForm.
func ParseProductForm(value string) (ProductForm, error) {
	return parse(validProductForms, value, "product form")
}

// Division is the display classification of an order or shipment line.
type Division string

const (
	DivisionGeneral Division = "일반"
	DivisionOther   Division = "기타"
)

// String implements fmt.Stringer.
func (d Division) String() string {
	return string(d)
}

// ProductType is the accounting classification of a product.
type ProductType string

const (
	ProductTypeSubMaterial  ProductType = "부자재"
	ProductTypeExpense      ProductType = "비용(비)"
	ProductTypeMerchandise  ProductType = "상품"
	ProductTypeManufactured ProductType = "제품"
	ProductTypeSemiFinished ProductType = "반제품"
	ProductTypeBooks        ProductType = "도서류"
	ProductTypeConsumable   ProductType = "소모품(비)"
	ProductTypeRawMaterial  ProductType = "원자재"
	ProductTypeMemberOnly   ProductType = "회원용(비)"
)

var validProductTypes = []ProductType{
	ProductTypeSubMaterial,
	ProductTypeExpense,
	ProductTypeMerchandise,
	ProductTypeManufactured,
	ProductTypeSemiFinished,
	ProductTypeBooks,
	ProductTypeConsumable,
	ProductTypeRawMaterial,
	ProductTypeMemberOnly,
}

// String implements fmt.Stringer.
func (t ProductType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ProductType.
func (t ProductType) IsValid() bool {
	return contains(validProductTypes, t)
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	return parse(validProductTypes, value, "product type")
}

// ProductCategory is the merchandising category of a product.
type ProductCategory string

const (
	ProductCategoryNative         ProductCategory = "토종상품류"
	ProductCategoryMallOnly       ProductCategory = "쇼핑몰전용"
	ProductCategoryBambooSalt     ProductCategory = "죽염류"
	ProductCategoryMisc           ProductCategory = "기타류"
	ProductCategoryBook           ProductCategory = "도서"
	ProductCategoryHealthFood     ProductCategory = "건상식품류"
	ProductCategorySauce          ProductCategory = "장류"
	ProductCategoryTraining       ProductCategory = "연수원/기타"
	ProductCategoryHotel          ProductCategory = "호텔"
	ProductCategoryPillPowder     ProductCategory = "환/분말류"
	ProductCategorySSL            ProductCategory = "SSL"
	ProductCategoryHousehold      ProductCategory = "생활용품류"
	ProductCategoryExtract        ProductCategory = "진액류"
	ProductCategorySetCombination ProductCategory = "세트조합류"
)

var validProductCategories = []ProductCategory{
	ProductCategoryNative,
	ProductCategoryMallOnly,
	ProductCategoryBambooSalt,
	ProductCategoryMisc,
	ProductCategoryBook,
	ProductCategoryHealthFood,
	ProductCategorySauce,
	ProductCategoryTraining,
	ProductCategoryHotel,
	ProductCategoryPillPowder,
	ProductCategorySSL,
	ProductCategoryHousehold,
	ProductCategoryExtract,
	ProductCategorySetCombination,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	return contains(validProductCategories, c)
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	return parse(validProductCategories, value, "product category")
}
