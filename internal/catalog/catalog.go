package catalog

import (
	"strings"

	"github.com/angelmondragon/customer360/pkg/enums"
)

// Product is a read-only catalog entry. Prices are in won.
type Product struct {
	ID            string                `json:"id"`
	Name          string                `json:"product_name"`
	Form          enums.ProductForm     `json:"product_form"`
	Type          enums.ProductType     `json:"product_type"`
	Category      enums.ProductCategory `json:"product_category"`
	ConsumerPrice int64                 `json:"consumer_price"`
	MemberPrice   int64                 `json:"member_price"`
	StockQuantity int                   `json:"stock_quantity"`
	Thumbnail     string                `json:"thumbnail,omitempty"`
}

// Filter narrows a catalog search. Zero-valued fields match everything.
type Filter struct {
	Form     enums.ProductForm
	Type     enums.ProductType
	Category enums.ProductCategory
	Keyword  string
	// SampleOnly restricts results to sample-form products (the "add sample" picker).
	SampleOnly bool
}

// Matches reports whether p satisfies every populated filter field.
func (f Filter) Matches(p Product) bool {
	if f.Form != "" && p.Form != f.Form {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(kw)) {
		return false
	}
	if f.SampleOnly && p.Form != enums.ProductFormSample {
		return false
	}
	return true
}

// Catalog is the product collaborator consumed by the order composer.
type Catalog interface {
	Search(filter Filter) []Product
	Get(id string) (Product, bool)
}

// Memory is an immutable in-memory catalog.
type Memory struct {
	products []Product
	byID     map[string]int
}

// NewMemory copies products into a catalog. Later duplicates of an id are ignored.
func NewMemory(products []Product) *Memory {
	m := &Memory{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := m.byID[p.ID]; dup {
			continue
		}
		m.byID[p.ID] = len(m.products)
		m.products = append(m.products, p)
	}
	return m
}

// Search returns matching products in catalog order.
func (m *Memory) Search(filter Filter) []Product {
	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Memory) Get(id string) (Product, bool) {
	idx, ok := m.byID[id]
	if !ok {
		return Product{}, false
	}
	return m.products[idx], true
}

// SelectQuantity returns the quantity picked for a product in the search
// picker, falling back to 1 when nothing (or zero) was entered.
func SelectQuantity(selected map[string]int, productID string) int {
	if qty := selected[productID]; qty != 0 {
		return qty
	}
	return 1
}
