package catalog

import (
	pkgerrors "github.com/angelmondragon/customer360/pkg/errors"
	"github.com/angelmondragon/customer360/pkg/pagination"
)

// Page is one page of search results.
type Page struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// SearchPage returns matching products in catalog order, resuming after the
// product named by the cursor.
func (m *Memory) SearchPage(filter Filter, params pagination.Params) (Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return Page{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	start := 0
	if cursor != nil {
		idx, ok := m.byID[cursor.AfterID]
		if !ok {
			return Page{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor").
				WithDetails(map[string]any{"after_id": cursor.AfterID})
		}
		start = idx + 1
	}

	limit := pagination.NormalizeLimit(params.Limit)
	fetch := pagination.LimitWithBuffer(params.Limit)
	out := make([]Product, 0, limit)
	for _, p := range m.products[start:] {
		if !filter.Matches(p) {
			continue
		}
		out = append(out, p)
		if len(out) == fetch {
			break
		}
	}

	page := Page{Products: out}
	if len(out) > limit {
		page.Products = out[:limit]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{AfterID: out[limit-1].ID})
	}
	return page, nil
}
