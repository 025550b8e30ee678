package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any page can request.
	MaxLimit = 100
)

// Params holds cursor pagination inputs.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor points just past the last item of the previous page.
type Cursor struct {
	AfterID string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// LimitWithBuffer returns the normalization result plus one to detect the next page.
func LimitWithBuffer(limit int) int {
	return NormalizeLimit(limit) + 1
}

const cursorPrefix = "after:"

// EncodeCursor builds an opaque cursor string.
func EncodeCursor(cursor Cursor) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + cursor.AfterID))
}

// ParseCursor decodes a cursor string. An empty string means the first page
// and returns nil.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	id, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}
	return &Cursor{AfterID: id}, nil
}
