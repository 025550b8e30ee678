package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{0: DefaultLimit, -5: DefaultLimit, 7: 7, MaxLimit + 1: MaxLimit}
	for in, want := range cases {
		if got := NormalizeLimit(in); got != want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", in, got, want)
		}
	}
	if got := LimitWithBuffer(3); got != 4 {
		t.Fatalf("LimitWithBuffer(3) = %d, want 4", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	encoded := EncodeCursor(Cursor{AfterID: "P003"})
	cur, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if cur == nil || cur.AfterID != "P003" {
		t.Fatalf("unexpected cursor %+v", cur)
	}
}

func TestParseCursorEmptyAndInvalid(t *testing.T) {
	if cur, err := ParseCursor("  "); err != nil || cur != nil {
		t.Fatalf("empty cursor should be nil, got %+v err=%v", cur, err)
	}
	if _, err := ParseCursor("!!not-base64!!"); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := ParseCursor("UDAwMw"); err == nil {
		t.Fatalf("expected format error for cursor without prefix")
	}
}
