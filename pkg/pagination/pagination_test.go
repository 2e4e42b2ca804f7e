package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	p := Params{}.Normalize()
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	p = Params{Page: 3, PageSize: 500}.Normalize()
	if p.PageSize != MaxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     Params
		total      int
		start, end int
	}{
		{name: "first page", params: Params{Page: 1, PageSize: 12}, total: 30, start: 0, end: 12},
		{name: "middle page", params: Params{Page: 2, PageSize: 12}, total: 30, start: 12, end: 24},
		{name: "short last page", params: Params{Page: 3, PageSize: 12}, total: 30, start: 24, end: 30},
		{name: "past the end", params: Params{Page: 9, PageSize: 12}, total: 30, start: 30, end: 30},
		{name: "empty collection", params: Params{Page: 1, PageSize: 12}, total: 0, start: 0, end: 0},
	}

	for _, tt := range tests {
		start, end := tt.params.Bounds(tt.total)
		if start != tt.start || end != tt.end {
			t.Fatalf("%s: got [%d,%d), want [%d,%d)", tt.name, start, end, tt.start, tt.end)
		}
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	if got := (Params{PageSize: 12}).TotalPages(30); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := (Params{PageSize: 12}).TotalPages(24); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}
	if got := (Params{PageSize: 12}).TotalPages(0); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
}
