package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 12
	// MaxPageSize caps how many rows any listing can request.
	MaxPageSize = 100
)

// Params holds page-number pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Normalize enforces the configured defaults and maximum page size.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Bounds returns the half-open [start, end) slice window for a collection of
// total elements. Pages past the end yield an empty window.
func (p Params) Bounds(total int) (int, int) {
	p = p.Normalize()
	start := (p.Page - 1) * p.PageSize
	if start >= total {
		return total, total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages returns ceil(total / pageSize) for the normalized page size.
func (p Params) TotalPages(total int) int {
	p = p.Normalize()
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
