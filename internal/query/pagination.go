package query

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is one page of a materialized result set.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
}

// NormalizePage coerces free-form page/limit input to positive integers.
// Anything invalid falls back to page 1, limit 10. A page beyond the last
// one is kept as-is: the caller gets an empty item slice, not an error.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// NewPage assembles page metadata around items. totalPages is
// ceil(total/limit); it is 0 only when the result set is empty.
func NewPage[T any](items []T, page, limit int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		TotalCount: total,
	}
}
