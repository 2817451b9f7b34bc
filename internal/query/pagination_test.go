package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negatives", page: -3, limit: -1, wantPage: 1, wantLimit: 10},
		{name: "valid passthrough", page: 4, limit: 25, wantPage: 4, wantLimit: 25},
		{name: "limit capped", page: 1, limit: 5000, wantPage: 1, wantLimit: 100},
		{name: "page beyond last kept", page: 999, limit: 10, wantPage: 999, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 1, 10, 23)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(23), page.TotalCount)

	exact := NewPage([]int{1}, 2, 10, 20)
	assert.Equal(t, 2, exact.TotalPages)

	empty := NewPage[int](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)

	// Five rows still make one page even when asked for page three.
	beyond := NewPage([]int{}, 3, 10, 5)
	assert.Equal(t, 1, beyond.TotalPages)
	assert.Equal(t, int64(5), beyond.TotalCount)
}
