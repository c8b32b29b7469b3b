package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagingOptions_normalize(t *testing.T) {
	opts := PagingOptions{DefaultPageSize: 50, MaxPageSize: 500}

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"そのまま", 2, 20, 2, 20},
		{"page 0 は 1", 0, 20, 1, 20},
		{"page 負数は 1", -5, 20, 1, 20},
		{"pageSize 0 は既定値", 1, 0, 1, 50},
		{"pageSize 負数は既定値", 1, -1, 1, 50},
		{"pageSize 上限超過は上限", 1, 10000, 1, 500},
		{"pageSize 上限ちょうど", 1, 500, 1, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := opts.normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
		{1000, 500, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.count, tt.pageSize), "count=%d pageSize=%d", tt.count, tt.pageSize)
	}
}

// 正規化後は必ず 1 <= pageSize <= max となり、totalPages*pageSize が件数を覆う
func TestPaging_Properties(t *testing.T) {
	opts := PagingOptions{DefaultPageSize: 50, MaxPageSize: 500}
	for _, rawSize := range []int{-10, 0, 1, 7, 50, 499, 500, 501, 100000} {
		for _, count := range []int64{0, 1, 49, 50, 51, 1234} {
			page, size := opts.normalize(0, rawSize)
			assert.Equal(t, 1, page)
			assert.GreaterOrEqual(t, size, 1)
			assert.LessOrEqual(t, size, 500)

			pages := totalPages(count, size)
			assert.GreaterOrEqual(t, int64(pages*size), count)
			if pages > 0 {
				assert.Less(t, int64((pages-1)*size), count)
			}
		}
	}
	assert.Equal(t, 0, pageOffset(1, 25))
	assert.Equal(t, 50, pageOffset(3, 25))
	assert.Equal(t, 0, pageOffset(-4, 25))
	assert.Equal(t, math.MaxInt, pageOffset(1<<62+1, 4))
}
