package service

import "math"

// PagingOptions はページサイズの既定値と上限です。
type PagingOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}

// normalize は page を 1 以上に、pageSize を 1 以上 MaxPageSize 以下に補正します。
// pageSize が 0 以下なら既定値を使います。
func (o PagingOptions) normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = o.DefaultPageSize
	}
	if o.MaxPageSize > 0 && pageSize > o.MaxPageSize {
		pageSize = o.MaxPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return page, pageSize
}

func totalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// pageOffset は page が totalPages 以下であることを前提とします。
// それでも int に収まらない場合は math.MaxInt を返します。
func pageOffset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
