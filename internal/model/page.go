package model

// Page はページング済みの子コレクションです。Page は1始まり。
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}

func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}
