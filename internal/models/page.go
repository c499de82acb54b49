package models

// PageParams — параметры offset/limit пагинации.
//
// Особенности:
//   - при Limit <= 0 сервис подставляет серверный default (config.Limits.Default);
//   - Limit сверху ограничивается config.Limits.Max;
//   - отрицательный Offset трактуется как 0.
type PageParams struct {
	Offset int32
	Limit  int32
}

// Page — страница результатов с точным общим количеством.
// HasMore = Offset+Limit < Total.
type Page[T any] struct {
	Items   []T
	Total   int64
	HasMore bool
	Offset  int32
	Limit   int32
}

// NewPage собирает страницу и вычисляет HasMore по total.
func NewPage[T any](items []T, total int64, p PageParams) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:   items,
		Total:   total,
		HasMore: int64(p.Offset)+int64(p.Limit) < total,
		Offset:  p.Offset,
		Limit:   p.Limit,
	}
}
