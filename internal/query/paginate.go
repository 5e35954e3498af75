package query

// DefaultPageSize is the fixed page size for every listing. It is a
// design constant, not a request parameter.
const DefaultPageSize = 10

// Page is one bounded slice of an ordered, filtered collection plus its
// position within the whole.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page_number"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
	PageSize   int `json:"page_size"`
}

// Paginate slices one page out of items. A page number below 1 becomes
// 1; a page number beyond the last page clamps to the last page rather
// than erroring. TotalCount reflects the full pre-pagination sequence.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	totalCount := len(items)
	totalPages := (totalCount + pageSize - 1) / pageSize
	switch {
	case totalPages == 0:
		pageNumber = 1
	case pageNumber > totalPages:
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		TotalPages: totalPages,
		TotalCount: totalCount,
		PageSize:   pageSize,
	}
}
