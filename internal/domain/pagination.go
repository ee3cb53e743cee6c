package domain

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// NormalizePage maps page numbers below 1 to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size] clipped to the bounds of items.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if start < 0 {
		start = 0
	}
	if end > len(items) {
		end = len(items)
	}
	if start >= end {
		return []T{}
	}
	return items[start:end]
}
