package view

// TotalPages returns ceil(matchCount / pageSize), zero when nothing matched
func TotalPages(matchCount, pageSize int) int {
	if matchCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (matchCount + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of items. Pages past the last one, and
// non-positive sizes or page numbers, yield an empty slice.
func Paginate[T any](items []T, pageSize, pageNumber int) []T {
	if pageSize < 1 || pageNumber < 1 || pageNumber > TotalPages(len(items), pageSize) {
		return []T{}
	}

	start := (pageNumber - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}

// ClampPage keeps page within [1, totalPages], or 1 when there are no pages
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
