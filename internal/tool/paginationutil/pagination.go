// Package paginationutil windows tool output. Directory listings, file
// matches and search hits all reach the model through an offset/limit
// window so a large workspace cannot flood the conversation.
package paginationutil

// PaginationResult reports the window that was applied.
type PaginationResult struct {
	// TotalCount is the number of items before windowing.
	TotalCount int
	// Truncated is true when items beyond the window were cut off.
	Truncated bool
}

// ApplyPagination returns the window [offset, offset+limit) of items.
// Out-of-range and negative inputs clamp rather than panic: an offset
// past the end yields an empty slice, a negative offset starts at the
// beginning, and a negative limit yields nothing.
func ApplyPagination[T any](items []T, offset, limit int) ([]T, PaginationResult) {
	totalCount := len(items)

	start := offset
	if start < 0 {
		start = 0
	}
	if start > totalCount {
		start = totalCount
	}

	if limit < 0 {
		limit = 0
	}
	end := start + limit
	truncated := end < totalCount
	if end > totalCount {
		end = totalCount
	}

	return items[start:end], PaginationResult{
		TotalCount: totalCount,
		Truncated:  truncated,
	}
}
