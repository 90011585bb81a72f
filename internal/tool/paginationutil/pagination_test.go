package paginationutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPagination(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		offset        int
		limit         int
		want          []int
		wantTotal     int
		wantTruncated bool
	}{
		{"full window", 0, 10, []int{1, 2, 3, 4, 5}, 5, false},
		{"first page", 0, 2, []int{1, 2}, 5, true},
		{"middle page", 2, 2, []int{3, 4}, 5, true},
		{"last page exact", 4, 1, []int{5}, 5, false},
		{"offset past end", 10, 2, []int{}, 5, false},
		{"negative offset clamps to start", -3, 2, []int{1, 2}, 5, true},
		{"negative limit yields nothing", 0, -1, []int{}, 5, true},
		{"zero limit yields nothing", 1, 0, []int{}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paged, result := ApplyPagination(items, tt.offset, tt.limit)
			assert.Equal(t, tt.want, paged)
			assert.Equal(t, tt.wantTotal, result.TotalCount)
			assert.Equal(t, tt.wantTruncated, result.Truncated)
		})
	}
}

func TestApplyPagination_Empty(t *testing.T) {
	paged, result := ApplyPagination([]string{}, 0, 10)

	assert.Empty(t, paged)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.Truncated)
}
