package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     PageFilter
		wantOffset int
		wantLimit  int
	}{
		{"defaults", PageFilter{}, 0, 20},
		{"first page", PageFilter{Page: 1, PageSize: 10}, 0, 10},
		{"third page", PageFilter{Page: 3, PageSize: 10}, 20, 10},
		{"negative page", PageFilter{Page: -2, PageSize: 10}, 0, 10},
		{"oversized page size capped", PageFilter{Page: 2, PageSize: 500}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.filter.Offset())
			assert.Equal(t, tt.wantLimit, tt.filter.Limit())
		})
	}
}

func TestSortFilter(t *testing.T) {
	tests := []struct {
		name           string
		filter         SortFilter
		wantDescending bool
		wantClause     string
	}{
		{"empty", SortFilter{}, false, ""},
		{"ascending by default", SortFilter{SortBy: "name"}, false, "name ASC"},
		{"explicit asc", SortFilter{SortBy: "name", SortOrder: "asc"}, false, "name ASC"},
		{"lowercase desc", SortFilter{SortBy: "price_cents", SortOrder: "desc"}, true, "price_cents DESC"},
		{"uppercase desc", SortFilter{SortBy: "created_at", SortOrder: "DESC"}, true, "created_at DESC"},
		{"unknown order treated as asc", SortFilter{SortBy: "name", SortOrder: "sideways"}, false, "name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDescending, tt.filter.IsDescending())
			assert.Equal(t, tt.wantClause, tt.filter.OrderClause())
		})
	}
}
