package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogs-api/pagination"
)

func TestPagesCount(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"zero matches zero pages", 0, 10, 0},
		{"exact fit", 10, 5, 2},
		{"partial last page", 10, 3, 4},
		{"single page", 3, 10, 1},
		{"one item", 1, 10, 1},
		{"degenerate page size", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.PagesCount(tt.total, tt.pageSize))
		})
	}
}

func TestParamsNormalize(t *testing.T) {
	p := pagination.Params{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.DefaultPageSize, p.PageSize)

	p = pagination.Params{Page: -3, PageSize: -1}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, pagination.DefaultPageSize, p.PageSize)

	p = pagination.Params{Page: 4, PageSize: 25}.Normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.PageSize)
}

func TestParamsSkip(t *testing.T) {
	p := pagination.Params{Page: 3, PageSize: 10}
	assert.Equal(t, 20, p.Skip())

	p = pagination.Params{Page: 1, PageSize: 10}
	assert.Equal(t, 0, p.Skip())
}

func TestMatchesTerm(t *testing.T) {
	assert.True(t, pagination.MatchesTerm("anything", ""))
	assert.True(t, pagination.MatchesTerm("Generics in Go", "go"))
	assert.True(t, pagination.MatchesTerm("GOING further", "gO"))
	assert.False(t, pagination.MatchesTerm("Channels", "go"))
	assert.False(t, pagination.MatchesTerm("", "go"))
}

func TestNewPage(t *testing.T) {
	p := pagination.Params{Page: 2, PageSize: 3}.Normalize()
	page := pagination.NewPage(p, 10, []string{"a", "b", "c"})
	assert.Equal(t, 4, page.PagesCount)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 10, page.TotalCount)
	assert.Equal(t, []string{"a", "b", "c"}, page.Items)

	empty := pagination.NewPage[string](p, 0, nil)
	assert.Equal(t, 0, empty.PagesCount)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}
