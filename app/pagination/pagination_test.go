package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	p := Clamp(0, 500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	p = Clamp(-3, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)

	p = Clamp(2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 20, p.Offset())
}

func TestWrap(t *testing.T) {
	env := Wrap([]int{1, 2, 3}, Page{Page: 2, Limit: 3}, 7)
	assert.Equal(t, 7, env.Pagination.Total)
	assert.Equal(t, 3, env.Pagination.TotalPages)
	assert.True(t, env.Pagination.HasNextPage)
	assert.True(t, env.Pagination.HasPreviousPage)

	env = Wrap([]int{}, Page{Page: 1, Limit: 20}, 0)
	assert.Equal(t, 0, env.Pagination.TotalPages)
	assert.False(t, env.Pagination.HasNextPage)
	assert.False(t, env.Pagination.HasPreviousPage)
	assert.NotNil(t, env.Data)
}
