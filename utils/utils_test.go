package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(45, 2, 20)

	assert.Equal(t, 45, p.TotalItems)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := CreatePagination(10, 0, 0)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Sport shoe", "SHOE"))
	assert.True(t, ContainsFold("Black", "black"))
	assert.False(t, ContainsFold("Dress", "skirt"))
	assert.False(t, ContainsFold("", "x"))
}
