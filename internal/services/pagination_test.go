package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{100, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pageCount(tc.total, PageSize), "total=%d", tc.total)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0, 3))
	assert.Equal(t, 1, clampPage(-5, 3))
	assert.Equal(t, 1, clampPage(1, 3))
	assert.Equal(t, 3, clampPage(3, 3))
	assert.Equal(t, 3, clampPage(99, 3))
}

func TestPageNavigation(t *testing.T) {
	p := &Page{Number: 1, TotalPages: 3}
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p = &Page{Number: 3, TotalPages: 3}
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())

	p = &Page{Number: 1, TotalPages: 1}
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}
