package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestPageParam(t *testing.T) {
	assert.Equal(t, 1, PageParam(""))
	assert.Equal(t, 1, PageParam("abc"))
	assert.Equal(t, 1, PageParam("0"))
	assert.Equal(t, 1, PageParam("-3"))
	assert.Equal(t, 7, PageParam("7"))
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := string(RenderMarkdown("hello **world**\n\n<script>alert(1)</script>"))
	assert.Contains(t, out, "<strong>world</strong>")
	assert.False(t, strings.Contains(out, "<script>"))
}
