// internal/adapters/in/http/handlers/helpers_test.go
package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSessionID(t *testing.T) {
	r := httptest.NewRequest("GET", "/cart", nil)
	r.Header.Set("X-Session-Id", " abc ")
	assert.Equal(t, "abc", readSessionID(r))

	r = httptest.NewRequest("GET", "/cart?sessionId=qs", nil)
	assert.Equal(t, "qs", readSessionID(r))

	// header wins over query
	r = httptest.NewRequest("GET", "/cart?sessionId=qs", nil)
	r.Header.Set("X-Session-Id", "hdr")
	assert.Equal(t, "hdr", readSessionID(r))
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "abc123", lastPathSegment("/admin/artworks/abc123"))
	assert.Equal(t, "abc123", lastPathSegment("/admin/artworks/abc123/"))
	assert.Equal(t, "artworks", lastPathSegment("/admin/artworks"))
	assert.Equal(t, "plain", lastPathSegment("plain"))
}

func TestParsePrice(t *testing.T) {
	assert.Nil(t, parsePrice(""))
	assert.Nil(t, parsePrice("  "))
	assert.Nil(t, parsePrice("0"))
	assert.Nil(t, parsePrice("-5"))
	assert.Nil(t, parsePrice("abc"))

	p := parsePrice(" 1200.50 ")
	require.NotNil(t, p)
	assert.Equal(t, 1200.50, *p)
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool(" 1 "))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool(""))
	assert.False(t, parseBool("maybe"))
}
