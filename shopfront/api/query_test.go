package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery(t *testing.T) {

	params := url.Values{}
	params.Set("q", "a b")
	params.Add("tags", "x")
	params.Add("tags", "y")

	got := EncodeQuery(params)

	assert.Contains(t, got, "tags=x&tags=y", "repeated pairs keep element order")
	assert.Contains(t, got, "q=a+b")
	assert.NotContains(t, got, "page")

	parsed, err := url.ParseQuery(got[1:])
	assert.NoError(t, err)
	assert.Equal(t, "a b", parsed.Get("q"))
	assert.Equal(t, []string{"x", "y"}, parsed["tags"])
}

func TestEncodeQuery_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeQuery(url.Values{}))
	assert.Equal(t, "", EncodeQuery(nil))

	// a key with no values must not leave a dangling "?"
	assert.Equal(t, "", EncodeQuery(url.Values{"tags": {}}))
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "plain-id", PathSegment("plain-id"))
	assert.Equal(t, "sku%2F42", PathSegment("sku/42"))
	assert.Equal(t, "a%20b", PathSegment("a b"))
}
