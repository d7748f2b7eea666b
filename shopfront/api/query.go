package api

import "net/url"

// EncodeQuery renders params as a query string with a leading "?".
// Multi-valued keys become repeated key=value pairs in element order; keys
// with no values contribute nothing; an empty set yields an empty string
// rather than a bare "?".
func EncodeQuery(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	encoded := params.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// PathSegment percent-encodes an identifier embedded in a URL path.
func PathSegment(id string) string {
	return url.PathEscape(id)
}
