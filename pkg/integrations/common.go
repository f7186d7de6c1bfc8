package integrations

import (
	"net/http"
	"net/url"
	"strings"
)

// NewHTTPClient creates an HTTP client for upstream requests.
// It carries no timeout; callers bound requests with a context or
// [WithTimeout].
func NewHTTPClient() *http.Client {
	return &http.Client{}
}

// NormalizeName converts a resource name to its canonical upstream form:
// trimmed, lower-case, with spaces and underscores replaced by hyphens.
// "Mr Mime" and "mr_mime" both become "mr-mime".
func NormalizeName(name string) string {
	return nameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

var nameReplacer = strings.NewReplacer(" ", "-", "_", "-")

// JoinURL appends path segments to base, escaping each segment.
// A trailing slash on base is ignored.
func JoinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
