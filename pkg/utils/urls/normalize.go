// ABOUTME: URL canonicalization utilities used for stable deduplication keys
// ABOUTME: Decodes entity-escaped ampersands and resolves relative references

package urls

import (
	"net/url"
	"strings"
)

// Feed generators frequently escape ampersands inside query-string URLs.
var ampReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&#038;", "&",
	"&#38;", "&",
	"&#x26;", "&",
	"&#X26;", "&",
)

// Normalize trims and entity-decodes a raw URL and reserializes it through
// strict parsing. Canonicalization is best-effort, not a correctness gate:
// on parse failure the trimmed decoded input is returned unchanged.
func Normalize(raw string) string {
	s := ampReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	return u.String()
}

// Absolutize resolves a possibly-relative URL against a page's own URL.
// Same best-effort policy as Normalize.
func Absolutize(href, base string) string {
	h := Normalize(href)
	if h == "" {
		return ""
	}
	b, err := url.Parse(Normalize(base))
	if err != nil {
		return h
	}
	r, err := url.Parse(h)
	if err != nil {
		return h
	}
	return b.ResolveReference(r).String()
}
