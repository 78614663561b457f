// ABOUTME: HTML utilities for stripping tags and locating inline images
// ABOUTME: Provides the plain-text and first-image helpers used by the extractors

package htmlx

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// rawTextTags are elements whose text content must be dropped entirely.
var rawTextTags = map[string]bool{
	"script": true,
	"style":  true,
}

// StripTags removes all markup from an HTML fragment, discarding the bodies
// of <script> and <style> elements, decoding entities, and collapsing
// whitespace runs to single spaces.
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; keep what we have
			return collapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if rawTextTags[string(name)] {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if rawTextTags[string(name)] && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// FirstImageSrc returns the src of the first <img> in an HTML fragment,
// or "" when the fragment has none.
func FirstImageSrc(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return strings.TrimSpace(src)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
