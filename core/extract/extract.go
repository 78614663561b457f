// ABOUTME: Field extractors derive image, excerpt and categories from raw feed items
// ABOUTME: Every extractor tolerates missing fields and works through fallback chains

package extract

import (
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/albash-builds/dj-newswire/pkg/utils/htmlx"
	"github.com/albash-builds/dj-newswire/pkg/utils/urls"
)

const (
	// MaxCategories caps the category list per item
	MaxCategories = 12

	// MaxExcerptLen is the hard excerpt length cap, ellipsis included
	MaxExcerptLen = 240

	excerptCut = 237
)

// junkImagePatterns match known placeholder assets that feed generators
// surface as thumbnails. Matched by substring, lowercase.
var junkImagePatterns = []string{
	"s.w.org/images/core/emoji",
	"wp-includes/images/smilies",
	"wp-content/plugins/wp-monalisa",
	"gravatar.com/avatar",
}

// PickImage returns the best image URL for a raw feed item, trying in order:
// media:content url attribute, media:thumbnail url attribute, the first
// enclosure URL, and finally the first <img src> in the item's HTML body.
// Every candidate is normalized. Returns "" when all fail.
func PickImage(item *gofeed.Item) string {
	if src := mediaAttr(item, "content"); src != "" {
		return urls.Normalize(src)
	}
	if src := mediaAttr(item, "thumbnail"); src != "" {
		return urls.Normalize(src)
	}
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return urls.Normalize(enc.URL)
		}
	}
	if src := htmlx.FirstImageSrc(bestHTML(item)); src != "" {
		return urls.Normalize(src)
	}
	return ""
}

// IsJunkImage reports whether a URL points at a known placeholder image.
func IsJunkImage(url string) bool {
	if url == "" {
		return false
	}
	lower := strings.ToLower(url)
	for _, pattern := range junkImagePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// PickExcerpt builds a plain-text excerpt from the best available HTML field,
// truncated with an ellipsis when it exceeds MaxExcerptLen.
func PickExcerpt(item *gofeed.Item) string {
	text := htmlx.StripTags(bestHTML(item))
	runes := []rune(text)
	if len(runes) > MaxExcerptLen {
		text = strings.TrimSpace(string(runes[:excerptCut])) + "..."
	}
	return text
}

// PickCategories returns up to MaxCategories trimmed non-empty categories,
// preserving source order.
func PickCategories(item *gofeed.Item) []string {
	out := make([]string, 0, len(item.Categories))
	for _, c := range item.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out = append(out, c)
		if len(out) == MaxCategories {
			break
		}
	}
	return out
}

// bestHTML picks the richest HTML body available: content:encoded is mapped
// to Content by the parser, with Description as the summary fallback.
func bestHTML(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}

// mediaAttr reads the url attribute of a media-namespace extension element.
func mediaAttr(item *gofeed.Item, element string) string {
	if item.Extensions == nil {
		return ""
	}
	for _, ext := range item.Extensions["media"][element] {
		if url := strings.TrimSpace(ext.Attrs["url"]); url != "" {
			return url
		}
	}
	return ""
}
