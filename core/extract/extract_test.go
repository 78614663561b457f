package extract

import (
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

func itemWithMedia(element, url string) *gofeed.Item {
	return &gofeed.Item{
		Extensions: ext.Extensions{
			"media": {
				element: []ext.Extension{
					{Name: element, Attrs: map[string]string{"url": url}},
				},
			},
		},
	}
}

func TestPickImage_MediaContentWins(t *testing.T) {
	item := itemWithMedia("content", "https://x/media.jpg")
	item.Enclosures = []*gofeed.Enclosure{{URL: "https://x/enclosure.jpg"}}
	item.Content = `<img src="https://x/inline.jpg">`

	if got := PickImage(item); got != "https://x/media.jpg" {
		t.Errorf("PickImage = %q, want media:content url", got)
	}
}

func TestPickImage_MediaThumbnail(t *testing.T) {
	item := itemWithMedia("thumbnail", "https://x/thumb.jpg")

	if got := PickImage(item); got != "https://x/thumb.jpg" {
		t.Errorf("PickImage = %q, want media:thumbnail url", got)
	}
}

func TestPickImage_Enclosure(t *testing.T) {
	item := &gofeed.Item{
		Enclosures: []*gofeed.Enclosure{
			{URL: ""},
			{URL: "https://x/enclosure.jpg", Type: "image/jpeg"},
		},
	}

	if got := PickImage(item); got != "https://x/enclosure.jpg" {
		t.Errorf("PickImage = %q, want enclosure url", got)
	}
}

func TestPickImage_InlineImg(t *testing.T) {
	item := &gofeed.Item{
		Content: `<p>review</p><IMG SRC="https://x/cover.jpg">`,
	}

	if got := PickImage(item); got != "https://x/cover.jpg" {
		t.Errorf("PickImage = %q, want inline img src", got)
	}
}

func TestPickImage_DescriptionFallback(t *testing.T) {
	item := &gofeed.Item{
		Description: `<img src="https://x/summary.jpg">`,
	}

	if got := PickImage(item); got != "https://x/summary.jpg" {
		t.Errorf("PickImage = %q, want img from description", got)
	}
}

func TestPickImage_NormalizesCandidate(t *testing.T) {
	item := itemWithMedia("content", "https://x/a.jpg?w=600&amp;h=400")

	if got := PickImage(item); got != "https://x/a.jpg?w=600&h=400" {
		t.Errorf("PickImage = %q, want entity-decoded url", got)
	}
}

func TestPickImage_NothingFound(t *testing.T) {
	if got := PickImage(&gofeed.Item{Title: "bare"}); got != "" {
		t.Errorf("PickImage = %q, want empty string", got)
	}
}

func TestIsJunkImage(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://s.w.org/images/core/emoji/14.0.0/72x72/1f389.png", true},
		{"https://example.com/wp-includes/images/smilies/icon_wink.gif", true},
		{"https://example.com/covers/album.jpg", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsJunkImage(tt.url); got != tt.want {
			t.Errorf("IsJunkImage(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestPickExcerpt_StripsAndPrefersContent(t *testing.T) {
	item := &gofeed.Item{
		Content:     "<p>full <b>record</b> review</p><script>nope()</script>",
		Description: "short summary",
	}

	if got := PickExcerpt(item); got != "full record review" {
		t.Errorf("PickExcerpt = %q", got)
	}
}

func TestPickExcerpt_Truncates(t *testing.T) {
	item := &gofeed.Item{Description: strings.Repeat("a", 500)}

	got := PickExcerpt(item)
	if len([]rune(got)) > MaxExcerptLen {
		t.Errorf("excerpt length %d exceeds cap %d", len([]rune(got)), MaxExcerptLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated excerpt missing ellipsis: %q", got)
	}
}

func TestPickExcerpt_ShortTextUntouched(t *testing.T) {
	item := &gofeed.Item{Description: "brief"}

	if got := PickExcerpt(item); got != "brief" {
		t.Errorf("PickExcerpt = %q, want %q", got, "brief")
	}
}

func TestPickCategories(t *testing.T) {
	item := &gofeed.Item{
		Categories: []string{" Discos ", "", "House", "Techno"},
	}

	got := PickCategories(item)
	want := []string{"Discos", "House", "Techno"}
	if len(got) != len(want) {
		t.Fatalf("PickCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPickCategories_CapsAtTwelve(t *testing.T) {
	item := &gofeed.Item{Categories: make([]string, 0, 20)}
	for i := 0; i < 20; i++ {
		item.Categories = append(item.Categories, "genre")
	}

	if got := PickCategories(item); len(got) != MaxCategories {
		t.Errorf("got %d categories, want %d", len(got), MaxCategories)
	}
}
