// ABOUTME: Deduplicator and ranker for merged newswire items
// ABOUTME: First-seen-wins by canonical link, then stable recency ordering

package rank

import (
	"sort"

	"github.com/albash-builds/dj-newswire/core/domain"
)

// Rank merges items across feeds: duplicates sharing a canonical link
// collapse to the first one encountered, then items are stably sorted by
// PublishedTs descending. A zero timestamp is the lowest possible recency,
// so undated items trail all dated ones while keeping their merge order.
//
// Rank runs twice per pipeline: once to select the enrichment head and once
// after enrichment to reflect corrected dates.
func Rank(items []domain.NewsItem) []domain.NewsItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.Link]; dup {
			continue
		}
		seen[item.Link] = struct{}{}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedTs > out[j].PublishedTs
	})

	return out
}
