package domain

import "testing"

func TestItemID_Deterministic(t *testing.T) {
	a := ItemID("deep-cuts", "https://example.com/post/1")
	b := ItemID("deep-cuts", "https://example.com/post/1")

	if a != b {
		t.Errorf("ItemID not deterministic: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("ItemID length = %d, want 16", len(a))
	}
}

func TestItemID_VariesWithInputs(t *testing.T) {
	base := ItemID("deep-cuts", "https://example.com/post/1")

	if ItemID("other", "https://example.com/post/1") == base {
		t.Error("ItemID ignores source id")
	}
	if ItemID("deep-cuts", "https://example.com/post/2") == base {
		t.Error("ItemID ignores link")
	}
}

func TestFeedSourceAccepts(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		categories []string
		want       bool
	}{
		{"no filter accepts anything", "", nil, true},
		{"exact match", "discos", []string{"Discos"}, true},
		{"case insensitive", "discos", []string{"DISCOS"}, true},
		{"substring match", "discos", []string{"Discos y vinilos"}, true},
		{"no matching category", "discos", []string{"Conciertos"}, false},
		{"empty categories rejected", "discos", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FeedSource{ID: "x", RequireCategory: tt.filter}
			if got := s.Accepts(tt.categories); got != tt.want {
				t.Errorf("Accepts(%v) = %v, want %v", tt.categories, got, tt.want)
			}
		})
	}
}
