package search_test

import (
	"reflect"
	"testing"

	"github.com/minhqn/price-intel/application/search"
	"github.com/minhqn/price-intel/constant"
	"github.com/minhqn/price-intel/model"
)

func listingsNamed(names ...string) []model.RawListing {
	out := make([]model.RawListing, 0, len(names))
	for i, n := range names {
		out = append(out, model.RawListing{ID: i + 1, Name: n})
	}
	return out
}

func names(listings []model.RawListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Name)
	}
	return out
}

func TestAssignSequentialIDs(t *testing.T) {
	raw := []model.RawListing{
		{Name: "Cà chua bi", Source: "WinMart"},
		{Name: "Cà chua thường", Source: "Coopmart"},
		{Name: "Cà rốt", Source: "Emart"},
	}

	got := search.AssignSequentialIDs(raw)

	for i, l := range got {
		if l.ID != i+1 {
			t.Fatalf("listing %d has id %d, want %d", i, l.ID, i+1)
		}
	}
	if !reflect.DeepEqual(names(got), []string{"Cà chua bi", "Cà chua thường", "Cà rốt"}) {
		t.Fatalf("order changed: %v", names(got))
	}
	// Input slice must not be mutated.
	if raw[0].ID != 0 {
		t.Fatalf("input slice was mutated")
	}
}

func TestFilterByKeywords(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		listings []model.RawListing
		want     []string
	}{
		{
			name:  "two-token query requires two matches",
			query: "tai nghe sony",
			listings: listingsNamed(
				"Tai nghe Sony WH-1000XM4",
				"Tai nghe JBL",
				"Loa Sony SRS-XB13",
			),
			want: []string{"Tai nghe Sony WH-1000XM4"},
		},
		{
			name:  "single-token query requires one match",
			query: "sony",
			listings: listingsNamed(
				"Tai nghe Sony WH-1000XM4",
				"Tai nghe JBL",
			),
			want: []string{"Tai nghe Sony WH-1000XM4"},
		},
		{
			name:  "matching is case-insensitive",
			query: "SONY wh-1000xm4",
			listings: listingsNamed(
				"tai nghe sony WH-1000XM4",
			),
			want: []string{"tai nghe sony WH-1000XM4"},
		},
		{
			name:  "relative order preserved",
			query: "ca chua",
			listings: listingsNamed(
				"Ca chua bi 300g",
				"Dưa leo",
				"Ca chua thường 1kg",
			),
			want: []string{"Ca chua bi 300g", "Ca chua thường 1kg"},
		},
		{
			name:     "nothing passes",
			query:    "tai nghe sony",
			listings: listingsNamed("Bàn phím cơ", "Chuột gaming"),
			want:     []string{},
		},
		{
			name:     "blank query matches nothing",
			query:    "   ",
			listings: listingsNamed("Cà chua", "Dưa leo"),
			want:     []string{},
		},
		{
			name:     "empty query matches nothing",
			query:    "",
			listings: listingsNamed("Cà chua"),
			want:     []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := search.FilterByKeywords(tt.query, tt.listings)
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Fatalf("FilterByKeywords() = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestFilterByKeywords_Deterministic(t *testing.T) {
	listings := listingsNamed("Tai nghe Sony WH-1000XM4", "Tai nghe JBL", "Loa Sony")

	first := search.FilterByKeywords("tai nghe sony", listings)
	for i := 0; i < 50; i++ {
		again := search.FilterByKeywords("tai nghe sony", listings)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("filter result changed between evaluations: %v vs %v", first, again)
		}
	}
}

func TestSimplifyForOracle(t *testing.T) {
	price := 10000.0
	listings := []model.RawListing{
		{ID: 1, Name: "Cà chua bi", Unit: "hộp", OriginalPrice: &price, URL: "https://example.vn/1"},
		{ID: 2, Name: "Cà chua thường", Unit: "kg", OriginalPrice: &price},
	}

	flat := search.SimplifyForOracle(listings, constant.ModeFlat)
	wantFlat := []model.OracleCandidate{
		{ID: 1, Name: "Cà chua bi"},
		{ID: 2, Name: "Cà chua thường"},
	}
	if !reflect.DeepEqual(flat, wantFlat) {
		t.Fatalf("flat candidates = %+v, want %+v", flat, wantFlat)
	}

	grouped := search.SimplifyForOracle(listings, constant.ModeGrouped)
	wantGrouped := []model.OracleCandidate{
		{ID: 1, Name: "Cà chua bi", Unit: "hộp"},
		{ID: 2, Name: "Cà chua thường", Unit: "kg"},
	}
	if !reflect.DeepEqual(grouped, wantGrouped) {
		t.Fatalf("grouped candidates = %+v, want %+v", grouped, wantGrouped)
	}
}
