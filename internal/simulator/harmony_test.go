package simulator

import (
	"testing"

	"github.com/adhamgad/surplusim/internal/models"
)

func TestHarmonySelfCountsImpressions(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.5, 80, 12, origin),
		rankingRestaurant(2, 4.0, 60, 15, origin),
		rankingRestaurant(3, 3.9, 70, 8, origin),
	}

	impressions := map[int]int{}
	strategy := &HarmonyStrategy{Impressions: impressions}
	got := strategy.Rank(rankingCustomer(), available, 3)

	if len(got) == 0 {
		t.Fatalf("Rank returned no ids")
	}
	for _, id := range got {
		if impressions[id] != 1 {
			t.Fatalf("impressions[%d] = %d, want exactly 1 after a single Rank", id, impressions[id])
		}
	}
	if len(impressions) != len(got) {
		t.Fatalf("counter has %d entries, want one per displayed id (%d)", len(impressions), len(got))
	}
}

func TestHarmonyBoostsUnderexposedListings(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.0, 80, 10, origin),
		rankingRestaurant(2, 4.0, 80, 10, origin),
	}

	// identical listings, id 1 heavily over-exposed
	impressions := map[int]int{1: 100, 2: 1}
	strategy := &HarmonyStrategy{Impressions: impressions}
	got := strategy.Rank(rankingCustomer(), available, 1)

	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("Rank = %v, want the under-exposed listing", got)
	}
}

func TestHarmonyFiltersOutOfRange(t *testing.T) {
	available := []*models.Restaurant{
		rankingRestaurant(1, 5.0, 40, 20, models.Location{Lat: 0.4, Lon: 0}),
	}

	strategy := &HarmonyStrategy{Impressions: map[int]int{}}
	if got := strategy.Rank(rankingCustomer(), available, 3); len(got) != 0 {
		t.Fatalf("Rank = %v, want empty when nothing is in range", got)
	}
}
