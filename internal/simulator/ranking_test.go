package simulator

import (
	"testing"

	"github.com/adhamgad/surplusim/internal/models"
)

func rankingCustomer() *models.Customer {
	c := &models.Customer{
		ID:               1,
		Location:         models.Location{Lat: 0, Lon: 0},
		Segment:          models.SegmentRegular,
		WillingnessToPay: 200,
		Weights:          models.DecisionWeights{Rating: 1.0, Price: 1.0, Novelty: 0.5},
		Loyalty:          0.9,
		LeavingThreshold: 0,
	}
	c.History = models.NewHistory()
	return c
}

func rankingRestaurant(id int, rating, price float64, estimated int, loc models.Location) *models.Restaurant {
	return &models.Restaurant{
		ID:            id,
		Rating:        rating,
		PricePerBag:   price,
		EstimatedBags: estimated,
		ActualBags:    estimated,
		Category:      "bakery",
		Location:      loc,
	}
}

func TestBaselineRanksByRating(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.2, 100, 10, origin),
		rankingRestaurant(2, 4.9, 100, 10, origin),
		rankingRestaurant(3, 3.5, 100, 10, origin),
		rankingRestaurant(4, 4.5, 100, 10, origin),
	}

	strategy := &BaselineStrategy{}
	got := strategy.Rank(rankingCustomer(), available, 2)

	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("Rank = %v, want [2 4]", got)
	}
}

func TestBaselineIgnoresCustomer(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.2, 100, 10, origin),
		rankingRestaurant(2, 4.9, 100, 10, origin),
		rankingRestaurant(3, 3.5, 100, 10, origin),
	}

	strategy := &BaselineStrategy{}
	first := strategy.Rank(rankingCustomer(), available, 3)

	other := rankingCustomer()
	other.ID = 2
	other.Segment = models.SegmentPremium
	other.Weights = models.DecisionWeights{Rating: 1.5, Price: 0.6, Novelty: 0.6}
	second := strategy.Rank(other, available, 3)

	if len(first) != len(second) {
		t.Fatalf("list lengths differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("lists differ at %d: %v vs %v", i, first, second)
		}
	}
}

func TestAndrewDampsOverexposedListings(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.5, 100, 10, origin),
		rankingRestaurant(2, 4.5, 100, 10, origin),
	}

	strategy := &AndrewStrategy{Impressions: map[int]int{1: 100}}
	got := strategy.Rank(rankingCustomer(), available, 2)

	if len(got) != 2 || got[0] != 2 {
		t.Fatalf("Rank = %v, want the unexposed listing first", got)
	}
}

func TestAmerPinsNearestFirst(t *testing.T) {
	available := []*models.Restaurant{
		// highest scoring but farther away
		rankingRestaurant(1, 5.0, 40, 15, models.Location{Lat: 0.04, Lon: 0}),
		// nearest, mediocre
		rankingRestaurant(2, 3.2, 150, 5, models.Location{Lat: 0.001, Lon: 0}),
		rankingRestaurant(3, 4.0, 80, 10, models.Location{Lat: 0.02, Lon: 0}),
	}

	strategy := &AmerStrategy{}
	got := strategy.Rank(rankingCustomer(), available, 3)

	if len(got) != 3 || got[0] != 2 {
		t.Fatalf("Rank = %v, want the nearest listing pinned first", got)
	}
}

func TestAmerFiltersOutOfRange(t *testing.T) {
	available := []*models.Restaurant{
		rankingRestaurant(1, 5.0, 40, 15, models.Location{Lat: 0.2, Lon: 0.2}),
	}

	strategy := &AmerStrategy{}
	if got := strategy.Rank(rankingCustomer(), available, 3); len(got) != 0 {
		t.Fatalf("Rank = %v, want empty when nothing is in range", got)
	}
}

func TestZiadCapsShortlistAtFive(t *testing.T) {
	origin := models.Location{}
	available := make([]*models.Restaurant, 0, 8)
	for i := 1; i <= 8; i++ {
		available = append(available, rankingRestaurant(i, 4.0, float64(50+i), 10, origin))
	}

	strategy := &ZiadStrategy{}
	got := strategy.Rank(rankingCustomer(), available, 10)

	if len(got) != 5 {
		t.Fatalf("Rank returned %d ids, want cap at 5", len(got))
	}
}

func TestZiadPrefersCheapUnsoldStock(t *testing.T) {
	origin := models.Location{}
	available := []*models.Restaurant{
		rankingRestaurant(1, 4.0, 150, 2, origin),
		rankingRestaurant(2, 4.0, 50, 20, origin),
	}

	strategy := &ZiadStrategy{}
	got := strategy.Rank(rankingCustomer(), available, 2)

	if len(got) != 2 || got[0] != 2 {
		t.Fatalf("Rank = %v, want the cheap high-stock listing first", got)
	}
}

func TestNewStrategyDispatch(t *testing.T) {
	impressions := map[int]int{}
	for _, name := range models.AlgorithmNames {
		strategy := newStrategy(name, impressions)
		if strategy.Name() != name {
			t.Fatalf("newStrategy(%q).Name() = %q", name, strategy.Name())
		}
	}
}

func TestSamaReturnsDistinctInRangeIds(t *testing.T) {
	customer := rankingCustomer()
	customer.Segment = models.SegmentBudget
	customer.WillingnessToPay = 150
	customer.CategoryPreference = map[string]float64{"bakery": 1.0}

	available := []*models.Restaurant{
		rankingRestaurant(1, 4.0, 60, 12, models.Location{Lat: 0.01, Lon: 0}),
		rankingRestaurant(2, 4.2, 80, 9, models.Location{Lat: 0.02, Lon: 0}),
		rankingRestaurant(3, 3.9, 50, 15, models.Location{Lat: 0, Lon: 0.01}),
		rankingRestaurant(4, 4.6, 120, 8, models.Location{Lat: 0, Lon: 0.02}),
		rankingRestaurant(5, 4.1, 70, 10, models.Location{Lat: 0.03, Lon: 0}),
		// out of range, must never appear
		rankingRestaurant(6, 5.0, 10, 25, models.Location{Lat: 0.3, Lon: 0.3}),
	}

	strategy := &SamaStrategy{}
	got := strategy.Rank(customer, available, 5)

	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("Rank returned %d ids, want between 1 and 5", len(got))
	}
	seen := make(map[int]bool)
	for _, id := range got {
		if seen[id] {
			t.Fatalf("Rank returned duplicate id %d: %v", id, got)
		}
		seen[id] = true
		if id == 6 {
			t.Fatalf("Rank included out-of-range id 6: %v", got)
		}
	}
}
