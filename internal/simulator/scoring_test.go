package simulator

import (
	"math"
	"testing"

	"github.com/adhamgad/surplusim/internal/models"
)

func scoringCustomer() *models.Customer {
	c := &models.Customer{
		ID:               1,
		Location:         models.Location{Lat: 0, Lon: 0},
		Segment:          models.SegmentRegular,
		WillingnessToPay: 100,
		Weights:          models.DecisionWeights{Rating: 1.0, Price: 1.0, Novelty: 0.5},
		Loyalty:          0.9,
	}
	c.History = models.NewHistory()
	return c
}

func TestDistance(t *testing.T) {
	a := models.Location{Lat: 0, Lon: 0}
	b := models.Location{Lat: 0.03, Lon: 0.04}
	if got := Distance(a, b); math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("Distance = %v, want 0.05", got)
	}
}

func TestBaseScoreOutOfRange(t *testing.T) {
	customer := scoringCustomer()
	restaurant := &models.Restaurant{
		ID:       1,
		Rating:   5.0,
		Location: models.Location{Lat: 0.1, Lon: 0.1},
	}

	if got := BaseScore(customer, restaurant); got != OutOfRangeScore {
		t.Fatalf("BaseScore = %v, want out-of-range sentinel %v", got, OutOfRangeScore)
	}
}

func TestBaseScoreComponents(t *testing.T) {
	customer := scoringCustomer()
	restaurant := &models.Restaurant{
		ID:          1,
		Rating:      4.0,
		PricePerBag: 50,
		Category:    "bakery",
		Location:    models.Location{Lat: 0, Lon: 0.025},
	}

	// rating 4.0 + price headroom 0.5 + novelty 0.5 + distance (1-0.5)*1.5
	want := 4.0 + 0.5 + 0.5 + 0.75
	if got := BaseScore(customer, restaurant); math.Abs(got-want) > 1e-9 {
		t.Fatalf("BaseScore = %v, want %v", got, want)
	}
}

func TestBaseScoreNoveltyDecay(t *testing.T) {
	customer := scoringCustomer()
	restaurant := &models.Restaurant{
		ID:          1,
		Rating:      4.0,
		PricePerBag: 50,
		Category:    "bakery",
		Location:    models.Location{Lat: 0, Lon: 0.025},
	}

	fresh := BaseScore(customer, restaurant)

	customer.History.CategoriesReserved["bakery"] = 1
	repeat := BaseScore(customer, restaurant)

	// novelty halves after the first reservation in the category
	if math.Abs((fresh-repeat)-0.25) > 1e-9 {
		t.Fatalf("novelty decay = %v, want 0.25", fresh-repeat)
	}
}
