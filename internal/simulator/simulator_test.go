package simulator

import (
	"math"
	"reflect"
	"testing"

	"github.com/adhamgad/surplusim/internal/models"
)

func testConfig() *models.Config {
	return &models.Config{
		Seed:                  7,
		NumDays:               3,
		CustomersPerDay:       10,
		DisplayedCount:        3,
		InventoryVarianceMin:  0.8,
		InventoryVarianceMax:  1.2,
		RatingDriftUp:         0.01,
		RatingDriftDown:       0.02,
		SoftmaxTemperature:    2.0,
		MaxBagsPerReservation: 3,
	}
}

func testMarketplace() ([]*models.Restaurant, []*models.Customer) {
	base := models.Location{Lat: 30.0, Lon: 31.2}

	restaurants := []*models.Restaurant{
		rankingRestaurant(1, 4.5, 80, 12, models.Location{Lat: base.Lat + 0.005, Lon: base.Lon}),
		rankingRestaurant(4, 4.0, 60, 15, models.Location{Lat: base.Lat, Lon: base.Lon + 0.005}),
		rankingRestaurant(6, 3.8, 50, 8, models.Location{Lat: base.Lat - 0.005, Lon: base.Lon}),
		rankingRestaurant(9, 4.8, 120, 6, models.Location{Lat: base.Lat, Lon: base.Lon - 0.005}),
	}

	customers := make([]*models.Customer, 5)
	for i := range customers {
		c := &models.Customer{
			ID:                 i + 1,
			Location:           models.Location{Lat: base.Lat + float64(i)*0.001, Lon: base.Lon},
			Segment:            models.SegmentRegular,
			WillingnessToPay:   200,
			Weights:            models.DecisionWeights{Rating: 1.0, Price: 1.0, Novelty: 0.5},
			Loyalty:            0.8,
			LeavingThreshold:   3.0,
			CategoryPreference: map[string]float64{"bakery": 1.0},
		}
		c.History = models.NewHistory()
		customers[i] = c
	}
	return restaurants, customers
}

func TestRunAllRequiresRestaurants(t *testing.T) {
	_, customers := testMarketplace()
	sim := NewSimulator(testConfig(), nil, customers)

	if _, err := sim.RunAll(); err == nil {
		t.Fatalf("expected error with no restaurants")
	}
}

func TestRunAllRequiresCustomers(t *testing.T) {
	restaurants, _ := testMarketplace()
	sim := NewSimulator(testConfig(), restaurants, nil)

	if _, err := sim.RunAll(); err == nil {
		t.Fatalf("expected error with no customers")
	}
}

func TestRunAllReportShape(t *testing.T) {
	restaurants, customers := testMarketplace()
	cfg := testConfig()
	sim := NewSimulator(cfg, restaurants, customers)

	report, err := sim.RunAll()
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if len(report.Results) != len(models.AlgorithmNames) || len(report.Comparison) != len(models.AlgorithmNames) {
		t.Fatalf("report covers %d/%d algorithms, want %d",
			len(report.Results), len(report.Comparison), len(models.AlgorithmNames))
	}

	arrivals := int64(cfg.NumDays * cfg.CustomersPerDay)
	for i, name := range models.AlgorithmNames {
		if report.Results[i].Algorithm != name || report.Comparison[i].Algorithm != name {
			t.Fatalf("algorithm order broken at %d: got %q/%q, want %q",
				i, report.Results[i].Algorithm, report.Comparison[i].Algorithm, name)
		}
		if len(report.Results[i].Restaurants) != len(restaurants) {
			t.Fatalf("%s breakdown has %d rows, want %d",
				name, len(report.Results[i].Restaurants), len(restaurants))
		}

		metrics := report.Comparison[i]
		if metrics.TotalCustomerArrivals != arrivals {
			t.Fatalf("%s arrivals = %d, want %d", name, metrics.TotalCustomerArrivals, arrivals)
		}
		if metrics.GiniCoefficient < 0 || metrics.GiniCoefficient > 1 {
			t.Fatalf("%s Gini = %v, out of range", name, metrics.GiniCoefficient)
		}

		wantConversion := float64(arrivals-metrics.CustomersWhoLeft) / float64(arrivals) * 100
		if math.Abs(metrics.ConversionRate-wantConversion) > 1e-9 {
			t.Fatalf("%s conversion = %v, want %v", name, metrics.ConversionRate, wantConversion)
		}
	}
}

func TestRunAllDeterministic(t *testing.T) {
	restaurants, customers := testMarketplace()
	cfg := testConfig()

	first, err := NewSimulator(cfg, restaurants, customers).RunAll()
	if err != nil {
		t.Fatalf("first RunAll failed: %v", err)
	}
	second, err := NewSimulator(cfg, restaurants, customers).RunAll()
	if err != nil {
		t.Fatalf("second RunAll failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs with the same seed produced different reports")
	}
}

func TestRunAllLeavesTemplatesIntact(t *testing.T) {
	restaurants, customers := testMarketplace()
	ratingBefore := restaurants[0].Rating

	sim := NewSimulator(testConfig(), restaurants, customers)
	if _, err := sim.RunAll(); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if restaurants[0].Rating != ratingBefore {
		t.Fatalf("template restaurant rating changed from %v to %v", ratingBefore, restaurants[0].Rating)
	}
	if customers[0].History.Visits != 0 {
		t.Fatalf("template customer history was mutated: %+v", customers[0].History)
	}
}

func TestRunAllAccountsForInventory(t *testing.T) {
	restaurants, customers := testMarketplace()
	sim := NewSimulator(testConfig(), restaurants, customers)

	report, err := sim.RunAll()
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	maxBags := int64(testConfig().MaxBagsPerReservation)
	for i, metrics := range report.Comparison {
		var reserved, sold, cancelled int64
		for _, row := range report.Results[i].Restaurants {
			reserved += row.Reserved
			sold += row.Sold
			cancelled += row.Cancelled
		}
		if metrics.TotalBagsSold != sold || metrics.TotalBagsCancelled != cancelled {
			t.Fatalf("%s totals disagree with breakdown: %d/%d vs %d/%d",
				metrics.Algorithm, metrics.TotalBagsSold, metrics.TotalBagsCancelled, sold, cancelled)
		}

		// every confirmed reservation yields between 1 and maxBags bags
		confirmed := reserved - cancelled
		if confirmed < 0 {
			t.Fatalf("%s cancelled %d out of %d reservations", metrics.Algorithm, cancelled, reserved)
		}
		if sold < confirmed || sold > confirmed*maxBags {
			t.Fatalf("%s sold %d bags from %d confirmed reservations", metrics.Algorithm, sold, confirmed)
		}
	}
}
