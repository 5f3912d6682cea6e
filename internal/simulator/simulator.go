package simulator

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/adhamgad/surplusim/internal/models"
	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
)

// Simulator compares the fixed set of ranking algorithms over the same
// marketplace. The restaurants and customers it holds are templates; every
// algorithm run works on its own deep copies, so runs are order-independent.
type Simulator struct {
	Config      *models.Config
	Restaurants []*models.Restaurant
	Customers   []*models.Customer
}

func NewSimulator(config *models.Config, restaurants []*models.Restaurant, customers []*models.Customer) *Simulator {
	return &Simulator{
		Config:      config,
		Restaurants: restaurants,
		Customers:   customers,
	}
}

// RunAll executes one full multi-day simulation per algorithm and returns
// the combined report. Run k seeds its generator with seed+k, so a report is
// reproducible for a given config and input.
func (s *Simulator) RunAll() (*models.SimulationReport, error) {
	if len(s.Restaurants) == 0 {
		return nil, fmt.Errorf("simulation misconfigured: at least one restaurant is required")
	}
	if len(s.Customers) == 0 {
		return nil, fmt.Errorf("simulation misconfigured: at least one customer is required")
	}

	report := &models.SimulationReport{}
	bar := progressbar.Default(int64(len(models.AlgorithmNames)), "comparing ranking algorithms")
	for i, name := range models.AlgorithmNames {
		rng := rand.New(rand.NewSource(s.Config.Seed + int64(i)))
		run := newAlgorithmRun(s.Config, name, s.Restaurants, s.Customers, rng)
		result, metrics := run.execute()
		report.Results = append(report.Results, result)
		report.Comparison = append(report.Comparison, metrics)
		_ = bar.Add(1)
	}
	return report, nil
}

// Run executes the comparison and emits the result records to the configured
// output destination.
func (s *Simulator) Run() error {
	started := time.Now()
	report, err := s.RunAll()
	if err != nil {
		return err
	}
	log.Printf("compared %d algorithms over %d days in %s",
		len(report.Comparison), s.Config.NumDays, time.Since(started).Round(time.Millisecond))
	return s.writeReport(report)
}

type restaurantStats struct {
	reserved        int
	sold            int
	cancelled       int
	waste           int
	exposures       int
	revenue         float64
	actualBagsTotal int
}

// algorithmRun owns all mutable state for one algorithm's simulation:
// restaurant copies, customer copies with fresh histories, the impression
// counter, and the run's random stream.
type algorithmRun struct {
	cfg      *models.Config
	name     string
	rng      *rand.Rand
	strategy RankingStrategy

	restaurants []*models.Restaurant
	byID        map[int]*models.Restaurant
	customers   []*models.Customer
	impressions map[int]int
	stats       map[int]*restaurantStats

	totals struct {
		bagsSold         int
		bagsCancelled    int
		bagsUnsold       int
		revenueGenerated float64
		revenueLost      float64
		customersLeft    int
	}
}

func newAlgorithmRun(cfg *models.Config, name string, restaurants []*models.Restaurant, customers []*models.Customer, rng *rand.Rand) *algorithmRun {
	run := &algorithmRun{
		cfg:         cfg,
		name:        name,
		rng:         rng,
		byID:        make(map[int]*models.Restaurant, len(restaurants)),
		impressions: make(map[int]int),
		stats:       make(map[int]*restaurantStats, len(restaurants)),
	}

	run.restaurants = make([]*models.Restaurant, len(restaurants))
	for i, restaurant := range restaurants {
		clone := restaurant.Clone()
		run.restaurants[i] = clone
		run.byID[clone.ID] = clone
		run.stats[clone.ID] = &restaurantStats{}
	}

	run.customers = make([]*models.Customer, len(customers))
	for i, customer := range customers {
		run.customers[i] = customer.Clone()
	}

	run.strategy = newStrategy(name, run.impressions)
	return run
}

func (run *algorithmRun) execute() (models.AlgorithmResult, models.AlgorithmMetrics) {
	for day := 0; day < run.cfg.NumDays; day++ {
		run.simulateDay(day)
	}
	return run.buildResult(), run.buildMetrics()
}

func (run *algorithmRun) simulateDay(day int) {
	ledger := NewReservationLedger()

	for _, restaurant := range run.restaurants {
		restaurant.Replenish(run.rng, run.cfg.InventoryVarianceMin, run.cfg.InventoryVarianceMax)
		run.stats[restaurant.ID].actualBagsTotal += restaurant.ActualBags
	}

	// arrival order matters: every reservation narrows what later customers see
	for i := 0; i < run.cfg.CustomersPerDay; i++ {
		customer := run.customers[(day*run.cfg.CustomersPerDay+i)%len(run.customers)]
		run.processArrival(day, customer, ledger)
	}

	for _, restaurant := range run.restaurants {
		settlement := SettleRestaurantDay(restaurant, ledger.Pending(restaurant.ID),
			run.cfg.MaxBagsPerReservation, run.cfg.RatingDriftUp, run.cfg.RatingDriftDown)

		stats := run.stats[restaurant.ID]
		stats.sold += settlement.ConfirmedBags
		stats.cancelled += settlement.Cancelled
		stats.waste += settlement.Waste
		stats.revenue += settlement.Revenue

		run.totals.bagsSold += settlement.ConfirmedBags
		run.totals.bagsCancelled += settlement.Cancelled
		run.totals.bagsUnsold += settlement.Waste
		run.totals.revenueGenerated += settlement.Revenue
		run.totals.revenueLost += settlement.RevenueLost
	}
}

func (run *algorithmRun) processArrival(day int, customer *models.Customer, ledger *ReservationLedger) {
	available := run.availableRestaurants()
	displayed := run.strategy.Rank(customer, available, run.cfg.DisplayedCount)

	// HARMONY maintains the impression counter itself; everyone else gets
	// counted here for whatever was displayed
	if run.name != models.AlgorithmHarmony {
		for _, id := range displayed {
			run.impressions[id]++
		}
	}
	for _, id := range displayed {
		run.stats[id].exposures++
	}

	chosenID, reserved := ChooseRestaurant(customer, displayed, run.byID, run.cfg.SoftmaxTemperature, run.rng)
	if !reserved {
		run.totals.customersLeft++
		customer.History.Churned = true
		return
	}

	restaurant := run.byID[chosenID]
	if !restaurant.Available() {
		return
	}

	ledger.Add(&models.Reservation{
		ID:           cuid.New(),
		Customer:     customer,
		RestaurantID: chosenID,
		Timestamp:    float64(day)*1000 + run.rng.Float64()*1000,
		Status:       models.ReservationStatusPending,
	})
	restaurant.ReservedCount++
	run.stats[chosenID].reserved++

	history := &customer.History
	history.Visits++
	history.Reservations++
	history.Interaction(chosenID).Reservations++
	history.CategoriesReserved[restaurant.Category]++
}

func (run *algorithmRun) availableRestaurants() []*models.Restaurant {
	available := make([]*models.Restaurant, 0, len(run.restaurants))
	for _, restaurant := range run.restaurants {
		if restaurant.Available() {
			available = append(available, restaurant)
		}
	}
	return available
}

func (run *algorithmRun) buildResult() models.AlgorithmResult {
	result := models.AlgorithmResult{Algorithm: run.name}
	for _, restaurant := range run.restaurants {
		stats := run.stats[restaurant.ID]
		result.Restaurants = append(result.Restaurants, models.RestaurantBreakdown{
			Algorithm:     run.name,
			RestaurantID:  int64(restaurant.ID),
			Name:          restaurant.Name,
			Branch:        restaurant.Branch,
			EstimatedBags: int64(restaurant.EstimatedBags),
			AvgActualBags: int64(math.Round(float64(stats.actualBagsTotal) / float64(run.cfg.NumDays))),
			Reserved:      int64(stats.reserved),
			Sold:          int64(stats.sold),
			Cancelled:     int64(stats.cancelled),
			Waste:         int64(stats.waste),
			Revenue:       stats.revenue,
			Exposures:     int64(stats.exposures),
		})
	}
	return result
}

func (run *algorithmRun) buildMetrics() models.AlgorithmMetrics {
	arrivals := run.cfg.NumDays * run.cfg.CustomersPerDay

	exposures := make([]int, 0, len(run.restaurants))
	for _, restaurant := range run.restaurants {
		exposures = append(exposures, run.impressions[restaurant.ID])
	}

	return models.AlgorithmMetrics{
		Algorithm:             run.name,
		TotalBagsSold:         int64(run.totals.bagsSold),
		TotalBagsCancelled:    int64(run.totals.bagsCancelled),
		TotalBagsUnsold:       int64(run.totals.bagsUnsold),
		TotalRevenueGenerated: run.totals.revenueGenerated,
		TotalRevenueLost:      run.totals.revenueLost,
		RevenueEfficiency:     revenueEfficiency(run.totals.revenueGenerated, run.totals.revenueLost),
		CustomersWhoLeft:      int64(run.totals.customersLeft),
		ConversionRate:        conversionRate(arrivals, run.totals.customersLeft),
		GiniCoefficient:       GiniCoefficient(exposures),
		TotalCustomerArrivals: int64(arrivals),
	}
}
