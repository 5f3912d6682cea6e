package factories

import (
	"math"
	"math/rand"

	"github.com/adhamgad/surplusim/internal/models"
	"github.com/jaswdr/faker"
)

// SegmentRatios is the population mix assigned at generation time.
var SegmentRatios = map[string]float64{
	models.SegmentBudget:  0.40,
	models.SegmentPremium: 0.25,
	models.SegmentRegular: 0.35,
}

type CustomerFactory struct {
	fake   faker.Faker
	rng    *rand.Rand
	nextID int
}

func NewCustomerFactory(seed int64) *CustomerFactory {
	return &CustomerFactory{
		fake:   faker.NewWithSeed(rand.NewSource(seed)),
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

func (cf *CustomerFactory) assignSegment() string {
	r := cf.rng.Float64()
	if r < SegmentRatios[models.SegmentBudget] {
		return models.SegmentBudget
	}
	if r < SegmentRatios[models.SegmentBudget]+SegmentRatios[models.SegmentPremium] {
		return models.SegmentPremium
	}
	return models.SegmentRegular
}

func (cf *CustomerFactory) CreateCustomer(config *models.Config) *models.Customer {
	latRange := config.UrbanRadius / 111.0
	lonRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	latOffset := (cf.rng.Float64()*2 - 1) * latRange
	lonOffset := (cf.rng.Float64()*2 - 1) * lonRange

	segment := cf.assignSegment()

	var willingnessToPay float64
	var weights models.DecisionWeights
	switch segment {
	case models.SegmentBudget:
		willingnessToPay = cf.fake.Float64(0, 120, 180)
		weights = models.DecisionWeights{Rating: 0.8, Price: 1.4, Novelty: 0.4}
	case models.SegmentPremium:
		willingnessToPay = cf.fake.Float64(0, 220, 320)
		weights = models.DecisionWeights{Rating: 1.5, Price: 0.6, Novelty: 0.6}
	default:
		willingnessToPay = config.DefaultWillingnessToPay
		weights = models.DecisionWeights{Rating: 1.0, Price: 1.0, Novelty: 0.5}
	}

	categoryPreference := make(map[string]float64, len(categories))
	for _, category := range categories {
		categoryPreference[category] = 0.8 + cf.rng.Float64()*0.4
	}

	id := cf.nextID
	cf.nextID++

	customer := &models.Customer{
		ID:                 id,
		Name:               cf.fake.Person().Name(),
		Location:           models.Location{Lat: config.CityLat + latOffset, Lon: config.CityLon + lonOffset},
		Segment:            segment,
		WillingnessToPay:   willingnessToPay,
		Weights:            weights,
		Loyalty:            0.5 + cf.rng.Float64()*0.5,
		LeavingThreshold:   config.DefaultLeavingThreshold,
		StoreValuations:    make(map[int]float64),
		CategoryPreference: categoryPreference,
	}
	customer.History = models.NewHistory()
	return customer
}

// GenerateCustomers synthesises the demand side of the marketplace.
func GenerateCustomers(config *models.Config, seed int64) []*models.Customer {
	factory := NewCustomerFactory(seed)
	customers := make([]*models.Customer, config.InitialCustomers)
	for i := range customers {
		customers[i] = factory.CreateCustomer(config)
	}
	return customers
}
