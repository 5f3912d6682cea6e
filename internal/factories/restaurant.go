package factories

import (
	"math"
	"math/rand"

	"github.com/adhamgad/surplusim/internal/models"
	"github.com/jaswdr/faker"
)

var categories = []string{"bakery", "cafe", "restaurant", "grocery", "pastry"}

type RestaurantFactory struct {
	fake   faker.Faker
	rng    *rand.Rand
	nextID int
}

func NewRestaurantFactory(seed int64) *RestaurantFactory {
	return &RestaurantFactory{
		fake:   faker.NewWithSeed(rand.NewSource(seed)),
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config) *models.Restaurant {
	// place the listing inside the urban radius around the city centre
	latRange := config.UrbanRadius / 111.0
	lonRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	latOffset := (rf.rng.Float64()*2 - 1) * latRange
	lonOffset := (rf.rng.Float64()*2 - 1) * lonRange

	id := rf.nextID
	// ids are sparse on purpose; nothing downstream may assume contiguity
	rf.nextID += rf.rng.Intn(3) + 1

	return &models.Restaurant{
		ID:            id,
		Name:          rf.fake.Company().Name(),
		Branch:        rf.fake.Address().City(),
		EstimatedBags: rf.fake.IntBetween(config.MinEstimatedBags, config.MaxEstimatedBags),
		Rating:        rf.fake.Float64(1, int(config.MinRating), int(config.MaxRating)),
		PricePerBag:   rf.fake.Float64(0, int(config.MinPricePerBag), int(config.MaxPricePerBag)),
		Location: models.Location{
			Lat: config.CityLat + latOffset,
			Lon: config.CityLon + lonOffset,
		},
		Category: categories[rf.rng.Intn(len(categories))],
	}
}

// GenerateRestaurants synthesises the restaurant side of the marketplace.
func GenerateRestaurants(config *models.Config, seed int64) []*models.Restaurant {
	factory := NewRestaurantFactory(seed)
	restaurants := make([]*models.Restaurant, config.InitialRestaurants)
	for i := range restaurants {
		restaurants[i] = factory.CreateRestaurant(config)
	}
	return restaurants
}
