package simulator

import (
	"math"

	"github.com/adhamgad/surplusim/internal/models"
)

// MaxTravelDistance is the categorical cutoff, in coordinate degrees, beyond
// which a restaurant is invisible to a customer. The flat Euclidean
// approximation is intentional at city scale.
const MaxTravelDistance = 0.05

// OutOfRangeScore marks a restaurant the customer cannot reach. It sits far
// below the decision model's sanity floor so it can never be selected.
const OutOfRangeScore = -100.0

func Distance(a, b models.Location) float64 {
	dlat := b.Lat - a.Lat
	dlon := b.Lon - a.Lon
	return math.Sqrt(dlat*dlat + dlon*dlon)
}

// BaseScore is the customer/restaurant compatibility score shared by the
// ranking strategies and the decision model: weighted rating, price headroom
// relative to willingness to pay, category novelty, and proximity.
func BaseScore(customer *models.Customer, restaurant *models.Restaurant) float64 {
	distance := Distance(customer.Location, restaurant.Location)
	if distance > MaxTravelDistance {
		return OutOfRangeScore
	}

	ratingScore := customer.Weights.Rating * restaurant.Rating
	priceScore := customer.Weights.Price * (customer.WillingnessToPay - restaurant.PricePerBag) / customer.WillingnessToPay

	// novelty decays with every bag already reserved in this category
	categoryCount := customer.History.CategoriesReserved[restaurant.Category]
	noveltyScore := customer.Weights.Novelty
	if categoryCount > 0 {
		noveltyScore = customer.Weights.Novelty / (1.0 + float64(categoryCount))
	}

	distanceScore := (1.0 - distance/MaxTravelDistance) * 1.5

	return ratingScore + priceScore + noveltyScore + distanceScore
}
