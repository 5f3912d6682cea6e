package simulator

import (
	"math"
	"math/rand"

	"github.com/adhamgad/surplusim/internal/models"
)

// sanityFloor catches out-of-range sentinels that survive threshold
// adjustment; anything at or below it can never be reserved.
const sanityFloor = -50.0

// ChooseRestaurant decides whether the customer reserves at one of the
// displayed restaurants or leaves. The second return is false when the
// customer walks away. The softmax draw is the only randomness here and
// comes from the injected generator.
func ChooseRestaurant(customer *models.Customer, displayed []int, byID map[int]*models.Restaurant, temperature float64, rng *rand.Rand) (int, bool) {
	if len(displayed) == 0 {
		return 0, false
	}

	scores := make([]scoredRestaurant, 0, len(displayed))
	for _, id := range displayed {
		restaurant, ok := byID[id]
		if !ok {
			scores = append(scores, scoredRestaurant{id: id, score: OutOfRangeScore})
			continue
		}
		scores = append(scores, scoredRestaurant{id: id, score: BaseScore(customer, restaurant)})
	}

	// low loyalty raises the bar for staying
	threshold := customer.LeavingThreshold + (1.0-customer.Loyalty)*2.0

	maxScore := math.Inf(-1)
	for _, sc := range scores {
		if sc.score > maxScore {
			maxScore = sc.score
		}
	}
	if maxScore < threshold {
		return 0, false
	}

	candidates := make([]scoredRestaurant, 0, len(scores))
	for _, sc := range scores {
		adjusted := sc.score

		if stats, ok := customer.History.Lookup(sc.id); ok && stats.Reservations > 0 {
			adjusted += stats.SuccessRate() * 1.5
			adjusted -= stats.CancelRate() * 2.0
		}

		if restaurant, ok := byID[sc.id]; ok {
			inventorySafety := math.Min(1, float64(restaurant.EstimatedBags)/12)
			adjusted += inventorySafety * 0.3
		}

		if adjusted >= threshold && adjusted > sanityFloor {
			candidates = append(candidates, scoredRestaurant{id: sc.id, score: adjusted})
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	return softmaxPick(candidates, temperature, rng), true
}

// softmaxPick draws one candidate with probability proportional to
// exp((score - min + 1) / temperature).
func softmaxPick(candidates []scoredRestaurant, temperature float64, rng *rand.Rand) int {
	minScore := candidates[0].score
	for _, c := range candidates {
		if c.score < minScore {
			minScore = c.score
		}
	}

	weights := make([]float64, len(candidates))
	sum := 0.0
	for i, c := range candidates {
		weights[i] = math.Exp((c.score - minScore + 1.0) / temperature)
		sum += weights[i]
	}

	draw := rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w / sum
		if draw <= cumulative {
			return candidates[i].id
		}
	}

	// floating-point edge: the cumulative sum fell a hair short of 1
	return candidates[len(candidates)-1].id
}
