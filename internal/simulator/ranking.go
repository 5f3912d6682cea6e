package simulator

import (
	"math"
	"sort"

	"github.com/adhamgad/surplusim/internal/models"
)

// RankingStrategy orders the currently-available restaurants into a shortlist
// of at most n distinct ids for one arriving customer. Availability is
// recomputed by the orchestrator before every call; a restaurant may fill up
// mid-day.
type RankingStrategy interface {
	Name() string
	Rank(customer *models.Customer, available []*models.Restaurant, n int) []int
}

// newStrategy dispatches the closed algorithm set. Strategies that need the
// run's impression counter receive it here; the counter is owned by the run,
// never ambient.
func newStrategy(name string, impressions map[int]int) RankingStrategy {
	switch name {
	case models.AlgorithmSama:
		return &SamaStrategy{}
	case models.AlgorithmAndrew:
		return &AndrewStrategy{Impressions: impressions}
	case models.AlgorithmAmer:
		return &AmerStrategy{}
	case models.AlgorithmZiad:
		return &ZiadStrategy{}
	case models.AlgorithmHarmony:
		return &HarmonyStrategy{Impressions: impressions}
	default:
		return &BaselineStrategy{}
	}
}

type scoredRestaurant struct {
	id    int
	score float64
}

func sortByScoreDesc(scores []scoredRestaurant) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
}

// BaselineStrategy shows everyone the same top-rated shortlist. No
// personalization; two customers facing the same snapshot see the same list.
type BaselineStrategy struct{}

func (s *BaselineStrategy) Name() string { return models.AlgorithmBaseline }

func (s *BaselineStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	sorted := make([]*models.Restaurant, len(available))
	copy(sorted, available)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	result := make([]int, 0, n)
	for _, restaurant := range sorted[:n] {
		result = append(result, restaurant.ID)
	}
	return result
}

// AndrewStrategy damps the base score by how often a restaurant has already
// been shown, pulling over-exposed listings down the page.
type AndrewStrategy struct {
	Impressions map[int]int
}

func (s *AndrewStrategy) Name() string { return models.AlgorithmAndrew }

func (s *AndrewStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	if len(available) == 0 {
		return nil
	}

	scores := make([]scoredRestaurant, 0, len(available))
	for _, restaurant := range available {
		damping := math.Log(float64(s.Impressions[restaurant.ID]+1)) + 1
		scores = append(scores, scoredRestaurant{
			id:    restaurant.ID,
			score: BaseScore(customer, restaurant) / damping,
		})
	}
	sortByScoreDesc(scores)

	if n > len(scores) {
		n = len(scores)
	}
	result := make([]int, 0, n)
	for _, sc := range scores[:n] {
		result = append(result, sc.id)
	}
	return result
}

// AmerStrategy pins the single nearest in-range restaurant to the top slot,
// then fills the rest by base score with price and distance penalties.
type AmerStrategy struct{}

func (s *AmerStrategy) Name() string { return models.AlgorithmAmer }

func (s *AmerStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	var inRange []*models.Restaurant
	for _, restaurant := range available {
		if Distance(customer.Location, restaurant.Location) <= MaxTravelDistance {
			inRange = append(inRange, restaurant)
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	result := make([]int, 0, n)
	selected := make(map[int]bool)

	closestID := -1
	minDistance := math.Inf(1)
	for _, restaurant := range inRange {
		if d := Distance(customer.Location, restaurant.Location); d < minDistance {
			minDistance = d
			closestID = restaurant.ID
		}
	}
	if closestID != -1 {
		result = append(result, closestID)
		selected[closestID] = true
	}

	scores := make([]scoredRestaurant, 0, len(inRange))
	for _, restaurant := range inRange {
		if selected[restaurant.ID] {
			continue
		}
		score := BaseScore(customer, restaurant) -
			restaurant.PricePerBag*0.01 -
			Distance(customer.Location, restaurant.Location)*20.0
		scores = append(scores, scoredRestaurant{id: restaurant.ID, score: score})
	}
	sortByScoreDesc(scores)

	for _, sc := range scores {
		if len(result) >= n {
			break
		}
		result = append(result, sc.id)
	}
	return result
}

// ZiadStrategy is a flat linear scorer: cheap, well-rated, and sitting on
// unsold stock wins, independent of the customer's own weights.
type ZiadStrategy struct{}

func (s *ZiadStrategy) Name() string { return models.AlgorithmZiad }

func (s *ZiadStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	const (
		priceWeight  = -0.01
		ratingWeight = 1.5
		unsoldWeight = 0.1
	)

	var inRange []*models.Restaurant
	for _, restaurant := range available {
		if Distance(customer.Location, restaurant.Location) <= MaxTravelDistance {
			inRange = append(inRange, restaurant)
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	scores := make([]scoredRestaurant, 0, len(inRange))
	for _, restaurant := range inRange {
		score := priceWeight*restaurant.PricePerBag +
			ratingWeight*restaurant.Rating +
			unsoldWeight*float64(restaurant.UnsoldBags())
		scores = append(scores, scoredRestaurant{id: restaurant.ID, score: score})
	}
	sortByScoreDesc(scores)

	limit := n
	if limit > 5 {
		limit = 5
	}
	if limit > len(scores) {
		limit = len(scores)
	}
	result := make([]int, 0, limit)
	for _, sc := range scores[:limit] {
		result = append(result, sc.id)
	}
	return result
}
