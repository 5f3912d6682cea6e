package simulator

import (
	"math"

	"github.com/adhamgad/surplusim/internal/models"
)

// HarmonyStrategy balances customer satisfaction, waste reduction, exposure
// fairness, and revenue in one score, then reserves tail slots for a
// high-waste listing and a discovery pick. Uniquely among the strategies it
// increments the run's impression counter itself, once per id it returns;
// the orchestrator leaves the counter alone while HARMONY is active.
type HarmonyStrategy struct {
	Impressions map[int]int
}

func (s *HarmonyStrategy) Name() string { return models.AlgorithmHarmony }

func (s *HarmonyStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	var inRange []*models.Restaurant
	byID := make(map[int]*models.Restaurant, len(available))
	for _, restaurant := range available {
		if Distance(customer.Location, restaurant.Location) <= MaxTravelDistance {
			inRange = append(inRange, restaurant)
			byID[restaurant.ID] = restaurant
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	avgImpressions := 1.0
	if len(s.Impressions) > 0 {
		total := 0
		for _, count := range s.Impressions {
			total += count
		}
		avgImpressions = float64(total) / float64(len(s.Impressions))
	}

	scores := make([]scoredRestaurant, 0, len(inRange))
	for _, restaurant := range inRange {
		baseScore := BaseScore(customer, restaurant)

		satisfactionBonus := 0.0
		switch {
		case customer.Segment == models.SegmentPremium && restaurant.Rating >= 4.0:
			satisfactionBonus = 0.5
		case customer.Segment == models.SegmentBudget && restaurant.PricePerBag <= customer.WillingnessToPay:
			satisfactionBonus = 0.4
		case customer.Segment == models.SegmentRegular && restaurant.Rating >= 3.8:
			satisfactionBonus = 0.3
		}
		if stats, ok := customer.History.Lookup(restaurant.ID); ok && stats.Successes > 0 {
			satisfactionBonus += stats.SuccessRate() * 0.3
		}

		unsold := float64(restaurant.UnsoldBags())
		wasteBonus := unsold * 0.08
		if unsold > 12 {
			wasteBonus += 0.6
		}

		fairnessBoost := 0.0
		impressions := float64(s.Impressions[restaurant.ID])
		if impressions < avgImpressions*0.5 {
			fairnessBoost = 0.8
		} else if impressions > avgImpressions*1.5 {
			fairnessBoost = -0.4
		}

		inventorySafety := math.Min(1, float64(restaurant.EstimatedBags)/10)
		revenueBonus := restaurant.PricePerBag / 100 * inventorySafety * 0.3

		qualityPenalty := 0.0
		if restaurant.EstimatedBags < 5 {
			qualityPenalty = -1.5
		}

		scores = append(scores, scoredRestaurant{
			id:    restaurant.ID,
			score: baseScore + satisfactionBonus + wasteBonus + fairnessBoost + revenueBonus + qualityPenalty,
		})
	}
	sortByScoreDesc(scores)

	result := make([]int, 0, n)
	selected := make(map[int]bool)

	directSlots := int(math.Floor(float64(n) * 0.7))
	for i := 0; i < directSlots && i < len(scores); i++ {
		result = append(result, scores[i].id)
		selected[scores[i].id] = true
	}

	// one slot for a listing about to waste serious stock
	if len(result) < n {
		for _, sc := range scores {
			if selected[sc.id] {
				continue
			}
			if byID[sc.id].UnsoldBags() >= 10 {
				result = append(result, sc.id)
				selected[sc.id] = true
				break
			}
		}
	}

	// one discovery slot, quality-gated
	if len(result) < n {
		for _, sc := range scores {
			if selected[sc.id] || customer.History.HasTried(sc.id) {
				continue
			}
			restaurant := byID[sc.id]
			if restaurant.Rating >= 3.8 && restaurant.EstimatedBags >= 6 {
				result = append(result, sc.id)
				selected[sc.id] = true
				break
			}
		}
	}

	for _, sc := range scores {
		if len(result) >= n {
			break
		}
		if !selected[sc.id] {
			result = append(result, sc.id)
			selected[sc.id] = true
		}
	}

	for _, id := range result {
		s.Impressions[id]++
	}

	return result
}
