package simulator

import (
	"math"

	"github.com/adhamgad/surplusim/internal/models"
)

// SamaStrategy builds a segment-aware shortlist in phases: a personalized
// block sized by segment and loyalty, one discovery slot for a never-tried
// listing that clears a segment quality gate, one price-competitiveness slot,
// then fill from the personalized order.
type SamaStrategy struct{}

func (s *SamaStrategy) Name() string { return models.AlgorithmSama }

func (s *SamaStrategy) Rank(customer *models.Customer, available []*models.Restaurant, n int) []int {
	var inRange []*models.Restaurant
	for _, restaurant := range available {
		if Distance(customer.Location, restaurant.Location) <= MaxTravelDistance {
			inRange = append(inRange, restaurant)
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	isBudget := customer.Segment == models.SegmentBudget
	isPremium := customer.Segment == models.SegmentPremium

	segmentRatingWeight := 1.0
	segmentInventoryWeight := 0.6
	switch {
	case isPremium:
		segmentRatingWeight = 1.5
		segmentInventoryWeight = 0.5
	case isBudget:
		segmentRatingWeight = 0.8
		segmentInventoryWeight = 0.8
	}

	scores := make([]scoredRestaurant, 0, len(inRange))
	for _, restaurant := range inRange {
		baseScore := BaseScore(customer, restaurant)

		unsold := float64(restaurant.UnsoldBags())
		inventoryUrgency := math.Min(1, unsold/15)
		inventoryBonus := inventoryUrgency * 1.2 * segmentInventoryWeight

		ratingBonus := math.Max(0, (restaurant.Rating-3.5)*0.3*segmentRatingWeight)

		priceBonus := 0.0
		if isBudget && restaurant.PricePerBag < customer.WillingnessToPay {
			priceBonus = (customer.WillingnessToPay - restaurant.PricePerBag) / customer.WillingnessToPay * 0.4
		} else if isPremium && restaurant.PricePerBag > 100 {
			priceBonus = 0.1
		}

		historyBonus := 0.0
		if stats, ok := customer.History.Lookup(restaurant.ID); ok && stats.Reservations > 0 {
			historyBonus = stats.SuccessRate()*0.5 - stats.CancelRate()*1.0
		}

		categoryBonus := customer.CategoryPreference[restaurant.Category] * 0.2

		wasteBonus := 0.0
		if unsold > 5 {
			wasteBonus = math.Min(2, unsold/5) * 0.5
		}

		revenueBonus := restaurant.PricePerBag * inventoryUrgency / 200 * 0.3

		scores = append(scores, scoredRestaurant{
			id: restaurant.ID,
			score: baseScore + inventoryBonus + ratingBonus + priceBonus +
				historyBonus + categoryBonus + wasteBonus + revenueBonus,
		})
	}
	sortByScoreDesc(scores)

	// personalized block: segment base + loyalty, pulled back when the whole
	// market is sitting on stock
	basePersonalization := 0.6
	if isBudget {
		basePersonalization = 0.7
	} else if isPremium {
		basePersonalization = 0.5
	}
	ratio := basePersonalization + customer.Loyalty*0.15
	if marketMeanUnsold(available) > 10 {
		ratio -= 0.1
	}
	ratio = math.Min(0.85, math.Max(0.4, ratio))

	personalizedCount := int(math.Floor(float64(n) * ratio))
	if personalizedCount > len(scores) {
		personalizedCount = len(scores)
	}
	if personalizedCount < 3 {
		personalizedCount = 3
	}

	result := make([]int, 0, n)
	selected := make(map[int]bool)
	for i := 0; i < personalizedCount && i < len(scores) && len(result) < n; i++ {
		result = append(result, scores[i].id)
		selected[scores[i].id] = true
	}

	if len(result) < n {
		if id, ok := s.discoveryPick(customer, inRange, selected); ok {
			result = append(result, id)
			selected[id] = true
		}
	}

	if len(result) < n {
		if id, ok := s.competitivePick(customer, inRange, selected); ok {
			result = append(result, id)
			selected[id] = true
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

	return result
}

// marketMeanUnsold averages unsold stock over the restaurants that still
// have any.
func marketMeanUnsold(restaurants []*models.Restaurant) float64 {
	totalUnsold := 0
	withStock := 0
	for _, restaurant := range restaurants {
		if unsold := restaurant.UnsoldBags(); unsold > 0 {
			totalUnsold += unsold
			withStock++
		}
	}
	if withStock == 0 {
		return 0
	}
	return float64(totalUnsold) / float64(withStock)
}

// discoveryPick proposes one never-tried restaurant that clears the
// segment's quality gate, preferring a high rating-to-price ratio.
func (s *SamaStrategy) discoveryPick(customer *models.Customer, candidates []*models.Restaurant, selected map[int]bool) (int, bool) {
	bestID := -1
	bestScore := 0.0

	for _, restaurant := range candidates {
		if selected[restaurant.ID] || customer.History.HasTried(restaurant.ID) {
			continue
		}

		unsoldBonus := math.Min(1, float64(restaurant.UnsoldBags())/10)
		valueRatio := restaurant.Rating / restaurant.PricePerBag
		inventorySafety := math.Min(1, float64(restaurant.EstimatedBags)/15)

		qualityScore := 0.0
		qualifies := false
		switch customer.Segment {
		case models.SegmentBudget:
			if restaurant.PricePerBag <= customer.WillingnessToPay*1.1 &&
				restaurant.EstimatedBags >= 8 && restaurant.Rating >= 3.8 {
				affordability := (customer.WillingnessToPay - restaurant.PricePerBag) / customer.WillingnessToPay
				qualityScore = valueRatio*15.0 + affordability*2.0 +
					inventorySafety*0.5 + restaurant.Rating*0.3 + unsoldBonus*0.8
				qualifies = true
			}
		case models.SegmentPremium:
			if restaurant.Rating >= 4.0 && restaurant.EstimatedBags >= 8 {
				qualityScore = restaurant.Rating*1.5 + valueRatio*10.0 +
					inventorySafety*0.5 + unsoldBonus*0.6
				qualifies = true
			}
		default:
			if restaurant.Rating >= 3.9 && restaurant.EstimatedBags >= 8 {
				qualityScore = restaurant.Rating + valueRatio*10.0 +
					inventorySafety*0.5 + unsoldBonus*0.7
				qualifies = true
			}
		}

		if qualifies && (bestID == -1 || qualityScore > bestScore) {
			bestID = restaurant.ID
			bestScore = qualityScore
		}
	}

	return bestID, bestID != -1
}

// competitivePick proposes one price-competitive restaurant with safe
// inventory, gated per segment on the rating-to-price ratio.
func (s *SamaStrategy) competitivePick(customer *models.Customer, candidates []*models.Restaurant, selected map[int]bool) (int, bool) {
	bestID := -1
	bestScore := 0.0

	for _, restaurant := range candidates {
		if selected[restaurant.ID] || restaurant.EstimatedBags < 8 {
			continue
		}

		valueRatio := restaurant.Rating / restaurant.PricePerBag
		inventorySafety := math.Min(1, float64(restaurant.EstimatedBags)/15)

		competitiveScore := 0.0
		qualifies := false
		switch customer.Segment {
		case models.SegmentBudget:
			if restaurant.PricePerBag <= customer.WillingnessToPay*1.1 && valueRatio > 0.025 {
				affordability := (customer.WillingnessToPay - restaurant.PricePerBag) / customer.WillingnessToPay
				competitiveScore = valueRatio*120.0 + affordability*3.0 +
					inventorySafety*0.5 + restaurant.Rating*0.3
				qualifies = true
			}
		case models.SegmentPremium:
			if valueRatio > 0.03 && restaurant.Rating >= 3.8 {
				competitiveScore = valueRatio*100.0 + inventorySafety*0.5 + restaurant.Rating*0.8
				qualifies = true
			}
		default:
			if valueRatio > 0.03 {
				competitiveScore = valueRatio*100.0 + inventorySafety*0.5 + restaurant.Rating*0.5
				qualifies = true
			}
		}

		if qualifies && (bestID == -1 || competitiveScore > bestScore) {
			bestID = restaurant.ID
			bestScore = competitiveScore
		}
	}

	return bestID, bestID != -1
}
