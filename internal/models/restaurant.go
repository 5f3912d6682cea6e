package models

import (
	"math"
	"math/rand"
)

type Restaurant struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Branch        string   `json:"branch"`
	EstimatedBags int      `json:"estimated_bags"`
	Rating        float64  `json:"rating"`
	PricePerBag   float64  `json:"price_per_bag"`
	Location      Location `json:"location"`
	Category      string   `json:"category"`

	// Daily state, reset by Replenish at the start of each simulated day.
	ActualBags    int `json:"actual_bags"`
	ReservedCount int `json:"reserved_count"`
}

// Available reports whether the restaurant can take another reservation.
// Oversubscription relative to realized inventory is resolved at settlement,
// not here.
func (r *Restaurant) Available() bool {
	return r.ActualBags > r.ReservedCount
}

// UnsoldBags is the planning-figure view of remaining stock used by the
// ranking strategies.
func (r *Restaurant) UnsoldBags() int {
	if unsold := r.EstimatedBags - r.ReservedCount; unsold > 0 {
		return unsold
	}
	return 0
}

// Replenish redraws the day's realized inventory as
// floor(estimated * U(minVariance, maxVariance)) and clears reservations.
func (r *Restaurant) Replenish(rng *rand.Rand, minVariance, maxVariance float64) {
	variance := minVariance + rng.Float64()*(maxVariance-minVariance)
	r.ActualBags = int(math.Floor(float64(r.EstimatedBags) * variance))
	r.ReservedCount = 0
}

// AdjustRating drifts the rating after settlement: confirmations raise it,
// cancellations lower it. The magnitudes are config tunables; the result is
// clamped to [1, 5].
func (r *Restaurant) AdjustRating(confirmed, cancelled int, driftUp, driftDown float64) {
	r.Rating += float64(confirmed)*driftUp - float64(cancelled)*driftDown
	r.Rating = math.Max(1.0, math.Min(5.0, r.Rating))
}

func (r *Restaurant) Clone() *Restaurant {
	clone := *r
	return &clone
}
