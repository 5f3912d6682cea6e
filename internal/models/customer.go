package models

type DecisionWeights struct {
	Rating  float64 `json:"rating_w"`
	Price   float64 `json:"price_w"`
	Novelty float64 `json:"novelty_w"`
}

// InteractionStats tracks one customer's outcomes with one restaurant.
type InteractionStats struct {
	Reservations  int `json:"reservations"`
	Successes     int `json:"successes"`
	Cancellations int `json:"cancellations"`
}

func (s *InteractionStats) SuccessRate() float64 {
	if s.Reservations == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Reservations)
}

func (s *InteractionStats) CancelRate() float64 {
	if s.Reservations == 0 {
		return 0
	}
	return float64(s.Cancellations) / float64(s.Reservations)
}

// History accumulates within a single algorithm run and is reset between
// runs so the comparison stays fair.
type History struct {
	Visits             int
	Reservations       int
	Successes          int
	Cancellations      int
	Churned            bool
	CategoriesReserved map[string]int
	StoreInteractions  map[int]*InteractionStats
}

func NewHistory() History {
	return History{
		CategoriesReserved: make(map[string]int),
		StoreInteractions:  make(map[int]*InteractionStats),
	}
}

// Interaction returns the stats for a restaurant, creating them on first use.
// Restaurant ids need not be contiguous, hence the map.
func (h *History) Interaction(restaurantID int) *InteractionStats {
	stats, ok := h.StoreInteractions[restaurantID]
	if !ok {
		stats = &InteractionStats{}
		h.StoreInteractions[restaurantID] = stats
	}
	return stats
}

// Lookup is the read-only sibling of Interaction.
func (h *History) Lookup(restaurantID int) (*InteractionStats, bool) {
	stats, ok := h.StoreInteractions[restaurantID]
	return stats, ok
}

func (h *History) HasTried(restaurantID int) bool {
	stats, ok := h.StoreInteractions[restaurantID]
	return ok && stats.Reservations > 0
}

type Customer struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Location         Location        `json:"location"`
	Segment          string          `json:"segment"`
	WillingnessToPay float64         `json:"willingness_to_pay"`
	Weights          DecisionWeights `json:"weights"`
	Loyalty          float64         `json:"loyalty"`
	LeavingThreshold float64         `json:"leaving_threshold"`

	StoreValuations    map[int]float64    `json:"store_valuations,omitempty"`
	CategoryPreference map[string]float64 `json:"category_preference"`

	History History `json:"-"`
}

// Clone deep-copies the customer with an empty history, the per-run starting
// state for a fair comparison.
func (c *Customer) Clone() *Customer {
	clone := *c
	clone.StoreValuations = make(map[int]float64, len(c.StoreValuations))
	for id, v := range c.StoreValuations {
		clone.StoreValuations[id] = v
	}
	clone.CategoryPreference = make(map[string]float64, len(c.CategoryPreference))
	for cat, w := range c.CategoryPreference {
		clone.CategoryPreference[cat] = w
	}
	clone.History = NewHistory()
	return &clone
}
