package models

// Reservation lives for exactly one simulated day: created pending while
// customers arrive, resolved to confirmed or cancelled at settlement.
type Reservation struct {
	ID           string
	Customer     *Customer
	RestaurantID int
	// Timestamp orders reservations within a day for settlement tie-breaks
	// only; it carries no other meaning.
	Timestamp    float64
	Status       string
	BagsReceived int
}
