package simulator

import (
	"sort"

	"github.com/adhamgad/surplusim/internal/models"
)

// ReservationLedger holds one day's pending reservations per restaurant.
// Order of arrival carries no weight; settlement sorts by timestamp.
type ReservationLedger struct {
	pending map[int][]*models.Reservation
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{pending: make(map[int][]*models.Reservation)}
}

func (l *ReservationLedger) Add(reservation *models.Reservation) {
	l.pending[reservation.RestaurantID] = append(l.pending[reservation.RestaurantID], reservation)
}

func (l *ReservationLedger) Pending(restaurantID int) []*models.Reservation {
	return l.pending[restaurantID]
}

// DaySettlement is the outcome of settling one restaurant's day.
type DaySettlement struct {
	Confirmed     int
	ConfirmedBags int
	Cancelled     int
	Waste         int
	Revenue       float64
	RevenueLost   float64
}

// SettleRestaurantDay allocates the restaurant's realized inventory among
// its pending reservations, earliest first:
//   - no reservations: everything is waste
//   - enough bags: everyone confirms with floor(bags/reservations) capped at
//     maxBags, leftovers go one each to the earliest reservations, the rest
//     is waste
//   - oversubscribed: the earliest get one bag each, the rest cancel
//
// Customer histories are updated in place and the restaurant's rating drifts
// with the confirmation/cancellation balance.
func SettleRestaurantDay(restaurant *models.Restaurant, pending []*models.Reservation, maxBags int, driftUp, driftDown float64) DaySettlement {
	var settlement DaySettlement

	if len(pending) == 0 {
		settlement.Waste = restaurant.ActualBags
		return settlement
	}

	sorted := make([]*models.Reservation, len(pending))
	copy(sorted, pending)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	actualBags := restaurant.ActualBags
	count := len(sorted)

	if actualBags >= count {
		perCustomer := actualBags / count
		if perCustomer > maxBags {
			perCustomer = maxBags
		}
		extra := actualBags - perCustomer*count

		distributed := 0
		for i, reservation := range sorted {
			bags := perCustomer
			if i < extra && bags < maxBags {
				bags++
			}
			confirmReservation(reservation, restaurant, bags, &settlement)
			distributed += bags
		}
		settlement.Waste = actualBags - distributed
	} else {
		for i, reservation := range sorted {
			if i < actualBags {
				confirmReservation(reservation, restaurant, 1, &settlement)
			} else {
				cancelReservation(reservation, restaurant, &settlement)
			}
		}
	}

	restaurant.AdjustRating(settlement.Confirmed, settlement.Cancelled, driftUp, driftDown)
	return settlement
}

func confirmReservation(reservation *models.Reservation, restaurant *models.Restaurant, bags int, settlement *DaySettlement) {
	reservation.Status = models.ReservationStatusConfirmed
	reservation.BagsReceived = bags

	settlement.Confirmed++
	settlement.ConfirmedBags += bags
	settlement.Revenue += float64(bags) * restaurant.PricePerBag

	history := &reservation.Customer.History
	history.Successes++
	if stats, ok := history.Lookup(restaurant.ID); ok {
		stats.Successes++
	}
}

func cancelReservation(reservation *models.Reservation, restaurant *models.Restaurant, settlement *DaySettlement) {
	reservation.Status = models.ReservationStatusCancelled

	settlement.Cancelled++
	settlement.RevenueLost += restaurant.PricePerBag

	history := &reservation.Customer.History
	history.Cancellations++
	if stats, ok := history.Lookup(restaurant.ID); ok {
		stats.Cancellations++
	}
}
