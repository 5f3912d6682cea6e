package models

const (
	SegmentBudget  = "budget"
	SegmentPremium = "premium"
	SegmentRegular = "regular"

	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"

	AlgorithmBaseline = "BASELINE"
	AlgorithmSama     = "SAMA"
	AlgorithmAndrew   = "ANDREW"
	AlgorithmAmer     = "AMER"
	AlgorithmZiad     = "ZIAD"
	AlgorithmHarmony  = "HARMONY"
)

// AlgorithmNames is the closed comparison set, in run order.
var AlgorithmNames = []string{
	AlgorithmBaseline,
	AlgorithmSama,
	AlgorithmAndrew,
	AlgorithmAmer,
	AlgorithmZiad,
	AlgorithmHarmony,
}
