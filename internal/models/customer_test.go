package models

import (
	"math"
	"testing"
)

func TestInteractionStatsRates(t *testing.T) {
	stats := &InteractionStats{}
	if stats.SuccessRate() != 0 || stats.CancelRate() != 0 {
		t.Fatalf("expected zero rates with no reservations")
	}

	stats.Reservations = 4
	stats.Successes = 3
	stats.Cancellations = 1

	if math.Abs(stats.SuccessRate()-0.75) > 1e-9 {
		t.Fatalf("SuccessRate = %v, want 0.75", stats.SuccessRate())
	}
	if math.Abs(stats.CancelRate()-0.25) > 1e-9 {
		t.Fatalf("CancelRate = %v, want 0.25", stats.CancelRate())
	}
}

func TestHistoryInteraction(t *testing.T) {
	h := NewHistory()

	if _, ok := h.Lookup(7); ok {
		t.Fatalf("Lookup on empty history should miss")
	}
	if h.HasTried(7) {
		t.Fatalf("HasTried on empty history should be false")
	}

	stats := h.Interaction(7)
	if stats == nil {
		t.Fatalf("Interaction returned nil")
	}
	if h.HasTried(7) {
		t.Fatalf("HasTried should be false until a reservation is recorded")
	}

	stats.Reservations++
	if !h.HasTried(7) {
		t.Fatalf("HasTried should be true after a reservation")
	}

	again, ok := h.Lookup(7)
	if !ok || again != stats {
		t.Fatalf("Lookup should return the same stats object")
	}
}

func TestCustomerClone(t *testing.T) {
	c := &Customer{
		ID:                 1,
		Segment:            SegmentBudget,
		StoreValuations:    map[int]float64{3: 1.5},
		CategoryPreference: map[string]float64{"bakery": 1.1},
	}
	c.History = NewHistory()
	c.History.Visits = 5
	c.History.Interaction(3).Reservations = 2

	clone := c.Clone()

	if clone.History.Visits != 0 || len(clone.History.StoreInteractions) != 0 {
		t.Fatalf("clone should start with an empty history, got %+v", clone.History)
	}

	clone.StoreValuations[3] = 9.9
	clone.CategoryPreference["bakery"] = 0.1
	if c.StoreValuations[3] != 1.5 || c.CategoryPreference["bakery"] != 1.1 {
		t.Fatalf("mutating clone maps changed the original")
	}
}
