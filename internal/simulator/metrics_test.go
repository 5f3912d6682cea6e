package simulator

import (
	"math"
	"testing"
)

func TestGiniCoefficientUniform(t *testing.T) {
	if got := GiniCoefficient([]int{5, 5, 5, 5}); math.Abs(got) > 1e-9 {
		t.Fatalf("Gini = %v, want 0 for uniform exposure", got)
	}
}

func TestGiniCoefficientConcentrated(t *testing.T) {
	if got := GiniCoefficient([]int{10, 0, 0, 0}); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("Gini = %v, want 0.75 for fully concentrated exposure", got)
	}
}

func TestGiniCoefficientDegenerate(t *testing.T) {
	if got := GiniCoefficient(nil); got != 0 {
		t.Fatalf("Gini = %v, want 0 for empty input", got)
	}
	if got := GiniCoefficient([]int{0, 0, 0}); got != 0 {
		t.Fatalf("Gini = %v, want 0 for all-zero input", got)
	}
}

func TestGiniCoefficientOrderInsensitive(t *testing.T) {
	a := GiniCoefficient([]int{1, 2, 3, 4})
	b := GiniCoefficient([]int{4, 3, 2, 1})
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("Gini depends on input order: %v vs %v", a, b)
	}
}

func TestRevenueEfficiency(t *testing.T) {
	if got := revenueEfficiency(0, 0); got != 0 {
		t.Fatalf("revenueEfficiency(0, 0) = %v, want 0", got)
	}
	if got := revenueEfficiency(300, 100); math.Abs(got-75) > 1e-9 {
		t.Fatalf("revenueEfficiency = %v, want 75", got)
	}
}

func TestConversionRate(t *testing.T) {
	if got := conversionRate(0, 0); got != 0 {
		t.Fatalf("conversionRate(0, 0) = %v, want 0", got)
	}
	if got := conversionRate(700, 175); math.Abs(got-75) > 1e-9 {
		t.Fatalf("conversionRate = %v, want 75", got)
	}
}
