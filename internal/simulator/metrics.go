package simulator

import "sort"

// GiniCoefficient measures inequality of the exposure distribution: 0 when
// every restaurant was shown equally often, approaching 1 as exposure
// concentrates on a single listing. All-zero or empty input yields 0.
func GiniCoefficient(exposures []int) float64 {
	if len(exposures) == 0 {
		return 0
	}

	sorted := make([]int, len(exposures))
	copy(sorted, exposures)
	sort.Ints(sorted)

	n := float64(len(sorted))
	sum := 0.0
	weightedSum := 0.0
	for i, count := range sorted {
		sum += float64(count)
		weightedSum += float64(count) * float64(i+1)
	}
	if sum == 0 {
		return 0
	}

	return (2.0*weightedSum)/(n*sum) - (n+1.0)/n
}

// revenueEfficiency is the share of potential revenue actually captured, in
// percent. Zero when nothing was generated or lost.
func revenueEfficiency(generated, lost float64) float64 {
	if generated+lost == 0 {
		return 0
	}
	return generated / (generated + lost) * 100
}

// conversionRate is the share of arrivals that did not leave, in percent.
func conversionRate(arrivals, left int) float64 {
	if arrivals == 0 {
		return 0
	}
	return float64(arrivals-left) / float64(arrivals) * 100
}
