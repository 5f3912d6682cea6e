package models

// RestaurantBreakdown is one per-restaurant result row for one algorithm run.
// Counts are cumulative over the run; AvgActualBags is the rounded mean of
// the daily realized inventory.
type RestaurantBreakdown struct {
	Timestamp     int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	Algorithm     string  `json:"algorithm" parquet:"name=algorithm,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID  int64   `json:"restaurant_id" parquet:"name=restaurant_id,type=INT64"`
	Name          string  `json:"restaurant_name" parquet:"name=restaurant_name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Branch        string  `json:"branch" parquet:"name=branch,type=BYTE_ARRAY,convertedtype=UTF8"`
	EstimatedBags int64   `json:"estimated_bags" parquet:"name=estimated_bags,type=INT64"`
	AvgActualBags int64   `json:"avg_actual_bags" parquet:"name=avg_actual_bags,type=INT64"`
	Reserved      int64   `json:"reserved" parquet:"name=reserved,type=INT64"`
	Sold          int64   `json:"sold" parquet:"name=sold,type=INT64"`
	Cancelled     int64   `json:"cancelled" parquet:"name=cancelled,type=INT64"`
	Waste         int64   `json:"waste" parquet:"name=waste,type=INT64"`
	Revenue       float64 `json:"revenue" parquet:"name=revenue,type=DOUBLE"`
	Exposures     int64   `json:"exposures" parquet:"name=exposures,type=INT64"`
}

// AlgorithmMetrics is the aggregate row for one algorithm run.
type AlgorithmMetrics struct {
	Timestamp             int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	Algorithm             string  `json:"algorithm" parquet:"name=algorithm,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalBagsSold         int64   `json:"total_bags_sold" parquet:"name=total_bags_sold,type=INT64"`
	TotalBagsCancelled    int64   `json:"total_bags_cancelled" parquet:"name=total_bags_cancelled,type=INT64"`
	TotalBagsUnsold       int64   `json:"total_bags_unsold" parquet:"name=total_bags_unsold,type=INT64"`
	TotalRevenueGenerated float64 `json:"total_revenue_generated" parquet:"name=total_revenue_generated,type=DOUBLE"`
	TotalRevenueLost      float64 `json:"total_revenue_lost" parquet:"name=total_revenue_lost,type=DOUBLE"`
	RevenueEfficiency     float64 `json:"revenue_efficiency" parquet:"name=revenue_efficiency,type=DOUBLE"`
	CustomersWhoLeft      int64   `json:"customers_who_left" parquet:"name=customers_who_left,type=INT64"`
	ConversionRate        float64 `json:"conversion_rate" parquet:"name=conversion_rate,type=DOUBLE"`
	GiniCoefficient       float64 `json:"gini_coefficient" parquet:"name=gini_coefficient,type=DOUBLE"`
	TotalCustomerArrivals int64   `json:"total_customer_arrivals" parquet:"name=total_customer_arrivals,type=INT64"`
}

// AlgorithmResult pairs an algorithm with its restaurant breakdown.
type AlgorithmResult struct {
	Algorithm   string                `json:"algorithm"`
	Restaurants []RestaurantBreakdown `json:"restaurants"`
}

// SimulationReport is the full output of one comparison: every algorithm's
// breakdown plus the comparison metrics, as plain records for an external
// presentation layer.
type SimulationReport struct {
	Results    []AlgorithmResult  `json:"results"`
	Comparison []AlgorithmMetrics `json:"comparison"`
}
