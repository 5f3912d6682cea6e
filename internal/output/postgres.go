package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adhamgad/surplusim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput persists simulation result records into two tables, one per
// topic, so comparisons across runs can be queried directly.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(config *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.User, config.Password, config.Host, config.Port, config.DBName, config.SSLMode,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	p := &PostgresOutput{pool: pool}
	if err := p.createTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresOutput) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurant_breakdown (
			timestamp       BIGINT NOT NULL,
			algorithm       TEXT NOT NULL,
			restaurant_id   BIGINT NOT NULL,
			restaurant_name TEXT NOT NULL,
			branch          TEXT NOT NULL,
			estimated_bags  BIGINT NOT NULL,
			avg_actual_bags BIGINT NOT NULL,
			reserved        BIGINT NOT NULL,
			sold            BIGINT NOT NULL,
			cancelled       BIGINT NOT NULL,
			waste           BIGINT NOT NULL,
			revenue         DOUBLE PRECISION NOT NULL,
			exposures       BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS algorithm_metrics (
			timestamp               BIGINT NOT NULL,
			algorithm               TEXT NOT NULL,
			total_bags_sold         BIGINT NOT NULL,
			total_bags_cancelled    BIGINT NOT NULL,
			total_bags_unsold       BIGINT NOT NULL,
			total_revenue_generated DOUBLE PRECISION NOT NULL,
			total_revenue_lost      DOUBLE PRECISION NOT NULL,
			revenue_efficiency      DOUBLE PRECISION NOT NULL,
			customers_who_left      BIGINT NOT NULL,
			conversion_rate         DOUBLE PRECISION NOT NULL,
			gini_coefficient        DOUBLE PRECISION NOT NULL,
			total_customer_arrivals BIGINT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch topic {
	case "restaurant_breakdown":
		var row models.RestaurantBreakdown
		if err := json.Unmarshal(msg, &row); err != nil {
			return fmt.Errorf("failed to decode %s record: %w", topic, err)
		}
		return p.insertBreakdown(ctx, row)
	case "algorithm_metrics":
		var row models.AlgorithmMetrics
		if err := json.Unmarshal(msg, &row); err != nil {
			return fmt.Errorf("failed to decode %s record: %w", topic, err)
		}
		return p.insertMetrics(ctx, row)
	default:
		return fmt.Errorf("unknown topic: %s", topic)
	}
}

func (p *PostgresOutput) insertBreakdown(ctx context.Context, row models.RestaurantBreakdown) error {
	query := `
        INSERT INTO restaurant_breakdown (
            timestamp, algorithm, restaurant_id, restaurant_name, branch,
            estimated_bags, avg_actual_bags, reserved, sold, cancelled,
            waste, revenue, exposures
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
        )`

	_, err := p.pool.Exec(ctx, query,
		row.Timestamp,
		row.Algorithm,
		row.RestaurantID,
		row.Name,
		row.Branch,
		row.EstimatedBags,
		row.AvgActualBags,
		row.Reserved,
		row.Sold,
		row.Cancelled,
		row.Waste,
		row.Revenue,
		row.Exposures,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into restaurant_breakdown: %w", err)
	}
	return nil
}

func (p *PostgresOutput) insertMetrics(ctx context.Context, row models.AlgorithmMetrics) error {
	query := `
        INSERT INTO algorithm_metrics (
            timestamp, algorithm, total_bags_sold, total_bags_cancelled,
            total_bags_unsold, total_revenue_generated, total_revenue_lost,
            revenue_efficiency, customers_who_left, conversion_rate,
            gini_coefficient, total_customer_arrivals
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )`

	_, err := p.pool.Exec(ctx, query,
		row.Timestamp,
		row.Algorithm,
		row.TotalBagsSold,
		row.TotalBagsCancelled,
		row.TotalBagsUnsold,
		row.TotalRevenueGenerated,
		row.TotalRevenueLost,
		row.RevenueEfficiency,
		row.CustomersWhoLeft,
		row.ConversionRate,
		row.GiniCoefficient,
		row.TotalCustomerArrivals,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into algorithm_metrics: %w", err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
