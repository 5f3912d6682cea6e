package simulator

import (
	"encoding/json"
	"fmt"

	"github.com/adhamgad/surplusim/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

// Output topics. Every sink receives the same two record streams.
const (
	TopicRestaurantBreakdown = "restaurant_breakdown"
	TopicAlgorithmMetrics    = "algorithm_metrics"
)

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case TopicRestaurantBreakdown:
		sh, err = schema.NewSchemaHandlerFromStruct(new(models.RestaurantBreakdown))
	case TopicAlgorithmMetrics:
		sh, err = schema.NewSchemaHandlerFromStruct(new(models.AlgorithmMetrics))
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}

	if err != nil {
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}
	return sh, nil
}

// decodeRecord rebuilds the typed record a message carries, for sinks that
// write structured rows instead of raw bytes.
func decodeRecord(topic string, msg []byte) (interface{}, error) {
	switch topic {
	case TopicRestaurantBreakdown:
		record := models.RestaurantBreakdown{}
		if err := json.Unmarshal(msg, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", topic, err)
		}
		return record, nil
	case TopicAlgorithmMetrics:
		record := models.AlgorithmMetrics{}
		if err := json.Unmarshal(msg, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", topic, err)
		}
		return record, nil
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
}
