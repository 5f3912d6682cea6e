package models

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	Seed            int64 `mapstructure:"seed"`
	NumDays         int   `mapstructure:"num_days"`
	CustomersPerDay int   `mapstructure:"customers_per_day"`
	DisplayedCount  int   `mapstructure:"displayed_count"`

	InitialRestaurants int     `mapstructure:"initial_restaurants"`
	InitialCustomers   int     `mapstructure:"initial_customers"`
	CityName           string  `mapstructure:"city_name"`
	CityLat            float64 `mapstructure:"city_latitude"`
	CityLon            float64 `mapstructure:"city_longitude"`
	UrbanRadius        float64 `mapstructure:"urban_radius"`

	MinEstimatedBags int     `mapstructure:"min_estimated_bags"`
	MaxEstimatedBags int     `mapstructure:"max_estimated_bags"`
	MinPricePerBag   float64 `mapstructure:"min_price_per_bag"`
	MaxPricePerBag   float64 `mapstructure:"max_price_per_bag"`
	MinRating        float64 `mapstructure:"min_rating"`
	MaxRating        float64 `mapstructure:"max_rating"`

	// Fallbacks applied to source records missing a field.
	DefaultEstimatedBags    int     `mapstructure:"default_estimated_bags"`
	DefaultRating           float64 `mapstructure:"default_rating"`
	DefaultPricePerBag      float64 `mapstructure:"default_price_per_bag"`
	DefaultWillingnessToPay float64 `mapstructure:"default_willingness_to_pay"`
	DefaultLeavingThreshold float64 `mapstructure:"default_leaving_threshold"`

	InventoryVarianceMin  float64 `mapstructure:"inventory_variance_min"`
	InventoryVarianceMax  float64 `mapstructure:"inventory_variance_max"`
	RatingDriftUp         float64 `mapstructure:"rating_drift_up"`
	RatingDriftDown       float64 `mapstructure:"rating_drift_down"`
	SoftmaxTemperature    float64 `mapstructure:"softmax_temperature"`
	MaxBagsPerReservation int     `mapstructure:"max_bags_per_reservation"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputFormat      string `mapstructure:"output_format"`
	OutputDestination string `mapstructure:"output_destination"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("num_days", 7)
	viper.SetDefault("customers_per_day", 100)
	viper.SetDefault("displayed_count", 5)

	viper.SetDefault("initial_restaurants", 25)
	viper.SetDefault("initial_customers", 100)
	viper.SetDefault("city_name", "Cairo")
	viper.SetDefault("city_latitude", 30.0)
	viper.SetDefault("city_longitude", 31.2)
	viper.SetDefault("urban_radius", 4.0)

	viper.SetDefault("min_estimated_bags", 5)
	viper.SetDefault("max_estimated_bags", 25)
	viper.SetDefault("min_price_per_bag", 40.0)
	viper.SetDefault("max_price_per_bag", 180.0)
	viper.SetDefault("min_rating", 3.0)
	viper.SetDefault("max_rating", 5.0)

	viper.SetDefault("default_estimated_bags", 10)
	viper.SetDefault("default_rating", 4.0)
	viper.SetDefault("default_price_per_bag", 100.0)
	viper.SetDefault("default_willingness_to_pay", 200.0)
	viper.SetDefault("default_leaving_threshold", 3.0)

	viper.SetDefault("inventory_variance_min", 0.8)
	viper.SetDefault("inventory_variance_max", 1.2)
	viper.SetDefault("rating_drift_up", 0.01)
	viper.SetDefault("rating_drift_down", 0.02)
	viper.SetDefault("softmax_temperature", 2.0)
	viper.SetDefault("max_bags_per_reservation", 3)

	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("output_folder", "surplusim_results")
	viper.SetDefault("output_format", "json")
	viper.SetDefault("output_destination", "local")
}

// LoadConfig initializes and reads the configuration using Viper. A missing
// config file is fine when none was requested explicitly; defaults and
// flag/env overrides carry the run.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
