package cmd

import (
	"fmt"
	"os"

	"github.com/adhamgad/surplusim/internal/factories"
	"github.com/adhamgad/surplusim/internal/models"
	"github.com/adhamgad/surplusim/internal/simulator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "surplusim",
	Short: "Simulates ranking algorithms for surplus food marketplaces",
	Long: `surplusim is a CLI tool that runs a multi-day marketplace simulation
comparing ranking and allocation algorithms for surplus food platforms,
measuring waste, revenue, conversion and exposure fairness per algorithm.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		restaurants := factories.GenerateRestaurants(cfg, cfg.Seed)
		customers := factories.GenerateCustomers(cfg, cfg.Seed)

		sim := simulator.NewSimulator(cfg, restaurants, customers)
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the comparison")
	rootCmd.Flags().Int("num-days", 7, "Number of simulated days per algorithm")
	rootCmd.Flags().Int("customers-per-day", 100, "Customer arrivals per simulated day")
	rootCmd.Flags().Int("displayed-count", 5, "Number of restaurants displayed per customer")
	rootCmd.Flags().Int("initial-restaurants", 25, "Number of restaurants to generate")
	rootCmd.Flags().Int("initial-customers", 100, "Number of customers to generate")
	rootCmd.Flags().Float64("softmax-temperature", 2.0, "Temperature for the customer choice softmax")
	rootCmd.Flags().Int("max-bags-per-reservation", 3, "Bag cap per confirmed reservation")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-path", "", "Output base path (if not using Kafka)")
	rootCmd.Flags().String("output-format", "json", "Output format: json, csv, parquet or postgres")
	rootCmd.Flags().String("output-destination", "local", "Output destination: local or cloud")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
