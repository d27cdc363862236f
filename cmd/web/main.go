package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/greensphere/payoff/pkg/server"
	"github.com/greensphere/payoff/pkg/services/analysis"
	"github.com/greensphere/payoff/pkg/services/config"
	"github.com/greensphere/payoff/pkg/services/feedback"
	"github.com/greensphere/payoff/pkg/services/payoff"
	"github.com/greensphere/payoff/pkg/store/duckdb"
	analysisstore "github.com/greensphere/payoff/pkg/store/duckdb/analysis"
	feedbackstore "github.com/greensphere/payoff/pkg/store/duckdb/feedback"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the GreenSphere payoff API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (PAYOFF_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := zerolog.New(os.Stdout).Level(cfg.LogLevel()).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.Store.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to open store at %s: %w", cfg.Store.Path, err)
	}

	analysisStore, err := analysisstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create analysis store: %w", err)
	}
	feedbackStore, err := feedbackstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create feedback store: %w", err)
	}

	calculator := payoff.NewCalculator()
	logger.Info().Msgf("Loaded %d energy source profiles", len(calculator.Profiles()))
	logger.Info().Msgf("Store `%s` ready", cfg.Store.Path)

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Analysis: analysis.NewService(db, calculator, analysisStore),
			Feedback: feedback.NewService(feedbackStore),
			Logger:   logger,
		},
	})

	return api.Start()
}
