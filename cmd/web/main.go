package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/handlers/report"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/server"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/config"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/sov"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/store/source"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the SOV report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "sov.yaml",
		"Path to the report configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Source.URL == "" {
		return fmt.Errorf("source.url must be set in %s", cfgPath)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Record feed: `%s`", cfg.Source.URL)

	src := source.NewClient(&http.Client{Timeout: cfg.Source.Timeout}, cfg.Source.URL)
	engine := sov.NewEngine(cfg.LookupTables())
	handler := report.NewHandler(src, engine, cfg.Categories)

	host := cfg.Server.Host
	if env := os.Getenv("SERVER_HOST"); env != "" {
		host = env
	}
	port := strconv.Itoa(cfg.Server.Port)
	if env := os.Getenv("SERVER_PORT"); env != "" {
		port = env
	}

	addr := net.JoinHostPort(host, port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies:    server.Dependencies{Report: handler},
	})

	return api.Start()
}
