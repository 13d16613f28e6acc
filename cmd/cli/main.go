package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/export"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/sov"
)

type reportCmd struct {
	inputPath  string
	categories string
	metric     string
	outPath    string
	rawOutPath string
}

func newReportCmd() *cobra.Command {
	rc := &reportCmd{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the SOV pivot from a local records file",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.inputPath, "input", "", "Path to a JSON array of raw records")
	cmd.Flags().StringVar(&rc.categories, "categories", "", "Comma-separated category selection (empty keeps all)")
	cmd.Flags().StringVar(&rc.metric, "metric", "overall", "Metric to export: overall, ad or organic")
	cmd.Flags().StringVar(&rc.outPath, "out", "sov_report.xlsx", "Output workbook path")
	cmd.Flags().StringVar(&rc.rawOutPath, "raw-out", "", "Optional raw record CSV dump path")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	kind, err := export.ParseMetricKind(rc.metric)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(rc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	var records []domain.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse input records: %w", err)
	}

	var categories []string
	for _, c := range strings.Split(rc.categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	engine := sov.NewEngine(sov.DefaultTables())
	result, err := engine.BuildPivot(ctx, records, categories)
	if err != nil {
		return fmt.Errorf("failed to build pivot: %w", err)
	}

	matrix, err := export.BuildMatrix(result, kind)
	if err != nil {
		return err
	}

	out, err := os.Create(rc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	if err := export.WriteXLSX(out, matrix); err != nil {
		return err
	}
	logger.Info().Str("path", rc.outPath).Int("rows", len(result.Rows)).Msg("workbook written")

	if rc.rawOutPath != "" {
		raw, err := os.Create(rc.rawOutPath)
		if err != nil {
			return fmt.Errorf("failed to create raw dump file: %w", err)
		}
		defer raw.Close()
		if err := export.WriteRawCSV(raw, records); err != nil {
			return err
		}
		logger.Info().Str("path", rc.rawOutPath).Int("records", len(records)).Msg("raw dump written")
	}

	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "sov",
		Short: "Share-of-voice report tooling",
	}
	root.AddCommand(newReportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
