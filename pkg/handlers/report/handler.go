package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/adapters"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/export"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
	"github.com/Keshav-GC/SOV-MTD-Report/pkg/services/sov"
)

// RecordSource yields the raw record feed the report is built from.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)
}

// Handler serves the pivot report and its exports.
type Handler struct {
	source            RecordSource
	engine            sov.Engine
	defaultCategories []string
}

// NewHandler creates a report Handler. defaultCategories is used when
// a request carries no explicit selection; empty means "all".
func NewHandler(source RecordSource, engine sov.Engine, defaultCategories []string) *Handler {
	return &Handler{
		source:            source,
		engine:            engine,
		defaultCategories: defaultCategories,
	}
}

// GetPivot returns the pivot result as JSON.
func (h *Handler) GetPivot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	result, err := h.buildPivot(ctx, r)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build pivot")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapPivotResultDomainToApi(result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode pivot report")
	}
}

// ExportWorkbook returns the pivot as an xlsx attachment for the
// selected metric kind.
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	kind, err := export.ParseMetricKind(r.URL.Query().Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.buildPivot(ctx, r)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build pivot")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	matrix, err := export.BuildMatrix(result, kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sov_report.xlsx"`)
	if err := export.WriteXLSX(w, matrix); err != nil {
		logger.Error().Err(err).Msg("failed to write workbook")
	}
}

// ExportRaw returns the unprocessed record feed as a CSV attachment.
func (h *Handler) ExportRaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	records, err := h.source.FetchRecords(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch records")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sov_raw.csv"`)
	if err := export.WriteRawCSV(w, records); err != nil {
		logger.Error().Err(err).Msg("failed to write raw csv")
	}
}

func (h *Handler) buildPivot(ctx context.Context, r *http.Request) (*domain.PivotResult, error) {
	records, err := h.source.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	categories := h.defaultCategories
	if q := r.URL.Query().Get("categories"); q != "" {
		categories = splitCSV(q)
	}

	return h.engine.BuildPivot(ctx, records, categories)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
