package sov

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// Engine builds share-of-voice pivots from raw impression records.
type Engine interface {
	// BuildPivot runs the full pipeline over an already-materialized
	// record sequence. An empty category selection keeps every
	// category; a dataset that is empty after filtering yields an
	// empty result, not an error.
	BuildPivot(ctx context.Context, raw []domain.RawRecord, categories []string) (*domain.PivotResult, error)
}

type engine struct {
	tables     Tables
	normalizer *Normalizer
	resolver   *Resolver
}

// NewEngine creates an Engine backed by the given lookup tables.
func NewEngine(tables Tables) Engine {
	return &engine{
		tables:     tables,
		normalizer: NewNormalizer(tables),
		resolver:   NewResolver(tables),
	}
}

func (e *engine) BuildPivot(ctx context.Context, raw []domain.RawRecord, categories []string) (*domain.PivotResult, error) {
	logger := zerolog.Ctx(ctx)

	recs := e.normalizer.Normalize(raw, categories)
	if len(recs) == 0 {
		logger.Debug().Int("raw", len(raw)).Msg("no records left after normalization")
		return &domain.PivotResult{Rows: []domain.PivotRow{}}, nil
	}

	agg := NewAggregator()
	agg.AddAll(recs)

	dims := e.resolver.Resolve(recs)
	ranked := RankCities(agg, recs, dims, e.tables.ReferenceBrand)

	logger.Debug().
		Int("raw", len(raw)).
		Int("normalized", len(recs)).
		Int("groups", agg.Len()).
		Int("rows", len(ranked)).
		Msg("pivot built")

	return &domain.PivotResult{
		Headers: BuildHeaders(dims),
		Rows:    BuildRows(agg, ranked, dims),
	}, nil
}
