package pipeline

import (
	"context"
	"log/slog"

	apperrors "catalogcli/internal/errors"
	"catalogcli/internal/exporter"
	"catalogcli/pkg/contracts/domain"
)

// Pipeline wires the cleaning stages together in their required order and
// persists the result.
type Pipeline struct {
	logger  *slog.Logger
	cleaner *Cleaner
	writer  *exporter.CSVWriter
}

// New creates a cleaning pipeline.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:  logger,
		cleaner: NewCleaner(logger),
		writer:  exporter.NewCSVWriter(logger),
	}
}

// Run loads the raw table from inputPath, applies the cleaning stages, and
// writes the cleaned table to outputPath. The returned record set honors
// the cleaning invariants: unique titles, sentinel-filled director and
// country, non-nil DateAdded, and derived year/month columns.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string) (domain.RecordSet, error) {
	records, err := Load(ctx, inputPath, p.logger)
	if err != nil {
		return nil, err
	}

	records = p.Clean(ctx, records)

	if err := p.Persist(ctx, records, outputPath); err != nil {
		return nil, err
	}

	return records, nil
}

// Clean applies the cleaning stages in their required order. Every stage
// is total: no record value can fail the run.
func (p *Pipeline) Clean(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	p.logger.InfoContext(ctx, "Cleaning data", slog.Int("record_count", len(records)))

	records = p.cleaner.Deduplicate(ctx, records)
	records = p.cleaner.Impute(ctx, records)
	records = p.cleaner.ParseDates(ctx, records)
	records = p.cleaner.DropInvalidDates(ctx, records)
	records = p.cleaner.Derive(ctx, records)

	return records
}

// Persist writes the cleaned record set to outputPath, overwriting any
// existing file, with all original columns plus the derived ones.
func (p *Pipeline) Persist(ctx context.Context, records domain.RecordSet, outputPath string) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}

	if err := p.writer.WriteSimpleCSV(outputPath, domain.Columns, rows); err != nil {
		return apperrors.NewExportError("failed to save cleaned data", err).
			WithContext("path", outputPath)
	}

	p.logger.InfoContext(ctx, "Cleaned data saved",
		slog.String("path", outputPath),
		slog.Int("record_count", len(records)))

	return nil
}
