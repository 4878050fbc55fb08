package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"catalogcli/pkg/contracts/domain"
)

// Cleaner applies the cleaning stages to a record set. Every method is a
// pure transformation: the input set is never modified.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner that logs one summary line per stage.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Deduplicate drops every record whose title already appeared earlier in
// the set. The first occurrence wins regardless of field completeness.
func (c *Cleaner) Deduplicate(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	seen := make(map[string]struct{}, len(records))
	out := make(domain.RecordSet, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.Title]; dup {
			continue
		}
		seen[r.Title] = struct{}{}
		out = append(out, r)
	}

	c.logger.InfoContext(ctx, "Dropped duplicate titles",
		slog.Int("dropped", len(records)-len(out)),
		slog.Int("remaining", len(out)))

	return out
}

// Impute fills missing director and country values with the sentinel.
// The two fields are imputed independently.
func (c *Cleaner) Impute(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	out := make(domain.RecordSet, len(records))
	var directors, countries int
	for i, r := range records {
		if r.Director == "" {
			r.Director = domain.Sentinel
			directors++
		}
		if r.Country == "" {
			r.Country = domain.Sentinel
			countries++
		}
		out[i] = r
	}

	c.logger.InfoContext(ctx, "Filled missing director and country values",
		slog.String("sentinel", domain.Sentinel),
		slog.Int("directors_filled", directors),
		slog.Int("countries_filled", countries))

	return out
}

// ParseDates trims and parses the raw date_added value of every record
// against the fixed month/day/year layout. A value that does not match
// leaves DateAdded nil; no value is an error.
func (c *Cleaner) ParseDates(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	out := make(domain.RecordSet, len(records))
	var parsed int
	for i, r := range records {
		raw := strings.TrimSpace(r.DateRaw)
		if t, err := time.Parse(domain.DateAddedLayout, raw); err == nil {
			r.DateAdded = &t
			parsed++
		} else {
			r.DateAdded = nil
		}
		out[i] = r
	}

	c.logger.InfoContext(ctx, "Parsed date_added values",
		slog.String("layout", domain.DateAddedLayout),
		slog.Int("parsed", parsed),
		slog.Int("unparseable", len(records)-parsed))

	return out
}

// DropInvalidDates removes every record without a parsed date. After this
// stage no record has a nil DateAdded.
func (c *Cleaner) DropInvalidDates(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	out := make(domain.RecordSet, 0, len(records))
	for _, r := range records {
		if r.DateAdded != nil {
			out = append(out, r)
		}
	}

	c.logger.InfoContext(ctx, "Dropped records with invalid dates",
		slog.Int("dropped", len(records)-len(out)),
		slog.Int("remaining", len(out)))

	return out
}

// Derive sets the year_added and month_added columns from the parsed date.
// It assumes DropInvalidDates already ran.
func (c *Cleaner) Derive(ctx context.Context, records domain.RecordSet) domain.RecordSet {
	out := make(domain.RecordSet, len(records))
	for i, r := range records {
		if r.DateAdded != nil {
			r.YearAdded = r.DateAdded.Year()
			r.MonthAdded = int(r.DateAdded.Month())
		}
		out[i] = r
	}

	c.logger.InfoContext(ctx, "Derived year_added and month_added columns",
		slog.Int("record_count", len(out)))

	return out
}
