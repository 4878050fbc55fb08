package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catalogcli/pkg/contracts/domain"
)

// WriteSummary writes a plain-text digest of the chart aggregations next
// to the artifacts. Duration parse failures surface the same way they do
// during rendering.
func (r *Renderer) WriteSummary(ctx context.Context, records domain.RecordSet, path string) error {
	content, err := buildSummary(records)
	if err != nil {
		return err
	}

	if err := r.writer.WriteTextReport(path, content); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Summary report saved", slog.String("path", path))
	return nil
}

func buildSummary(records domain.RecordSet) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Catalog Summary (%d titles)\n", len(records))
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	writeCountSection(&b, "Content by type", CountByType(records))

	b.WriteString("Titles added per year (2010 onward)\n")
	for _, c := range CountByYear(records) {
		fmt.Fprintf(&b, "  %d: %d\n", c.Year, c.N)
	}
	b.WriteString("\n")

	writeCountSection(&b, "Top directors", TopDirectors(records))
	writeCountSection(&b, "Top countries", TopCountries(records))
	writeCountSection(&b, "Top genres", TopGenres(records))
	writeCountSection(&b, "Ratings", RatingCounts(records))

	values, mean, err := MovieDurations(records)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "Movies: %d, mean duration %.2f min\n", len(values), mean)

	seasons, err := SeasonCounts(records)
	if err != nil {
		return "", err
	}
	b.WriteString("TV shows by season count\n")
	for _, c := range seasons {
		fmt.Fprintf(&b, "  %d season(s): %d\n", c.Seasons, c.N)
	}

	return b.String(), nil
}

func writeCountSection(b *strings.Builder, title string, counts []Count) {
	b.WriteString(title + "\n")
	for _, c := range counts {
		fmt.Fprintf(b, "  %s: %d\n", c.Label, c.N)
	}
	b.WriteString("\n")
}
