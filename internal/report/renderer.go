package report

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	apperrors "catalogcli/internal/errors"
	"catalogcli/internal/exporter"
	"catalogcli/pkg/contracts/domain"
)

// Fixed artifact filenames, overwritten on every run.
const (
	PlotContentType   = "plot1_content_type_distribution.png"
	PlotAddedOverTime = "plot2_content_added_over_time.png"
	PlotTopDirectors  = "plot3_top_15_directors.png"
	PlotTopCountries  = "plot4_top_15_countries.png"
	PlotTopGenres     = "plot5_top_15_genres.png"
	PlotRatings       = "plot6_rating_distribution.png"
	PlotMovieDuration = "plot7_movie_duration_histogram.png"
	PlotTVSeasons     = "plot8_tv_show_seasons_distribution.png"
)

// ArtifactNames lists every chart artifact in render order.
var ArtifactNames = []string{
	PlotContentType,
	PlotAddedOverTime,
	PlotTopDirectors,
	PlotTopCountries,
	PlotTopGenres,
	PlotRatings,
	PlotMovieDuration,
	PlotTVSeasons,
}

// Renderer produces the chart artifacts and the text summary for a
// cleaned record set. It reads the set but never modifies it.
type Renderer struct {
	logger    *slog.Logger
	writer    *exporter.CSVWriter
	chartsDir string
}

// NewRenderer creates a renderer writing artifacts into chartsDir.
func NewRenderer(logger *slog.Logger, chartsDir string) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		logger:    logger,
		writer:    exporter.NewCSVWriter(logger),
		chartsDir: chartsDir,
	}
}

// RenderAll produces the eight chart artifacts in their fixed order. The
// first failure aborts the remaining charts; a malformed duration surfaces
// as a DURATION error rather than a crash.
func (r *Renderer) RenderAll(ctx context.Context, records domain.RecordSet) error {
	r.logger.InfoContext(ctx, "Starting analysis and visualization",
		slog.Int("record_count", len(records)),
		slog.String("charts_dir", r.chartsDir))

	charts := []struct {
		number      int
		description string
		file        string
		render      func(domain.RecordSet, string) error
	}{
		{1, "Content Type Distribution", PlotContentType, r.renderContentType},
		{2, "Content Added Over Time", PlotAddedOverTime, r.renderAddedOverTime},
		{3, "Top 15 Directors", PlotTopDirectors, r.renderTopDirectors},
		{4, "Top 15 Countries", PlotTopCountries, r.renderTopCountries},
		{5, "Top 15 Genres", PlotTopGenres, r.renderTopGenres},
		{6, "Rating Distribution", PlotRatings, r.renderRatings},
		{7, "Movie Duration Histogram", PlotMovieDuration, r.renderMovieDurations},
		{8, "TV Show Seasons Distribution", PlotTVSeasons, r.renderSeasons},
	}

	for _, chart := range charts {
		path := filepath.Join(r.chartsDir, chart.file)
		if err := chart.render(records, path); err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeDuration) {
				return err
			}
			return apperrors.NewRenderError(chart.description, err).
				WithContext("file", chart.file)
		}
		r.logger.InfoContext(ctx, fmt.Sprintf("Generated plot %d: %s", chart.number, chart.description),
			slog.String("file", path))
	}

	r.logger.InfoContext(ctx, "Analysis complete",
		slog.Int("artifact_count", len(charts)))

	return nil
}

func (r *Renderer) renderContentType(records domain.RecordSet, path string) error {
	return renderBarChart(
		"Content Distribution: Movie vs. TV Show",
		"Content Type", "Count",
		CountByType(records), path)
}

func (r *Renderer) renderAddedOverTime(records domain.RecordSet, path string) error {
	return renderYearLineChart(
		"Content Added Over Time (Yearly)",
		"Year Added", "Number of Titles Added",
		CountByYear(records), path)
}

func (r *Renderer) renderTopDirectors(records domain.RecordSet, path string) error {
	return renderHorizontalBarChart(
		`Top 15 Directors (Excluding "Unknown")`,
		"Number of Titles", "Director",
		TopDirectors(records), path)
}

func (r *Renderer) renderTopCountries(records domain.RecordSet, path string) error {
	return renderHorizontalBarChart(
		`Top 15 Content-Producing Countries (Excluding "Unknown")`,
		"Number of Titles", "Country",
		TopCountries(records), path)
}

func (r *Renderer) renderTopGenres(records domain.RecordSet, path string) error {
	return renderHorizontalBarChart(
		"Top 15 Genres",
		"Number of Titles", "Genre",
		TopGenres(records), path)
}

func (r *Renderer) renderRatings(records domain.RecordSet, path string) error {
	return renderBarChart(
		"Distribution of Content Ratings",
		"Rating", "Count",
		RatingCounts(records), path)
}

func (r *Renderer) renderMovieDurations(records domain.RecordSet, path string) error {
	values, mean, err := MovieDurations(records)
	if err != nil {
		return err
	}
	return renderHistogram(
		"Distribution of Movie Durations (in minutes)",
		"Duration (minutes)", "Count",
		values, mean, path)
}

func (r *Renderer) renderSeasons(records domain.RecordSet, path string) error {
	counts, err := SeasonCounts(records)
	if err != nil {
		return err
	}
	return renderSeasonBarChart(
		"Distribution of TV Show Seasons",
		"Number of Seasons", "Number of TV Shows",
		counts, path)
}
