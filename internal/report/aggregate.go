package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	apperrors "catalogcli/internal/errors"
	"catalogcli/pkg/contracts/domain"
)

// Count is one label/count pair of a grouping.
type Count struct {
	Label string
	N     int
}

// YearCount is one year/count pair of the yearly grouping.
type YearCount struct {
	Year int
	N    int
}

// SeasonCount is one seasons/count pair of the TV show grouping.
type SeasonCount struct {
	Seasons int
	N       int
}

// minChartYear restricts the yearly chart to recent years.
const minChartYear = 2010

// topN caps the director, country, and genre groupings.
const topN = 15

// CountByType counts records per content type, ordered by count descending.
func CountByType(records domain.RecordSet) []Count {
	return countValues(typeLabels(records), "", 0)
}

func typeLabels(records domain.RecordSet) []string {
	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, string(r.Type))
	}
	return labels
}

// CountByYear counts records per year_added, restricted to years at or
// after 2010, ordered by year ascending.
func CountByYear(records domain.RecordSet) []YearCount {
	byYear := make(map[int]int)
	for _, r := range records {
		if r.YearAdded >= minChartYear {
			byYear[r.YearAdded]++
		}
	}

	out := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		out = append(out, YearCount{Year: year, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopDirectors returns the 15 most frequent directors, excluding the
// "Unknown" sentinel, ordered by count descending.
func TopDirectors(records domain.RecordSet) []Count {
	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Director)
	}
	return countValues(labels, domain.Sentinel, topN)
}

// TopCountries returns the 15 most frequent countries, excluding the
// "Unknown" sentinel, ordered by count descending.
func TopCountries(records domain.RecordSet) []Count {
	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Country)
	}
	return countValues(labels, domain.Sentinel, topN)
}

// TopGenres explodes listed_in into individual genre tokens (one token per
// record per genre) and returns the 15 most frequent, count descending.
func TopGenres(records domain.RecordSet) []Count {
	var labels []string
	for _, r := range records {
		labels = append(labels, r.Genres()...)
	}
	return countValues(labels, "", topN)
}

// RatingCounts counts records per rating, all categories, ordered by
// overall frequency descending.
func RatingCounts(records domain.RecordSet) []Count {
	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Rating)
	}
	return countValues(labels, "", 0)
}

// MovieDurations parses every movie duration to minutes and returns the
// values with their arithmetic mean. A malformed duration aborts the
// aggregation with a DURATION error.
func MovieDurations(records domain.RecordSet) ([]float64, float64, error) {
	movies := records.ByType(domain.ContentTypeMovie)
	values := make([]float64, 0, len(movies))
	for _, r := range movies {
		minutes, err := r.DurationMinutes()
		if err != nil {
			return nil, 0, apperrors.NewDurationError("failed to parse movie duration", err).
				WithContext("title", r.Title)
		}
		values = append(values, float64(minutes))
	}

	if len(values) == 0 {
		return values, 0, nil
	}
	return values, stat.Mean(values, nil), nil
}

// SeasonCounts parses every TV show duration to a season count and counts
// shows per season count, ordered by season count ascending. A malformed
// duration aborts the aggregation with a DURATION error.
func SeasonCounts(records domain.RecordSet) ([]SeasonCount, error) {
	shows := records.ByType(domain.ContentTypeTVShow)
	bySeasons := make(map[int]int)
	for _, r := range shows {
		seasons, err := r.DurationSeasons()
		if err != nil {
			return nil, apperrors.NewDurationError("failed to parse TV show duration", err).
				WithContext("title", r.Title)
		}
		bySeasons[seasons]++
	}

	out := make([]SeasonCount, 0, len(bySeasons))
	for seasons, n := range bySeasons {
		out = append(out, SeasonCount{Seasons: seasons, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seasons < out[j].Seasons })
	return out, nil
}

// countValues counts occurrences of each label, skipping the excluded
// label, and returns pairs ordered by count descending with alphabetical
// tie-break. A limit of 0 keeps every pair.
func countValues(labels []string, exclude string, limit int) []Count {
	byLabel := make(map[string]int)
	for _, label := range labels {
		if label == "" || (exclude != "" && label == exclude) {
			continue
		}
		byLabel[label]++
	}

	out := make([]Count, 0, len(byLabel))
	for label, n := range byLabel {
		out = append(out, Count{Label: label, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
