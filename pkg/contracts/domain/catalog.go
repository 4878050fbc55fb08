package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NullMarker is the literal token the source data uses for a missing value,
// in addition to the empty field.
const NullMarker = "Not Given"

// Sentinel replaces missing director and country values during cleaning.
const Sentinel = "Unknown"

// DateAddedLayout is the fixed month/day/4-digit-year format of the
// date_added column, e.g. "9/25/2021".
const DateAddedLayout = "1/2/2006"

// ContentType classifies a catalog entry. The source column is trusted to
// contain "Movie" or "TV Show"; anything else maps to ContentTypeUnknown
// instead of silently falling through both branches.
type ContentType string

const (
	ContentTypeMovie   ContentType = "Movie"
	ContentTypeTVShow  ContentType = "TV Show"
	ContentTypeUnknown ContentType = "Unknown"
)

// ParseContentType maps a raw type cell to a ContentType.
func ParseContentType(raw string) ContentType {
	switch strings.TrimSpace(raw) {
	case string(ContentTypeMovie):
		return ContentTypeMovie
	case string(ContentTypeTVShow):
		return ContentTypeTVShow
	default:
		return ContentTypeUnknown
	}
}

// Record is one row of the media catalog. String fields hold the raw cell
// value with the null marker normalized to the empty string; DateAdded and
// the derived columns are populated by the cleaning pipeline.
type Record struct {
	Title      string      `json:"title" csv:"title" validate:"required"`
	Director   string      `json:"director" csv:"director"`
	Country    string      `json:"country" csv:"country"`
	DateRaw    string      `json:"date_added" csv:"date_added"`
	DateAdded  *time.Time  `json:"-" csv:"-"`
	YearAdded  int         `json:"year_added" csv:"year_added"`
	MonthAdded int         `json:"month_added" csv:"month_added"`
	Type       ContentType `json:"type" csv:"type"`
	Duration   string      `json:"duration" csv:"duration"`
	Rating     string      `json:"rating" csv:"rating"`
	ListedIn   string      `json:"listed_in" csv:"listed_in"`
}

// Genres splits the listed_in column into individual genre tokens.
// The source separates genres with ", ".
func (r Record) Genres() []string {
	if r.ListedIn == "" {
		return nil
	}
	return strings.Split(r.ListedIn, ", ")
}

// DurationMinutes parses a movie duration of the form "<N> min".
func (r Record) DurationMinutes() (int, error) {
	return parseDuration(r.Duration, "Movie", " min")
}

// DurationSeasons parses a TV show duration of the form "<N> Season" or
// "<N> Seasons".
func (r Record) DurationSeasons() (int, error) {
	trimmed := strings.TrimSuffix(r.Duration, " Seasons")
	trimmed = strings.TrimSuffix(trimmed, " Season")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &DurationFormatError{Value: r.Duration, Kind: "TV Show"}
	}
	return n, nil
}

func parseDuration(value, kind, suffix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(value, suffix))
	if err != nil {
		return 0, &DurationFormatError{Value: value, Kind: kind}
	}
	return n, nil
}

// DurationFormatError reports a duration cell whose remainder after
// stripping the unit label is not an integer.
type DurationFormatError struct {
	Value string
	Kind  string
}

func (e *DurationFormatError) Error() string {
	return fmt.Sprintf("malformed %s duration %q", e.Kind, e.Value)
}

// RecordSet is the full collection of catalog entries. Cleaning stages
// treat it as an immutable value: each stage returns a new RecordSet.
type RecordSet []Record

// Titles returns the set of titles present, preserving order.
func (rs RecordSet) Titles() []string {
	titles := make([]string, 0, len(rs))
	for _, r := range rs {
		titles = append(titles, r.Title)
	}
	return titles
}

// ByType partitions the set read-only into records of the given type.
func (rs RecordSet) ByType(t ContentType) RecordSet {
	var out RecordSet
	for _, r := range rs {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// Columns is the persisted column order: all original columns followed by
// the derived ones.
var Columns = []string{
	"title", "director", "country", "date_added",
	"type", "duration", "rating", "listed_in",
	"year_added", "month_added",
}

// Row flattens a record into the persisted column order. The date is
// written back in the source layout so a re-clean of the output parses it
// the same way.
func (r Record) Row() []string {
	dateOut := r.DateRaw
	if r.DateAdded != nil {
		dateOut = fmt.Sprintf("%d/%d/%d", int(r.DateAdded.Month()), r.DateAdded.Day(), r.DateAdded.Year())
	}
	return []string{
		r.Title, r.Director, r.Country, dateOut,
		string(r.Type), r.Duration, r.Rating, r.ListedIn,
		strconv.Itoa(r.YearAdded), strconv.Itoa(r.MonthAdded),
	}
}
