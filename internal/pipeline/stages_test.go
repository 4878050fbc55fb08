package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcli/pkg/contracts/domain"
)

func TestCleaner_Deduplicate(t *testing.T) {
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		records    domain.RecordSet
		wantTitles []string
	}{
		{
			name:       "no duplicates",
			records:    domain.RecordSet{{Title: "A"}, {Title: "B"}},
			wantTitles: []string{"A", "B"},
		},
		{
			name:       "empty set",
			records:    domain.RecordSet{},
			wantTitles: []string{},
		},
		{
			name: "first occurrence wins on original order",
			records: domain.RecordSet{
				{Title: "A", Director: ""},
				{Title: "B"},
				{Title: "A", Director: "Jane Doe"},
			},
			wantTitles: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleaner.Deduplicate(ctx, tt.records)
			assert.Equal(t, tt.wantTitles, got.Titles())
		})
	}
}

func TestCleaner_Deduplicate_FirstWinsRegardlessOfNulls(t *testing.T) {
	// The earlier record survives even when a later duplicate is more
	// complete, so the null director is imputed afterwards.
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	records := domain.RecordSet{
		{Title: "Show A", Director: ""},
		{Title: "Show A", Director: "Jane Doe"},
	}

	got := cleaner.Impute(ctx, cleaner.Deduplicate(ctx, records))
	require.Len(t, got, 1)
	assert.Equal(t, domain.Sentinel, got[0].Director)
}

func TestCleaner_Impute(t *testing.T) {
	cleaner := NewCleaner(nil)

	records := domain.RecordSet{
		{Title: "A", Director: "", Country: "France"},
		{Title: "B", Director: "Jane Doe", Country: ""},
		{Title: "C", Director: "", Country: ""},
	}

	got := cleaner.Impute(context.Background(), records)

	assert.Equal(t, domain.Sentinel, got[0].Director)
	assert.Equal(t, "France", got[0].Country)
	assert.Equal(t, "Jane Doe", got[1].Director)
	assert.Equal(t, domain.Sentinel, got[1].Country)
	assert.Equal(t, domain.Sentinel, got[2].Director)
	assert.Equal(t, domain.Sentinel, got[2].Country)
}

func TestCleaner_ParseDates(t *testing.T) {
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		raw      string
		wantDate *time.Time
	}{
		{
			name:     "valid date",
			raw:      "9/25/2021",
			wantDate: timePtr(2021, time.September, 25),
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      " 9/25/2021 ",
			wantDate: timePtr(2021, time.September, 25),
		},
		{
			name:     "zero padded",
			raw:      "01/02/2020",
			wantDate: timePtr(2020, time.January, 2),
		},
		{
			name:     "not a date",
			raw:      "not a date",
			wantDate: nil,
		},
		{
			name:     "empty string",
			raw:      "",
			wantDate: nil,
		},
		{
			name:     "two digit year",
			raw:      "9/25/21",
			wantDate: nil,
		},
		{
			name:     "iso layout rejected",
			raw:      "2021-09-25",
			wantDate: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleaner.ParseDates(ctx, domain.RecordSet{{Title: "A", DateRaw: tt.raw}})
			require.Len(t, got, 1)
			if tt.wantDate == nil {
				assert.Nil(t, got[0].DateAdded)
			} else {
				require.NotNil(t, got[0].DateAdded)
				assert.True(t, tt.wantDate.Equal(*got[0].DateAdded))
			}
		})
	}
}

func TestCleaner_DropInvalidDates(t *testing.T) {
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	records := cleaner.ParseDates(ctx, domain.RecordSet{
		{Title: "A", DateRaw: "9/25/2021"},
		{Title: "B", DateRaw: "not a date"},
		{Title: "C", DateRaw: "1/1/2015"},
	})

	got := cleaner.DropInvalidDates(ctx, records)
	assert.Equal(t, []string{"A", "C"}, got.Titles())
	for _, r := range got {
		assert.NotNil(t, r.DateAdded)
	}
}

func TestCleaner_Derive(t *testing.T) {
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	records := cleaner.ParseDates(ctx, domain.RecordSet{{Title: "A", DateRaw: " 9/25/2021 "}})
	got := cleaner.Derive(ctx, cleaner.DropInvalidDates(ctx, records))

	require.Len(t, got, 1)
	assert.Equal(t, 2021, got[0].YearAdded)
	assert.Equal(t, 9, got[0].MonthAdded)
}

func TestCleaner_StagesDoNotMutateInput(t *testing.T) {
	cleaner := NewCleaner(nil)
	ctx := context.Background()

	records := domain.RecordSet{
		{Title: "A", Director: "", Country: "", DateRaw: "9/25/2021"},
	}

	_ = cleaner.Impute(ctx, records)
	assert.Empty(t, records[0].Director)

	_ = cleaner.ParseDates(ctx, records)
	assert.Nil(t, records[0].DateAdded)
}

func timePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
