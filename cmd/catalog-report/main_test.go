package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogcli/internal/infrastructure"
	"catalogcli/internal/report"
)

const rawCatalog = "title,director,country,date_added,type,duration,rating,listed_in\n" +
	"Show A,Jane Doe,United States,9/25/2021,Movie,90 min,PG-13,Dramas\n" +
	"Show B,Not Given,France,1/2/2020,TV Show,3 Seasons,TV-MA,\"Dramas, Comedies\"\n" +
	"Show C,Ann Lee,Italy,not a date,Movie,100 min,R,Comedies\n"

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestParseFlags(t *testing.T) {
	opts := parseFlags([]string{"-in", "input.csv", "-charts-dir", "charts"})
	assert.Equal(t, "input.csv", opts.inputFile)
	assert.Equal(t, "charts", opts.chartsDir)
	assert.Empty(t, opts.cleanedOut)

	// runnable with no arguments
	assert.Equal(t, options{}, parseFlags(nil))
}

func TestRun_EndToEnd(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "netflix1.csv"), []byte(rawCatalog), 0644))

	code := run(context.Background(), options{})
	require.Equal(t, 0, code)

	assert.FileExists(t, filepath.Join(dir, "netflix_cleaned.csv"))
	assert.FileExists(t, filepath.Join(dir, "catalog_summary.txt"))
	for _, name := range report.ArtifactNames {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestRun_MissingInputExitsZero(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := chdirTemp(t)

	code := run(context.Background(), options{})
	assert.Equal(t, 0, code)
	assert.NoFileExists(t, filepath.Join(dir, "netflix_cleaned.csv"))
}

func TestRun_MalformedDurationExitsOne(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	dir := chdirTemp(t)
	bad := "title,director,country,date_added,type,duration,rating,listed_in\n" +
		"Show A,Jane Doe,United States,9/25/2021,Movie,ninety min,PG-13,Dramas\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "netflix1.csv"), []byte(bad), 0644))

	code := run(context.Background(), options{})
	assert.Equal(t, 1, code)

	// the cleaned table persists before rendering aborts
	assert.FileExists(t, filepath.Join(dir, "netflix_cleaned.csv"))
}
