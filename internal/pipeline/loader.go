package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "catalogcli/internal/errors"
	"catalogcli/pkg/contracts/domain"
)

// requiredColumns are the source columns the pipeline consumes. The loader
// fails if any is missing from the header.
var requiredColumns = []string{
	"title", "director", "country", "date_added",
	"type", "duration", "rating", "listed_in",
}

// Load reads the raw catalog table from path into a record set. CSV and
// XLSX sources are supported, chosen by file extension. The literal token
// "Not Given" is recognized as a null marker in addition to empty cells.
//
// A missing file yields a LOAD error; any other failure to produce the
// expected tabular shape yields a PARSING error. Both abort the run.
func Load(ctx context.Context, path string, logger *slog.Logger) (domain.RecordSet, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "Loading data", slog.String("path", path))

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = loadXLSXRows(path)
	default:
		rows, err = loadCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("input table has no header row", nil)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make(domain.RecordSet, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row, columns))
	}

	logger.InfoContext(ctx, "Data loaded successfully",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

func loadCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewLoadError(fmt.Sprintf("the file %q was not found", path), err)
		}
		return nil, apperrors.NewLoadError(fmt.Sprintf("cannot open %q", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("cannot parse %q as CSV", path), err)
	}
	return rows, nil
}

func loadXLSXRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewLoadError(fmt.Sprintf("the file %q was not found", path), err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("cannot parse %q as XLSX", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := readSheetRows(f, sheet)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("cannot read sheet %q", sheet), err)
	}
	return rows, nil
}

func readSheetRows(f *excelize.File, sheet string) ([][]string, error) {
	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var rows [][]string
	for iter.Next() {
		row, err := iter.Columns()
		if err != nil && err != io.EOF {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, iter.Error()
}

// mapColumns locates each required column in the header row.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, apperrors.NewParsingError(fmt.Sprintf("required column %q is missing", col), nil)
		}
	}
	return columns, nil
}

func recordFromRow(row []string, columns map[string]int) domain.Record {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		value := row[idx]
		if strings.TrimSpace(value) == domain.NullMarker {
			return ""
		}
		return value
	}

	return domain.Record{
		Title:    cell("title"),
		Director: cell("director"),
		Country:  cell("country"),
		DateRaw:  cell("date_added"),
		Type:     domain.ParseContentType(cell("type")),
		Duration: cell("duration"),
		Rating:   cell("rating"),
		ListedIn: cell("listed_in"),
	}
}
