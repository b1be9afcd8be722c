// Package excel reads numeric tables from .xlsx and .csv files. It sits
// behind the TableSource port; the numeric core never touches raw input.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableReader reads a rectangular numeric table from an Excel sheet or a
// CSV file, depending on the extension.
type TableReader struct {
	filePath string
	sheet    string
	fileType string // "xlsx" or "csv"
}

// NewTableReader creates a reader for the given file. For .xlsx files the
// first sheet is used unless overridden with Sheet.
func NewTableReader(filePath string) *TableReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &TableReader{filePath: filePath, fileType: fileType}
}

// Sheet overrides the sheet name for .xlsx files.
func (r *TableReader) Sheet(name string) *TableReader {
	r.sheet = name
	return r
}

// ReadTable reads the table. Non-numeric leading rows (headers) are skipped;
// a non-numeric cell inside the body is a parse error.
func (r *TableReader) ReadTable(ctx context.Context) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", r.filePath)
	}

	var raw [][]string
	var err error
	switch r.fileType {
	case "csv":
		raw, err = r.readCSVRows()
	default:
		raw, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	return parseNumericBody(raw)
}

func (r *TableReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}
	return rows, nil
}

func (r *TableReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// parseNumericBody converts string rows to the numeric table, skipping
// leading header rows whose cells do not all parse.
func parseNumericBody(raw [][]string) ([][]float64, error) {
	var table [][]float64
	inBody := false
	for i, row := range raw {
		if len(row) == 0 {
			continue
		}
		parsed, ok := parseRow(row)
		if !ok {
			if inBody {
				return nil, fmt.Errorf("row %d: non-numeric cell inside table body", i+1)
			}
			continue // header row
		}
		inBody = true
		table = append(table, parsed)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("no numeric rows found")
	}
	return table, nil
}

func parseRow(row []string) ([]float64, bool) {
	parsed := make([]float64, 0, len(row))
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, v)
	}
	if len(parsed) == 0 {
		return nil, false
	}
	return parsed, true
}
