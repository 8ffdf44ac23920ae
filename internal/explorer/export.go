// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package explorer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/taibuivan/toondex/internal/character"
)

// Spreadsheet layout of the page export.
const (
	ExportSheetName   = "Disney Films Data"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	nameColumnWidth  = 30
	countColumnWidth = 15
	filmsWidthMin    = 20
	filmsWidthMax    = 100
)

// ExportHeaders are the column titles of the export, in column order.
var ExportHeaders = []string{"Character Name", "Number of Films", "Films"}

// ExportFilename names the export of the given page.
func ExportFilename(page int) string {
	return fmt.Sprintf("disney-films-page-%d.xlsx", page)
}

// filmsColumnWidth fits the longest film list, within [filmsWidthMin, filmsWidthMax].
func filmsColumnWidth(lists []string) float64 {
	width := filmsWidthMin
	for _, films := range lists {
		width = max(width, utf8.RuneCountInString(films))
	}
	return float64(min(width, filmsWidthMax))
}

/*
ExportPage renders the given records as a single-sheet workbook.

Each record becomes one row: its name, its film count, and its film titles
joined with ", ".

Returns:
  - []byte: the xlsx file
  - error: if the workbook cannot be built or serialised
*/
func ExportPage(records []character.Character) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(ExportHeaders))
	for i, title := range ExportHeaders {
		header[i] = title
	}
	if err := file.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	filmLists := make([]string, len(records))
	for i, record := range records {
		filmLists[i] = character.FilmList(record)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []interface{}{record.Name, len(record.Films), filmLists[i]}
		if err := file.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	widths := []struct {
		column string
		width  float64
	}{
		{"A", nameColumnWidth},
		{"B", countColumnWidth},
		{"C", filmsColumnWidth(filmLists)},
	}
	for _, w := range widths {
		if err := file.SetColWidth(ExportSheetName, w.column, w.column, w.width); err != nil {
			return nil, fmt.Errorf("set width of column %s: %w", w.column, err)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
