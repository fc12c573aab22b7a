// =============================================================================
// XML to RPG Cards Converter - Spreadsheet Filter Lists
// =============================================================================
//
// Filter lists kept in a spreadsheet are read from the first sheet of the
// workbook. Each row is joined with single spaces and parsed like a text
// line, so both layouts below work:
//
//   | A                      | B                 |
//   |------------------------|-------------------|
//   | 3 Potion of Healing    |                   |
//   | 3                      | Potion of Healing |
//
// =============================================================================

package filterlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxExt selects the workbook reader.
const xlsxExt = ".xlsx"

// ErrEmptySheet is returned for a workbook without any sheet.
var ErrEmptySheet = errors.New("workbook has no sheets")

// LoadWorkbook reads a filter list from the first sheet of an .xlsx file.
//
// PARAMETERS:
//   - path: The workbook path.
//
// RETURNS:
//   - The entries in row order. Entry.Line is the spreadsheet row number.
//   - An error if the workbook cannot be opened or read.
func LoadWorkbook(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open filter workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}

	var entries []Entry
	for i, row := range rows {
		if entry, ok := ParseLine(joinRow(row), i+1); ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// joinRow joins the non-empty cells of a row with single spaces.
func joinRow(row []string) string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return strings.Join(cells, " ")
}
