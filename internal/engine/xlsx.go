package engine

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX pulls one worksheet out of an xlsx workbook as raw string rows,
// feeding the same decoder as the CSV path. An empty sheet name selects the
// first sheet.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return rows, nil
}
