package engine

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// Structural column headers as they appear in the input file. Every other
// column is an indicator candidate.
const (
	colCountry       = "Country"
	colYear          = "Year"
	colProdMineral   = "Production Mineral"
	colProdQty       = "Production Qty"
	colImportMineral = "Import Mineral Name"
	colImportQty     = "Import Qty"
)

// Load reads the flat mineral table at path into a Store. The extension
// picks the decoder: .xlsx goes through excelize, anything else is parsed as
// delimited text. sheet names the worksheet for xlsx input (empty = first
// sheet) and is ignored for CSV.
//
// Cleaning happens here, not at query time: rows whose Year cell is not an
// integer are dropped, quantity cells that fail to parse become 0, and any
// candidate indicator column containing a non-numeric cell is disqualified
// for the whole table.
func Load(path, sheet string) (*Store, error) {
	start := time.Now()

	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path, sheet)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	store, err := decodeRows(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	slog.Info("mineral table loaded",
		"path", path,
		"rows", store.Len(),
		"elapsed", time.Since(start))
	return store, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are padded during decode
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func decodeRows(rows [][]string) (*Store, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	// 1. Map the header
	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}
	structural := []string{colCountry, colYear, colProdMineral, colProdQty, colImportMineral, colImportQty}
	var missing []string
	for _, c := range structural {
		if _, ok := colIdx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	// Indicator candidates: every non-structural column
	isStructural := make(map[string]bool, len(structural))
	for _, c := range structural {
		isStructural[c] = true
	}
	type candidate struct {
		name string
		idx  int
	}
	var candidates []candidate
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name != "" && !isStructural[name] {
			candidates = append(candidates, candidate{name, i})
		}
	}

	// 2. Decode rows
	records := make([]models.Record, 0, len(rows)-1)
	disqualified := make(map[string]bool)
	droppedYears := 0

	for _, row := range rows[1:] {
		cell := func(name string) string {
			i := colIdx[name]
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		year, ok := parseYear(cell(colYear))
		if !ok {
			droppedYears++
			continue
		}

		rec := models.Record{
			Country:           cell(colCountry),
			Year:              year,
			ProductionMineral: cell(colProdMineral),
			ProductionQty:     parseQty(cell(colProdQty)),
			ImportMineralName: cell(colImportMineral),
			ImportQty:         parseQty(cell(colImportQty)),
		}

		for _, c := range candidates {
			var s string
			if c.idx < len(row) {
				s = strings.TrimSpace(row[c.idx])
			}
			if s == "" {
				continue // missing cell, stays missing
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				// One bad cell makes the whole column non-numeric
				disqualified[c.name] = true
				continue
			}
			if rec.Indicators == nil {
				rec.Indicators = make(map[string]float64)
			}
			rec.Indicators[c.name] = v
		}

		records = append(records, rec)
	}

	// 3. Strip disqualified columns from every record
	if len(disqualified) > 0 {
		names := make([]string, 0, len(disqualified))
		for n := range disqualified {
			names = append(names, n)
		}
		slog.Debug("non-numeric columns excluded from indicators", "columns", names)
		for i := range records {
			for n := range disqualified {
				delete(records[i].Indicators, n)
			}
		}
	}
	if droppedYears > 0 {
		slog.Debug("rows dropped for unparseable year", "count", droppedYears)
	}

	return NewStore(records), nil
}

// parseYear accepts integer years, tolerating a float rendering like
// "2020.0" (truncated, the source data occasionally carries those).
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseQty zero-fills: empty or unparseable quantity cells count as 0 so a
// sparse table still yields a complete map.
func parseQty(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
