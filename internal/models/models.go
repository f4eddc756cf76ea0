package models

// DataType selects which side of trade a mineral view reports.
type DataType string

const (
	DataTypeProduction DataType = "Production"
	DataTypeImport     DataType = "Import"
	DataTypeCombined   DataType = "Combined"
)

// MineralAll is the sentinel mineral meaning "aggregate every mineral".
const MineralAll = "ALL"

// Record is one cleaned row of the flat mineral table.
// Missing quantities are stored as 0 (zero-fill policy); missing indicator
// cells are simply absent from Indicators.
type Record struct {
	Country           string  `json:"country"`
	Year              int     `json:"year"`
	ProductionMineral string  `json:"production_mineral,omitempty"`
	ProductionQty     float64 `json:"production_qty"`
	ImportMineralName string  `json:"import_mineral_name,omitempty"`
	ImportQty         float64 `json:"import_qty"`

	// Indicators holds the numeric indicator cells present on this row,
	// keyed by column name.
	Indicators map[string]float64 `json:"indicators,omitempty"`
}

// Catalog lists everything selectable in the UI. Built once at load time,
// immutable afterwards. All slices are sorted for deterministic dropdowns.
type Catalog struct {
	Minerals   []string `json:"minerals"`
	Indicators []string `json:"indicators"`
	Years      []int    `json:"years"`
}

// ViewKind tags a ViewRequest. The indicator view takes strict precedence
// over the mineral view; making the choice a tag (rather than "indicator
// field non-empty") keeps resolution a two-branch switch.
type ViewKind int

const (
	KindMineral ViewKind = iota
	KindIndicator
)

// ViewRequest is one map evaluation. Build it with MineralView or
// IndicatorView; only the fields of the tagged kind are consulted.
type ViewRequest struct {
	Kind ViewKind `json:"kind"`
	Year int      `json:"year"`

	// KindIndicator
	Indicator string `json:"indicator,omitempty"`

	// KindMineral
	Mineral  string   `json:"mineral,omitempty"`
	DataType DataType `json:"data_type,omitempty"`
}

// IndicatorView requests a single economic indicator column for a year.
func IndicatorView(year int, indicator string) ViewRequest {
	return ViewRequest{Kind: KindIndicator, Year: year, Indicator: indicator}
}

// MineralView requests summed production/import quantities for a year.
// mineral may be MineralAll.
func MineralView(year int, mineral string, dataType DataType) ViewRequest {
	return ViewRequest{Kind: KindMineral, Year: year, Mineral: mineral, DataType: dataType}
}

// Entry is one (country, value) pair of a map layer.
type Entry struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Breakdown carries the per-side components behind a combined value.
type Breakdown struct {
	Production float64 `json:"production"`
	Import     float64 `json:"import"`
}

// ViewResult is the render-ready output of one pipeline evaluation.
// Entries may be empty (no data for the selection); the renderer draws an
// empty layer in that case.
type ViewResult struct {
	Entries []Entry `json:"entries"`

	// Auxiliary is populated only for combined mineral views, keyed by
	// country, and feeds the two-line hover text.
	Auxiliary map[string]Breakdown `json:"auxiliary,omitempty"`

	HoverTemplate string `json:"hover_template"`
	ColorbarTitle string `json:"colorbar_title"`
}
