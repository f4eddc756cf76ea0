package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// ErrUnknownIndicator means a request named an indicator that is not in the
// catalog. The UI builds its selector from the same catalog, so hitting this
// is a caller bug (stale request), not a data condition.
var ErrUnknownIndicator = errors.New("unknown indicator")

// Engine binds the immutable store and catalog and evaluates view requests
// against them. Safe for concurrent reads.
type Engine struct {
	store   *Store
	catalog models.Catalog
	unit    string

	indicatorSet map[string]struct{}
}

// New builds an Engine over a loaded store. unit is the quantity unit shown
// in hover text and the colorbar title, e.g. "tonnes".
func New(store *Store, unit string) *Engine {
	cat := BuildCatalog(store.Records())
	set := make(map[string]struct{}, len(cat.Indicators))
	for _, name := range cat.Indicators {
		set[name] = struct{}{}
	}
	return &Engine{store: store, catalog: cat, unit: unit, indicatorSet: set}
}

// Catalog returns the derived selection catalog.
func (e *Engine) Catalog() models.Catalog {
	return e.catalog
}

// Years returns the sorted distinct years in the data.
func (e *Engine) Years() []int {
	return e.store.Years()
}

// View evaluates one request. The indicator branch never consults mineral or
// data type; the mineral branch never consults the indicator. A year with no
// rows produces an empty result, not an error.
func (e *Engine) View(req models.ViewRequest) (models.ViewResult, error) {
	rows := e.store.FilterByYear(req.Year)

	switch req.Kind {
	case models.KindIndicator:
		return e.extractIndicator(rows, req.Indicator)
	case models.KindMineral:
		return e.aggregateMinerals(rows, req.Mineral, req.DataType)
	default:
		return models.ViewResult{}, fmt.Errorf("unknown view kind %d", req.Kind)
	}
}

// extractIndicator selects (country, indicator) from the year's rows,
// dropping rows where either is missing and preserving row order.
func (e *Engine) extractIndicator(rows []models.Record, name string) (models.ViewResult, error) {
	if _, ok := e.indicatorSet[name]; !ok {
		return models.ViewResult{}, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}

	entries := make([]models.Entry, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Indicators[name]
		if !ok || r.Country == "" {
			continue
		}
		entries = append(entries, models.Entry{Country: r.Country, Value: v})
	}

	return models.ViewResult{
		Entries:       entries,
		HoverTemplate: fmt.Sprintf("<b>%%{location}</b><br>%s: %%{z:,.2f}<extra></extra>", name),
		ColorbarTitle: name,
	}, nil
}

// aggregateMinerals sums production and import quantities per country for
// the mineral scope, outer-joins the two sides with zero-fill, then projects
// the requested data type.
func (e *Engine) aggregateMinerals(rows []models.Record, mineral string, dataType models.DataType) (models.ViewResult, error) {
	// A. Two independently filtered sides. A country can qualify on one
	// side only; the join below fills the other with 0.
	prod := make(map[string]float64)
	imp := make(map[string]float64)
	for _, r := range rows {
		if r.Country == "" {
			continue
		}
		if mineral == models.MineralAll || r.ProductionMineral == mineral {
			prod[r.Country] += r.ProductionQty
		}
		if mineral == models.MineralAll || r.ImportMineralName == mineral {
			imp[r.Country] += r.ImportQty
		}
	}

	// B. Outer join on the country union, sorted for stable output
	countries := make([]string, 0, len(prod)+len(imp))
	seen := make(map[string]struct{}, len(prod)+len(imp))
	for c := range prod {
		countries = append(countries, c)
		seen[c] = struct{}{}
	}
	for c := range imp {
		if _, ok := seen[c]; !ok {
			countries = append(countries, c)
		}
	}
	sort.Strings(countries)

	// C. Project the data type with the positivity filter
	res := models.ViewResult{
		Entries:       make([]models.Entry, 0, len(countries)),
		ColorbarTitle: fmt.Sprintf("Quantity (%s)", e.unit),
	}

	switch dataType {
	case models.DataTypeProduction:
		for _, c := range countries {
			if p := prod[c]; p > 0 {
				res.Entries = append(res.Entries, models.Entry{Country: c, Value: p})
			}
		}
		res.HoverTemplate = fmt.Sprintf("<b>%%{location}</b><br>Production: %%{z:,.0f} (%s)<extra></extra>", e.unit)

	case models.DataTypeImport:
		for _, c := range countries {
			if m := imp[c]; m > 0 {
				res.Entries = append(res.Entries, models.Entry{Country: c, Value: m})
			}
		}
		res.HoverTemplate = fmt.Sprintf("<b>%%{location}</b><br>Import: %%{z:,.0f} (%s)<extra></extra>", e.unit)

	case models.DataTypeCombined:
		res.Auxiliary = make(map[string]models.Breakdown)
		for _, c := range countries {
			p, m := prod[c], imp[c]
			if p > 0 || m > 0 {
				res.Entries = append(res.Entries, models.Entry{Country: c, Value: p + m})
				res.Auxiliary[c] = models.Breakdown{Production: p, Import: m}
			}
		}
		res.HoverTemplate = "<b>%{location}</b><br>Production: %{customdata[0]:,.0f}<br>Import: %{customdata[1]:,.0f}<extra></extra>"

	default:
		return models.ViewResult{}, fmt.Errorf("unknown data type %q", dataType)
	}

	return res, nil
}
