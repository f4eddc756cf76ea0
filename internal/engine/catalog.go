package engine

import (
	"sort"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// BuildCatalog derives the selectable minerals, indicators and years from
// the cleaned records. Minerals are the union of the distinct production and
// import mineral names (empty cells excluded). Indicator names are whatever
// numeric columns the loader admitted. Everything comes back sorted so the
// catalog is deterministic for identical input.
func BuildCatalog(records []models.Record) models.Catalog {
	minerals := make(map[string]struct{})
	indicators := make(map[string]struct{})
	years := make(map[int]struct{})

	for _, r := range records {
		if r.ProductionMineral != "" {
			minerals[r.ProductionMineral] = struct{}{}
		}
		if r.ImportMineralName != "" {
			minerals[r.ImportMineralName] = struct{}{}
		}
		for name := range r.Indicators {
			indicators[name] = struct{}{}
		}
		years[r.Year] = struct{}{}
	}

	cat := models.Catalog{
		Minerals:   make([]string, 0, len(minerals)),
		Indicators: make([]string, 0, len(indicators)),
		Years:      make([]int, 0, len(years)),
	}
	for m := range minerals {
		cat.Minerals = append(cat.Minerals, m)
	}
	for i := range indicators {
		cat.Indicators = append(cat.Indicators, i)
	}
	for y := range years {
		cat.Years = append(cat.Years, y)
	}
	sort.Strings(cat.Minerals)
	sort.Strings(cat.Indicators)
	sort.Ints(cat.Years)
	return cat
}
