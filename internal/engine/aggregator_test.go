package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// Fixture:
// Row 0: India, 2020, produces Iron 100, imports Iron 20, GDP Growth 6.5
// Row 1: China, 2020, produces Iron 200, no imports
// Row 2: Chile, 2020, imports Copper 80, GDP Growth 2.1
// Row 3: Nauru, 2020, no quantities at all
// Row 4: India, 2021, produces Coal 500
func testEngine() *Engine {
	records := []models.Record{
		{Country: "India", Year: 2020, ProductionMineral: "Iron", ProductionQty: 100, ImportMineralName: "Iron", ImportQty: 20,
			Indicators: map[string]float64{"GDP Growth": 6.5}},
		{Country: "China", Year: 2020, ProductionMineral: "Iron", ProductionQty: 200},
		{Country: "Chile", Year: 2020, ImportMineralName: "Copper", ImportQty: 80,
			Indicators: map[string]float64{"GDP Growth": 2.1}},
		{Country: "Nauru", Year: 2020, ProductionMineral: "Iron"},
		{Country: "India", Year: 2021, ProductionMineral: "Coal", ProductionQty: 500},
	}
	return New(NewStore(records), "tonnes")
}

func TestCombinedView(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(2020, "Iron", models.DataTypeCombined))
	if err != nil {
		t.Fatal(err)
	}

	// Entries are country-sorted: China 200, India 120. Chile only has
	// Copper rows; Nauru has no positive quantity at all.
	want := []models.Entry{
		{Country: "China", Value: 200},
		{Country: "India", Value: 120},
	}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", res.Entries, want)
	}

	// Auxiliary carries both sides, zero-filled
	if aux := res.Auxiliary["India"]; aux != (models.Breakdown{Production: 100, Import: 20}) {
		t.Errorf("India auxiliary = %+v", aux)
	}
	if aux := res.Auxiliary["China"]; aux != (models.Breakdown{Production: 200, Import: 0}) {
		t.Errorf("China auxiliary = %+v", aux)
	}

	if res.ColorbarTitle != "Quantity (tonnes)" {
		t.Errorf("ColorbarTitle = %q", res.ColorbarTitle)
	}
	if !strings.Contains(res.HoverTemplate, "%{customdata[0]:,.0f}") {
		t.Errorf("combined hover template missing customdata: %q", res.HoverTemplate)
	}
}

func TestImportView(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(2020, "Iron", models.DataTypeImport))
	if err != nil {
		t.Fatal(err)
	}

	// Only India imports Iron; China's import side is 0 and is filtered out
	want := []models.Entry{{Country: "India", Value: 20}}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", res.Entries, want)
	}
	if res.Auxiliary != nil {
		t.Errorf("Import view should carry no auxiliary, got %+v", res.Auxiliary)
	}
}

func TestProductionView(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(2020, "Iron", models.DataTypeProduction))
	if err != nil {
		t.Fatal(err)
	}

	want := []models.Entry{
		{Country: "China", Value: 200},
		{Country: "India", Value: 100},
	}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", res.Entries, want)
	}
	if !strings.Contains(res.HoverTemplate, "%{z:,.0f}") {
		t.Errorf("quantity hover should use whole numbers: %q", res.HoverTemplate)
	}
}

func TestAllMineralsSumsEverything(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(2020, models.MineralAll, models.DataTypeProduction))
	if err != nil {
		t.Fatal(err)
	}

	// Sum over the result must equal the sum of every production qty in 2020
	var got float64
	for _, e := range res.Entries {
		got += e.Value
	}
	if got != 300 {
		t.Errorf("ALL production sum = %v, want 300", got)
	}

	res, err = eng.View(models.MineralView(2020, models.MineralAll, models.DataTypeImport))
	if err != nil {
		t.Fatal(err)
	}
	got = 0
	for _, e := range res.Entries {
		got += e.Value
	}
	if got != 100 {
		t.Errorf("ALL import sum = %v, want 100", got)
	}
}

func TestOuterJoinZeroFill(t *testing.T) {
	eng := testEngine()

	// Chile exists only on the import side for ALL minerals
	res, err := eng.View(models.MineralView(2020, models.MineralAll, models.DataTypeCombined))
	if err != nil {
		t.Fatal(err)
	}

	aux, ok := res.Auxiliary["Chile"]
	if !ok {
		t.Fatal("Chile missing from combined result")
	}
	if aux.Production != 0 || aux.Import != 80 {
		t.Errorf("Chile auxiliary = %+v, want production 0 / import 80", aux)
	}
}

func TestPositivityFilter(t *testing.T) {
	eng := testEngine()

	// Nauru has rows but production = import = 0 everywhere
	for _, dt := range []models.DataType{models.DataTypeProduction, models.DataTypeImport, models.DataTypeCombined} {
		res, err := eng.View(models.MineralView(2020, models.MineralAll, dt))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range res.Entries {
			if e.Country == "Nauru" {
				t.Errorf("%s view includes zero-quantity country", dt)
			}
		}
	}
}

func TestIndicatorView(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.IndicatorView(2020, "GDP Growth"))
	if err != nil {
		t.Fatal(err)
	}

	// Row order of the year slice, rows without the indicator dropped
	want := []models.Entry{
		{Country: "India", Value: 6.5},
		{Country: "Chile", Value: 2.1},
	}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", res.Entries, want)
	}

	if res.ColorbarTitle != "GDP Growth" {
		t.Errorf("ColorbarTitle = %q", res.ColorbarTitle)
	}
	if !strings.Contains(res.HoverTemplate, "GDP Growth: %{z:,.2f}") {
		t.Errorf("indicator hover should use two decimals: %q", res.HoverTemplate)
	}
	if res.Auxiliary != nil {
		t.Errorf("indicator view should carry no auxiliary")
	}
}

func TestUnknownIndicator(t *testing.T) {
	eng := testEngine()

	_, err := eng.View(models.IndicatorView(2020, "Obviously Fake"))
	if !errors.Is(err, ErrUnknownIndicator) {
		t.Fatalf("expected ErrUnknownIndicator, got %v", err)
	}
}

func TestAbsentYearIsEmptyNotError(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(1999, models.MineralAll, models.DataTypeCombined))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Entries) != 0 {
		t.Errorf("expected empty entries for absent year, got %+v", res.Entries)
	}

	res, err = eng.View(models.IndicatorView(1999, "GDP Growth"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Entries) != 0 {
		t.Errorf("expected empty indicator entries for absent year, got %+v", res.Entries)
	}
}

func TestMineralWithNoMatches(t *testing.T) {
	eng := testEngine()

	res, err := eng.View(models.MineralView(2020, "Unobtanium", models.DataTypeCombined))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Entries) != 0 {
		t.Errorf("expected empty entries, got %+v", res.Entries)
	}
}
