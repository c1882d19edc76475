package paymatrix

import "github.com/shopspring/decimal"

// Entry pays for the 7th Central Pay Commission matrix, direct-recruitment
// levels upward. Levels 17 and 18 are fixed-pay apex posts with a single
// cell; every other level runs 40 annual increment cells at 3% each,
// rounded to the nearest hundred.
var seventhCPC = []struct {
	level string
	start int64
	cells int
}{
	{"10", 56100, 40},
	{"11", 67700, 40},
	{"12", 78800, 40},
	{"13", 123100, 40},
	{"13A", 131100, 40},
	{"14", 144200, 40},
	{"15", 182200, 40},
	{"16", 205400, 40},
	{"17", 225000, 1},
	{"18", 250000, 1},
}

var incrementFactor = decimal.NewFromFloat(1.03)

// Default returns the 7th CPC pay matrix for the officer levels. The table
// is generated from each level's entry pay by compounding the 3% annual
// increment and rounding every cell to the nearest hundred, which matches
// the published matrix.
func Default() *Matrix {
	order := make([]string, 0, len(seventhCPC))
	cells := make(map[string][]decimal.Decimal, len(seventhCPC))
	for _, lvl := range seventhCPC {
		order = append(order, lvl.level)
		row := make([]decimal.Decimal, lvl.cells)
		pay := decimal.NewFromInt(lvl.start)
		for i := 0; i < lvl.cells; i++ {
			row[i] = pay
			pay = RoundToHundred(pay.Mul(incrementFactor))
		}
		cells[lvl.level] = row
	}
	m, err := New(order, cells)
	if err != nil {
		// The embedded table is total; a construction failure is a
		// programming error.
		panic(err)
	}
	return m
}
