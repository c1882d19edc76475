// Package paymatrix models the central pay matrix: a table of basic-pay
// cells indexed by level and year-in-level, with the fitment and promotion
// lookups the career progression needs.
package paymatrix

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownLevel is returned when a lookup names a level the matrix does
// not carry.
var ErrUnknownLevel = errors.New("unknown pay level")

var hundred = decimal.NewFromInt(100)

// Matrix is an ordered set of pay levels. Level order is promotion order;
// cells within a level are the annual increment steps.
type Matrix struct {
	order []string
	cells map[string][]decimal.Decimal
}

// New builds a matrix from levels in promotion order. Each level must carry
// at least one cell.
func New(order []string, cells map[string][]decimal.Decimal) (*Matrix, error) {
	if len(order) == 0 {
		return nil, errors.New("pay matrix has no levels")
	}
	for _, lvl := range order {
		if len(cells[lvl]) == 0 {
			return nil, fmt.Errorf("level %s has no pay cells", lvl)
		}
	}
	return &Matrix{order: order, cells: cells}, nil
}

// Levels returns the level names in promotion order
func (m *Matrix) Levels() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HasLevel reports whether the matrix carries the named level
func (m *Matrix) HasLevel(level string) bool {
	_, ok := m.cells[level]
	return ok
}

// Cells returns the number of increment cells in a level
func (m *Matrix) Cells(level string) (int, error) {
	cells, ok := m.cells[level]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	return len(cells), nil
}

// BasicPay returns the pay cell for a level and year-in-level. YearInLevel
// is one-based; years beyond the last cell clamp to it, since pay stagnates
// at the top of a level rather than erroring.
func (m *Matrix) BasicPay(level string, yearInLevel int) (decimal.Decimal, error) {
	cells, ok := m.cells[level]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	if yearInLevel < 1 {
		return decimal.Zero, fmt.Errorf("year in level must be positive, got %d", yearInLevel)
	}
	idx := yearInLevel - 1
	if idx >= len(cells) {
		idx = len(cells) - 1
	}
	return cells[idx], nil
}

// CellAtOrAbove returns the first cell in a level whose pay is at least the
// given amount, as a one-based year-in-level with its pay. When every cell
// is below the amount the top cell is returned; promotion pay protection
// never places an employee off the matrix.
func (m *Matrix) CellAtOrAbove(level string, pay decimal.Decimal) (int, decimal.Decimal, error) {
	cells, ok := m.cells[level]
	if !ok {
		return 0, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	for i, cell := range cells {
		if cell.GreaterThanOrEqual(pay) {
			return i + 1, cell, nil
		}
	}
	last := len(cells) - 1
	return last + 1, cells[last], nil
}

// LevelAfter returns the level following the given one in promotion order,
// skipping any levels in the skip set. Returns ErrUnknownLevel when the
// employee is already at the top or the level is not in the matrix.
func (m *Matrix) LevelAfter(level string, skip map[string]bool) (string, error) {
	idx := -1
	for i, lvl := range m.order {
		if lvl == level {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}
	for i := idx + 1; i < len(m.order); i++ {
		if !skip[m.order[i]] {
			return m.order[i], nil
		}
	}
	return "", fmt.Errorf("%w: no level above %s", ErrUnknownLevel, level)
}

// ApplyFitment returns a new matrix with every cell multiplied by the
// fitment factor and rounded to the nearest hundred rupees, the way a pay
// commission rebases the table.
func (m *Matrix) ApplyFitment(factor decimal.Decimal) *Matrix {
	cells := make(map[string][]decimal.Decimal, len(m.cells))
	for lvl, row := range m.cells {
		next := make([]decimal.Decimal, len(row))
		for i, cell := range row {
			next[i] = RoundToHundred(cell.Mul(factor))
		}
		cells[lvl] = next
	}
	order := make([]string, len(m.order))
	copy(order, m.order)
	return &Matrix{order: order, cells: cells}
}

// RoundToHundred rounds a pay amount to the nearest hundred rupees
func RoundToHundred(d decimal.Decimal) decimal.Decimal {
	return d.Div(hundred).Round(0).Mul(hundred)
}
