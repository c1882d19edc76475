package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
)

// AllocationWeights is the split of the corpus across asset classes for one
// age, in percent. The three components always sum to 100.
type AllocationWeights struct {
	Equity     decimal.Decimal
	Corporate  decimal.Decimal
	Government decimal.Decimal
}

// Weights returns the glide-path allocation for a strategy at an age.
// Each lifecycle curve holds a young-age plateau, shifts linearly through a
// transition window, and settles on an old-age plateau.
func Weights(strategy domain.AllocationStrategy, age int) (AllocationWeights, error) {
	switch strategy {
	case domain.AllocationStandard:
		// Fixed benchmark split, independent of age.
		return weightsFromInts(15, 35, 50), nil

	case domain.AllocationLC25:
		// 25/45/30 to age 35, then E -1, C -2, G +3 per year to 5/5/90 at 55.
		switch {
		case age <= 35:
			return weightsFromInts(25, 45, 30), nil
		case age >= 55:
			return weightsFromInts(5, 5, 90), nil
		default:
			n := int64(age - 35)
			return weightsFromInts(25-n, 45-2*n, 30+3*n), nil
		}

	case domain.AllocationLC50:
		// 50/30/20 to age 35, then E -2, C -1, G +3 per year to 10/10/80 at 55.
		switch {
		case age <= 35:
			return weightsFromInts(50, 30, 20), nil
		case age >= 55:
			return weightsFromInts(10, 10, 80), nil
		default:
			n := int64(age - 35)
			return weightsFromInts(50-2*n, 30-n, 20+3*n), nil
		}

	case domain.AllocationLC75:
		// 75/10/15 to age 35, settling on 15/10/75 at 55. Equity falls 3 per
		// year throughout; corporate rises 1 per year for ten years, holds
		// for five, then falls 2 per year; government takes the remainder.
		switch {
		case age <= 35:
			return weightsFromInts(75, 10, 15), nil
		case age >= 55:
			return weightsFromInts(15, 10, 75), nil
		default:
			n := int64(age - 35)
			var c int64
			switch {
			case n <= 10:
				c = 10 + n
			case n <= 15:
				c = 20
			default:
				c = 20 - 2*(n-15)
			}
			e := 75 - 3*n
			return weightsFromInts(e, c, 100-e-c), nil
		}

	case domain.AllocationActive:
		// 75/25/0 to age 50, then equity yields 2.5 per year to government,
		// reaching 50/25/25 at 60 and holding there.
		switch {
		case age <= 50:
			return weightsFromInts(75, 25, 0), nil
		case age >= 60:
			return weightsFromInts(50, 25, 25), nil
		default:
			shift := decimal.NewFromFloat(2.5).Mul(decimal.NewFromInt(int64(age - 50)))
			return AllocationWeights{
				Equity:     decimal.NewFromInt(75).Sub(shift),
				Corporate:  decimal.NewFromInt(25),
				Government: shift,
			}, nil
		}

	default:
		return AllocationWeights{}, fmt.Errorf("%w: allocation strategy %q", ErrNotFound, strategy)
	}
}

func weightsFromInts(e, c, g int64) AllocationWeights {
	return AllocationWeights{
		Equity:     decimal.NewFromInt(e),
		Corporate:  decimal.NewFromInt(c),
		Government: decimal.NewFromInt(g),
	}
}

// Sum returns the total of the three weights, normally exactly 100
func (w AllocationWeights) Sum() decimal.Decimal {
	return w.Equity.Add(w.Corporate).Add(w.Government)
}
