package calculation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
)

// CashFlow is one dated amount in an irregular cash-flow stream. Outflows
// are negative, inflows positive.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

const (
	xirrMaxIterations = 100
	xirrTolerance     = 1e-8
	xirrRateFloor     = -0.9999
	xirrRateCeiling   = 10.0
)

// XIRR solves for the annualized rate that zeroes the present value of an
// irregular cash-flow stream. Newton's method runs first; when it diverges
// or walks out of the valid rate domain, bisection takes over. Either way
// the iteration budget is capped, failing with ErrNoConvergence rather than
// looping.
func XIRR(flows []CashFlow) (decimal.Decimal, error) {
	if len(flows) < 2 {
		return decimal.Zero, fmt.Errorf("%w: need at least two cash flows", ErrMissingParameter)
	}
	var hasOut, hasIn bool
	for _, f := range flows {
		if f.Amount < 0 {
			hasOut = true
		}
		if f.Amount > 0 {
			hasIn = true
		}
	}
	if !hasOut || !hasIn {
		return decimal.Zero, fmt.Errorf("%w: cash flows need both an outflow and an inflow", ErrMissingParameter)
	}

	sorted := make([]CashFlow, len(flows))
	copy(sorted, flows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	t0 := sorted[0].Date
	years := make([]float64, len(sorted))
	amounts := make([]float64, len(sorted))
	for i, f := range sorted {
		years[i] = f.Date.Sub(t0).Hours() / 24 / 365
		amounts[i] = f.Amount
	}

	if rate, ok := xirrNewton(years, amounts); ok {
		return decimal.NewFromFloat(rate), nil
	}
	if rate, ok := xirrBisect(years, amounts); ok {
		return decimal.NewFromFloat(rate), nil
	}
	return decimal.Zero, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, xirrMaxIterations)
}

func xirrValue(rate float64, years, amounts []float64) (value, derivative float64) {
	for i := range amounts {
		pow := math.Pow(1+rate, years[i])
		value += amounts[i] / pow
		derivative -= years[i] * amounts[i] / (pow * (1 + rate))
	}
	return value, derivative
}

func xirrNewton(years, amounts []float64) (float64, bool) {
	rate := 0.1
	for i := 0; i < xirrMaxIterations; i++ {
		value, derivative := xirrValue(rate, years, amounts)
		if math.Abs(value) < xirrTolerance {
			return rate, true
		}
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, false
		}
		next := rate - value/derivative
		if next <= xirrRateFloor || next > xirrRateCeiling || math.IsNaN(next) {
			return 0, false
		}
		if math.Abs(next-rate) < xirrTolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func xirrBisect(years, amounts []float64) (float64, bool) {
	lo, hi := xirrRateFloor, xirrRateCeiling
	fLo, _ := xirrValue(lo, years, amounts)
	fHi, _ := xirrValue(hi, years, amounts)
	if fLo*fHi > 0 {
		return 0, false
	}
	for i := 0; i < xirrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid, _ := xirrValue(mid, years, amounts)
		if math.Abs(fMid) < xirrTolerance || (hi-lo)/2 < xirrTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, false
}

// ContributionXIRR computes the money-weighted annual return of the corpus:
// every posted contribution is an outflow on the first of its month, and
// the final corpus is a single inflow one month after the last posting.
func ContributionXIRR(contributions []domain.ContributionRecord, finalCorpus decimal.Decimal) (decimal.Decimal, error) {
	if len(contributions) == 0 {
		return decimal.Zero, fmt.Errorf("%w: contribution history", ErrMissingParameter)
	}

	flows := make([]CashFlow, 0, len(contributions)+1)
	for _, c := range contributions {
		amount, _ := c.Amount.Float64()
		flows = append(flows, CashFlow{Date: c.Month.Date(), Amount: -amount})
	}
	corpus, _ := finalCorpus.Float64()
	last := contributions[len(contributions)-1].Month
	flows = append(flows, CashFlow{Date: last.Next().Date(), Amount: corpus})

	return XIRR(flows)
}
