package calculation

import (
	"fmt"
	"time"

	"github.com/npsups/pension-calculator/internal/domain"
)

// BuildSalarySeries expands the half-year pay progression into a
// month-indexed gross-salary series from the joining month through the
// retirement month. Gross salary is basic pay plus dearness allowance,
// where the allowance is the basic times the period's DA percentage. The
// series has no gaps; every month in the span is present exactly once.
func BuildSalarySeries(progression []domain.PayPoint, rates *RateProvider,
	joining, retirement time.Time) ([]domain.SalaryRecord, error) {

	if len(progression) == 0 {
		return nil, fmt.Errorf("%w: pay progression", ErrMissingParameter)
	}
	if rates == nil {
		return nil, fmt.Errorf("%w: rate provider", ErrMissingParameter)
	}

	basicByPeriod := make(map[domain.Period]domain.PayPoint, len(progression))
	for _, pt := range progression {
		basicByPeriod[pt.Period] = pt
	}

	start := domain.MonthOf(joining)
	end := domain.MonthOf(retirement)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: retirement month %s precedes joining month %s",
			ErrInvalidSchedule, end, start)
	}

	var series []domain.SalaryRecord
	for m := start; !m.After(end); m = m.Next() {
		pt, ok := basicByPeriod[m.Period()]
		if !ok {
			return nil, fmt.Errorf("%w: no pay point for period %s", ErrNotFound, m.Period())
		}
		daRate, err := rates.RateFor(m.Period(), TrackDearness)
		if err != nil {
			return nil, fmt.Errorf("dearness rate for %s: %w", m, err)
		}
		da := pt.BasicPay.Mul(daRate).Div(oneHundred)
		series = append(series, domain.SalaryRecord{
			Month:             m,
			Basic:             pt.BasicPay,
			DearnessAllowance: da,
			Gross:             pt.BasicPay.Add(da),
		})
	}

	return series, nil
}
