package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
	"github.com/npsups/pension-calculator/pkg/dateutil"
)

// CorpusConfig parameterizes the contribution and corpus accumulation.
type CorpusConfig struct {
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal

	Strategy  domain.AllocationStrategy
	BirthDate time.Time

	// Seed is an existing corpus balance carried into the simulation, with
	// SeedAsOf the date it was valued. Contribution months at or before
	// the as-of date are assumed already reflected in the seed.
	Seed     decimal.Decimal
	SeedAsOf *time.Time

	Logger Logger
}

// Accumulate posts monthly contributions from the salary series and
// compounds the corpus year by year. Contributions for a calendar year are
// summed, then at year-end the opening balance plus the year's inflow is
// split across the asset classes per the glide path at the employee's age
// that year, and each slice grows at its class's annual rate. The closing
// value is rounded to the whole rupee once per year, so rounding error
// never accumulates within a year.
func Accumulate(salaries []domain.SalaryRecord, rates *RateProvider, cfg CorpusConfig) ([]domain.CorpusYear, []domain.ContributionRecord, error) {
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	if len(salaries) == 0 {
		return nil, nil, fmt.Errorf("%w: salary series", ErrMissingParameter)
	}
	if rates == nil {
		return nil, nil, fmt.Errorf("%w: rate provider", ErrMissingParameter)
	}
	totalRate := cfg.EmployeeRate.Add(cfg.EmployerRate)
	if totalRate.IsNegative() {
		return nil, nil, fmt.Errorf("%w: negative contribution rate %s", ErrMissingParameter, totalRate)
	}

	var seedCutoff *domain.Month
	if cfg.SeedAsOf != nil {
		m := domain.MonthOf(*cfg.SeedAsOf)
		seedCutoff = &m
	}

	contributions := make([]domain.ContributionRecord, 0, len(salaries))
	byYear := make(map[int]decimal.Decimal)
	firstYear := salaries[0].Month.Year
	lastYear := salaries[len(salaries)-1].Month.Year

	for _, rec := range salaries {
		if seedCutoff != nil && !rec.Month.After(*seedCutoff) {
			continue
		}
		amount := rec.Gross.Mul(totalRate).Div(oneHundred)
		contributions = append(contributions, domain.ContributionRecord{
			Month:  rec.Month,
			Amount: amount,
		})
		byYear[rec.Month.Year] = byYear[rec.Month.Year].Add(amount)
	}

	// The seed is the opening balance of its as-of year, not of the first
	// salary year; years before it hold only their own contributions.
	seedYear := firstYear
	if seedCutoff != nil {
		switch {
		case seedCutoff.Year > lastYear:
			seedYear = lastYear
		case seedCutoff.Year > firstYear:
			seedYear = seedCutoff.Year
		}
	}

	years := make([]domain.CorpusYear, 0, lastYear-firstYear+1)
	balance := decimal.Zero
	for year := firstYear; year <= lastYear; year++ {
		if year == seedYear {
			balance = balance.Add(cfg.Seed)
		}
		age := dateutil.Age(cfg.BirthDate, time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC))
		weights, err := Weights(cfg.Strategy, age)
		if err != nil {
			return nil, nil, err
		}

		pool := balance.Add(byYear[year])
		equity, err := growSlice(pool, weights.Equity, rates, year, TrackEquity)
		if err != nil {
			return nil, nil, err
		}
		corporate, err := growSlice(pool, weights.Corporate, rates, year, TrackCorporate)
		if err != nil {
			return nil, nil, err
		}
		government, err := growSlice(pool, weights.Government, rates, year, TrackGovernment)
		if err != nil {
			return nil, nil, err
		}

		balance = equity.Add(corporate).Add(government).Round(0)
		years = append(years, domain.CorpusYear{
			Year:          year,
			Contributions: byYear[year],
			Equity:        equity,
			Corporate:     corporate,
			Government:    government,
			Closing:       balance,
		})
		cfg.Logger.Debugf("year %d: age %d, contributions %s, closing %s",
			year, age, byYear[year], balance)
	}

	return years, contributions, nil
}

// growSlice allocates the weighted share of the pool to one asset class and
// compounds it at that class's annual rate for the year.
func growSlice(pool, weight decimal.Decimal, rates *RateProvider, year int, track Track) (decimal.Decimal, error) {
	annual, err := rates.AnnualReturn(year, track)
	if err != nil {
		return decimal.Zero, fmt.Errorf("annual %s return for %d: %w", track, year, err)
	}
	slice := pool.Mul(weight).Div(oneHundred)
	return slice.Mul(decimal.NewFromInt(1).Add(annual)), nil
}

// FinalCorpus returns the closing balance of the last accumulated year
func FinalCorpus(years []domain.CorpusYear) decimal.Decimal {
	if len(years) == 0 {
		return decimal.Zero
	}
	return years[len(years)-1].Closing
}
