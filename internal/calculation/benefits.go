package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
	"github.com/npsups/pension-calculator/pkg/dateutil"
)

// fullServiceMonths is the qualifying service for an unreduced guaranteed
// pension: 25 years.
const fullServiceMonths = 300

// gratuityCap is the statutory ceiling on the service gratuity lumpsum.
var gratuityCap = decimal.NewFromInt(2500000)

var twelve = decimal.NewFromInt(12)

// PensionBase returns the average gross salary of the last twelve months of
// the series, rounded to the whole rupee. Fails with ErrInsufficientHistory
// when fewer than twelve months exist.
func PensionBase(salaries []domain.SalaryRecord) (decimal.Decimal, error) {
	if len(salaries) < 12 {
		return decimal.Zero, fmt.Errorf("%w: need 12 months, have %d", ErrInsufficientHistory, len(salaries))
	}
	total := decimal.Zero
	for _, rec := range salaries[len(salaries)-12:] {
		total = total.Add(rec.Gross)
	}
	return total.Div(twelve).Round(0), nil
}

// SettlementConfig parameterizes the retirement-day split of the corpus.
type SettlementConfig struct {
	Scheme      domain.Scheme
	FinalCorpus decimal.Decimal

	// WithdrawalPercent of the final corpus is taken as a lumpsum at
	// retirement; the remainder funds the pension. Valid range is 1 to 60.
	WithdrawalPercent decimal.Decimal

	// AnnuityRate converts the residual corpus into an annual pension for
	// the contribution scheme. Required when Scheme is NPS.
	AnnuityRate *decimal.Decimal

	Joining    time.Time
	Retirement time.Time
}

// Settlement is the retirement-day outcome before any future projection.
type Settlement struct {
	// FullPension is the monthly entitlement before the withdrawal
	// reduction.
	FullPension decimal.Decimal
	// AdjustedPension is the payable monthly pension after reducing in
	// proportion to the corpus withdrawal.
	AdjustedPension decimal.Decimal
	// Withdrawn is the lumpsum taken out of the corpus.
	Withdrawn decimal.Decimal
	// Residual is the corpus left to fund the pension.
	Residual decimal.Decimal
	// Gratuity is the service lumpsum of the guaranteed scheme; zero for
	// the contribution scheme.
	Gratuity decimal.Decimal
}

// CalculateSettlement computes the retirement-day amounts for a scheme.
// The guaranteed scheme pensions the last-year average salary, scaled down
// proportionally when service falls short of 25 years, and pays a service
// gratuity of one tenth of the final monthly salary per completed half-year
// of service, capped by statute. The contribution scheme annuitizes the
// corpus at the annuity rate.
func CalculateSettlement(salaries []domain.SalaryRecord, cfg SettlementConfig) (Settlement, error) {
	if cfg.Scheme != domain.SchemeNPS && cfg.Scheme != domain.SchemeUPS {
		return Settlement{}, fmt.Errorf("%w: %q", ErrInvalidScheme, cfg.Scheme)
	}
	if cfg.WithdrawalPercent.LessThan(decimal.NewFromInt(1)) || cfg.WithdrawalPercent.GreaterThan(decimal.NewFromInt(60)) {
		return Settlement{}, fmt.Errorf("%w: withdrawal percent %s outside 1-60",
			ErrMissingParameter, cfg.WithdrawalPercent)
	}

	var full decimal.Decimal
	var gratuity decimal.Decimal

	switch cfg.Scheme {
	case domain.SchemeUPS:
		base, err := PensionBase(salaries)
		if err != nil {
			return Settlement{}, err
		}
		full = base
		// Service below 25 years draws a proportionally reduced pension.
		monthsServed := dateutil.MonthsBetween(cfg.Joining, cfg.Retirement)
		if monthsServed < fullServiceMonths {
			full = full.Mul(decimal.NewFromInt(int64(monthsServed))).
				Div(decimal.NewFromInt(fullServiceMonths))
		}

		lastSalary := salaries[len(salaries)-1].Gross
		periods := dateutil.SixMonthPeriods(cfg.Joining, cfg.Retirement)
		gratuity = lastSalary.Div(decimal.NewFromInt(10)).
			Mul(decimal.NewFromInt(int64(periods))).Round(0)
		if gratuity.GreaterThan(gratuityCap) {
			gratuity = gratuityCap
		}

	case domain.SchemeNPS:
		if cfg.AnnuityRate == nil {
			return Settlement{}, fmt.Errorf("%w: annuity rate is required for NPS", ErrMissingParameter)
		}
		full = cfg.FinalCorpus.Mul(*cfg.AnnuityRate).Div(oneHundred).Div(twelve)
	}

	withdrawn := cfg.FinalCorpus.Mul(cfg.WithdrawalPercent).Div(oneHundred).Round(0)
	adjusted := full.Mul(oneHundred.Sub(cfg.WithdrawalPercent)).Div(oneHundred).Round(0)

	return Settlement{
		FullPension:     full.Round(0),
		AdjustedPension: adjusted,
		Withdrawn:       withdrawn,
		Residual:        cfg.FinalCorpus.Sub(withdrawn),
		Gratuity:        gratuity,
	}, nil
}

// InflationFactor compounds the monthly inflation over every month of the
// salary series. The monthly rate derives from the period's annual
// inflation assumption by sixth-root compounding of the half-year value:
// m = (1 + r/100)^(1/6) - 1.
func InflationFactor(salaries []domain.SalaryRecord, rates *RateProvider) (decimal.Decimal, error) {
	if rates == nil {
		return decimal.Zero, fmt.Errorf("%w: rate provider", ErrMissingParameter)
	}
	factor := 1.0
	for _, rec := range salaries {
		annual := rates.InflationFor(rec.Month.Period())
		r, _ := annual.Float64()
		monthly := math.Pow(1+r/100, 1.0/6) - 1
		factor *= 1 + monthly
	}
	return decimal.NewFromFloat(factor).Round(2), nil
}

// NPV discounts a nominal future amount to present-day value by the
// cumulative inflation factor. A factor of one returns the nominal amount
// unchanged.
func NPV(amount, inflationFactor decimal.Decimal) (decimal.Decimal, error) {
	if !inflationFactor.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: inflation factor %s", ErrMissingParameter, inflationFactor)
	}
	return amount.Div(inflationFactor).Round(0), nil
}

// FuturePensionConfig parameterizes the post-retirement projection.
type FuturePensionConfig struct {
	Scheme domain.Scheme

	// AdjustedPension is the payable monthly pension at retirement,
	// required for the guaranteed scheme.
	AdjustedPension decimal.Decimal
	// ResidualCorpus and AnnuityRate drive the contribution scheme's flat
	// annuity payout.
	ResidualCorpus decimal.Decimal
	AnnuityRate    *decimal.Decimal

	Retirement time.Time
	// Years is the projection horizon; two points per year.
	Years int
}

// FuturePension projects the monthly pension over the horizon. The
// guaranteed scheme grows with dearness relief: each half-year adds half
// the annual inflation rate prevailing at retirement, mirroring in-service
// accrual and assuming no pay commission applies after retirement. The
// contribution scheme's annuity is flat for life.
func FuturePension(rates *RateProvider, cfg FuturePensionConfig) ([]domain.PensionPoint, error) {
	if cfg.Scheme != domain.SchemeNPS && cfg.Scheme != domain.SchemeUPS {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, cfg.Scheme)
	}
	if cfg.Years <= 0 {
		return nil, fmt.Errorf("%w: pension horizon %d", ErrMissingParameter, cfg.Years)
	}

	retire := domain.PeriodOf(cfg.Retirement)

	var flat decimal.Decimal
	if cfg.Scheme == domain.SchemeNPS {
		if cfg.AnnuityRate == nil {
			return nil, fmt.Errorf("%w: annuity rate is required for NPS", ErrMissingParameter)
		}
		flat = cfg.ResidualCorpus.Mul(*cfg.AnnuityRate).Div(oneHundred).Div(twelve).Round(0)
	}

	// Dearness relief accrues at the inflation rate in force at retirement.
	daRate := rates.InflationFor(retire)

	points := make([]domain.PensionPoint, 0, cfg.Years*2)
	period := retire
	for k := 1; k <= cfg.Years*2; k++ {
		monthly := flat
		if cfg.Scheme == domain.SchemeUPS {
			relief := daRate.Div(two).Mul(decimal.NewFromInt(int64(k))).Div(oneHundred)
			monthly = cfg.AdjustedPension.Mul(decimal.NewFromInt(1).Add(relief)).Round(0)
		}
		points = append(points, domain.PensionPoint{Period: period, Monthly: monthly})
		period = period.Next()
	}

	return points, nil
}
