package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npsups/pension-calculator/internal/domain"
)

func TestPensionBase(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)
	base, err := PensionBase(salaries)
	require.NoError(t, err)
	assert.True(t, base.Equal(decimal.NewFromInt(100000)))

	// Only the trailing twelve months count.
	mixed := flatSalaries(domain.Month{Year: 2048, Month: time.February}, 12, 50000)
	mixed = append(mixed, flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)...)
	base, err = PensionBase(mixed)
	require.NoError(t, err)
	assert.True(t, base.Equal(decimal.NewFromInt(100000)), "got %s", base)

	_, err = PensionBase(flatSalaries(domain.Month{Year: 2049, Month: time.February}, 11, 100000))
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestSettlementUPSFullService(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)
	settlement, err := CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeUPS,
		FinalCorpus:       decimal.NewFromInt(10000000),
		WithdrawalPercent: decimal.NewFromInt(10),
		Joining:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Retirement:        time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Thirty years of service earns the unreduced last-year average, cut in
	// proportion to the 10% withdrawal.
	assert.True(t, settlement.FullPension.Equal(decimal.NewFromInt(100000)))
	assert.True(t, settlement.AdjustedPension.Equal(decimal.NewFromInt(90000)), "got %s", settlement.AdjustedPension)

	// One tenth of the final salary per completed half-year: 61 periods.
	assert.True(t, settlement.Gratuity.Equal(decimal.NewFromInt(610000)), "got %s", settlement.Gratuity)

	assert.True(t, settlement.Withdrawn.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, settlement.Residual.Equal(decimal.NewFromInt(9000000)))
}

func TestSettlementUPSShortService(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)
	settlement, err := CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeUPS,
		FinalCorpus:       decimal.NewFromInt(5000000),
		WithdrawalPercent: decimal.NewFromInt(10),
		Joining:           time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC),
		Retirement:        time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Ten of twenty-five qualifying years: pension scales to 120/300.
	assert.True(t, settlement.FullPension.Equal(decimal.NewFromInt(40000)), "got %s", settlement.FullPension)
	assert.True(t, settlement.Gratuity.Equal(decimal.NewFromInt(210000)), "got %s", settlement.Gratuity)
}

func TestSettlementUPSGratuityCap(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 500000)
	settlement, err := CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeUPS,
		FinalCorpus:       decimal.NewFromInt(10000000),
		WithdrawalPercent: decimal.NewFromInt(10),
		Joining:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Retirement:        time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, settlement.Gratuity.Equal(decimal.NewFromInt(2500000)), "got %s", settlement.Gratuity)
}

func TestSettlementNPS(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)
	annuity := decimal.NewFromFloat(6.0)
	settlement, err := CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeNPS,
		FinalCorpus:       decimal.NewFromInt(10000000),
		WithdrawalPercent: decimal.NewFromInt(60),
		AnnuityRate:       &annuity,
		Joining:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Retirement:        time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// One crore at 6% is 50000 a month before the withdrawal reduction.
	assert.True(t, settlement.FullPension.Equal(decimal.NewFromInt(50000)), "got %s", settlement.FullPension)
	assert.True(t, settlement.AdjustedPension.Equal(decimal.NewFromInt(20000)), "got %s", settlement.AdjustedPension)
	assert.True(t, settlement.Withdrawn.Equal(decimal.NewFromInt(6000000)))
	assert.True(t, settlement.Residual.Equal(decimal.NewFromInt(4000000)))
	assert.True(t, settlement.Gratuity.IsZero())
}

func TestSettlementValidation(t *testing.T) {
	salaries := flatSalaries(domain.Month{Year: 2049, Month: time.February}, 12, 100000)

	_, err := CalculateSettlement(salaries, SettlementConfig{Scheme: "EPF"})
	assert.ErrorIs(t, err, ErrInvalidScheme)

	_, err = CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeNPS,
		WithdrawalPercent: decimal.NewFromInt(61),
	})
	assert.ErrorIs(t, err, ErrMissingParameter)

	// Anything below one percent is out of range, zero included.
	_, err = CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeUPS,
		WithdrawalPercent: decimal.Zero,
		Joining:           time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Retirement:        time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = CalculateSettlement(salaries, SettlementConfig{
		Scheme:            domain.SchemeNPS,
		FinalCorpus:       decimal.NewFromInt(10000000),
		WithdrawalPercent: decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestInflationFactorZeroInflation(t *testing.T) {
	rates := zeroRateProvider(t)
	salaries := flatSalaries(domain.Month{Year: 2025, Month: time.January}, 120, 100000)

	factor, err := InflationFactor(salaries, rates)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)), "got %s", factor)
}

func TestInflationFactorCompounds(t *testing.T) {
	cfg := testRateConfig()
	cfg.Inflation = flatTaper(6.0)
	rates, err := NewRateProvider(cfg)
	require.NoError(t, err)

	// Twelve months at a flat 6% half-year assumption compound to about
	// (1.06)^2 over the year.
	salaries := flatSalaries(domain.Month{Year: 2025, Month: time.January}, 12, 100000)
	factor, err := InflationFactor(salaries, rates)
	require.NoError(t, err)
	f, _ := factor.Float64()
	assert.InDelta(t, 1.1236, f, 0.01)
}

func TestNPV(t *testing.T) {
	nominal := decimal.NewFromInt(1000000)

	value, err := NPV(nominal, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, value.Equal(nominal))

	value, err = NPV(nominal, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(250000)))

	_, err = NPV(nominal, decimal.Zero)
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestFuturePensionUPSGrowsWithDearnessRelief(t *testing.T) {
	cfg := testRateConfig()
	cfg.Inflation = flatTaper(6.0)
	rates, err := NewRateProvider(cfg)
	require.NoError(t, err)

	points, err := FuturePension(rates, FuturePensionConfig{
		Scheme:          domain.SchemeUPS,
		AdjustedPension: decimal.NewFromInt(10000),
		Retirement:      time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
		Years:           5,
	})
	require.NoError(t, err)
	require.Len(t, points, 10)

	assert.Equal(t, domain.Period{Year: 2050, Half: domain.H1}, points[0].Period)
	// Half the 6% annual rate per half-year step: 10300, 10600, ...
	assert.True(t, points[0].Monthly.Equal(decimal.NewFromInt(10300)), "got %s", points[0].Monthly)
	assert.True(t, points[1].Monthly.Equal(decimal.NewFromInt(10600)), "got %s", points[1].Monthly)
	assert.True(t, points[9].Monthly.Equal(decimal.NewFromInt(13000)), "got %s", points[9].Monthly)
}

func TestFuturePensionNPSIsFlat(t *testing.T) {
	rates, err := NewRateProvider(testRateConfig())
	require.NoError(t, err)

	annuity := decimal.NewFromFloat(6.0)
	points, err := FuturePension(rates, FuturePensionConfig{
		Scheme:         domain.SchemeNPS,
		ResidualCorpus: decimal.NewFromInt(4000000),
		AnnuityRate:    &annuity,
		Retirement:     time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
		Years:          5,
	})
	require.NoError(t, err)
	require.Len(t, points, 10)

	for _, pt := range points {
		assert.True(t, pt.Monthly.Equal(decimal.NewFromInt(20000)), "%s: %s", pt.Period, pt.Monthly)
	}
}

func TestFuturePensionValidation(t *testing.T) {
	rates, err := NewRateProvider(testRateConfig())
	require.NoError(t, err)

	_, err = FuturePension(rates, FuturePensionConfig{Scheme: "EPF", Years: 5})
	assert.ErrorIs(t, err, ErrInvalidScheme)

	_, err = FuturePension(rates, FuturePensionConfig{Scheme: domain.SchemeUPS, Years: 0})
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = FuturePension(rates, FuturePensionConfig{
		Scheme:     domain.SchemeNPS,
		Retirement: time.Date(2050, 1, 31, 0, 0, 0, 0, time.UTC),
		Years:      5,
	})
	assert.ErrorIs(t, err, ErrMissingParameter)
}
