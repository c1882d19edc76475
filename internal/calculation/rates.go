package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
)

// Track identifies a rate series the provider can answer for.
type Track int

const (
	// TrackDearness is the dearness-allowance percentage of basic pay.
	TrackDearness Track = iota
	// TrackEquity is the annual equity return assumption.
	TrackEquity
	// TrackCorporate is the annual corporate-bond return assumption.
	TrackCorporate
	// TrackGovernment is the annual government-bond return assumption.
	TrackGovernment
)

func (t Track) String() string {
	switch t {
	case TrackDearness:
		return "dearness"
	case TrackEquity:
		return "equity"
	case TrackCorporate:
		return "corporate"
	case TrackGovernment:
		return "government"
	default:
		return "unknown"
	}
}

var (
	two        = decimal.NewFromInt(2)
	oneHundred = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// RateConfig parameterizes a rate provider for one simulation run.
type RateConfig struct {
	// Joining anchors the taper curves and the dearness projection.
	Joining domain.Period
	// Horizon is how many half-year periods past joining the dearness
	// projection covers. Lookups beyond it fail with ErrNotFound.
	Horizon int

	// CommissionYears are the pay-commission implementation years; the
	// dearness projection resets to zero at the first half of each.
	CommissionYears []int

	// TaperPeriods is the number of half-year steps over which each rate
	// declines from its initial to its final value. Zero or negative means
	// constant rates.
	TaperPeriods int

	Inflation  domain.RateTaper
	Equity     domain.RateTaper
	Corporate  domain.RateTaper
	Government domain.RateTaper

	// History supplies recorded dearness rates; periods it covers are
	// answered verbatim, and its last value seeds the projection.
	History *DearnessHistory
}

// RateProvider answers rate lookups per period and track. It is immutable
// after construction: the dearness projection is computed once from the
// configuration, so concurrent reads are safe and values never go stale.
type RateProvider struct {
	cfg      RateConfig
	dearness map[domain.Period]decimal.Decimal
}

// NewRateProvider builds a provider and precomputes the dearness projection
// out to the horizon. The projection seeds from the last recorded dearness
// value, accrues half the annual inflation rate each half-year, and resets
// to zero at each commission implementation.
func NewRateProvider(cfg RateConfig) (*RateProvider, error) {
	if cfg.History == nil {
		cfg.History = DefaultDearnessHistory()
	}
	if cfg.Horizon <= 0 {
		return nil, fmt.Errorf("%w: rate horizon", ErrMissingParameter)
	}
	if cfg.Joining.Before(cfg.History.First()) {
		return nil, fmt.Errorf("%w: joining period %s predates dearness records", ErrNotFound, cfg.Joining)
	}

	// Recorded periods are answered from the history; the projection walks
	// forward from the last record, seeded with its published value. Walking
	// from the record rather than from joining means a commission falling
	// between the two still resets the series.
	anchor, seed := cfg.History.Last()
	end := cfg.Joining
	for t := 0; t < cfg.Horizon; t++ {
		end = end.Next()
	}

	commissions := make(map[int]bool, len(cfg.CommissionYears))
	for _, y := range cfg.CommissionYears {
		commissions[y] = true
	}

	dearness := make(map[domain.Period]decimal.Decimal, cfg.Horizon+1)
	dearness[anchor] = seed

	current := seed
	period := anchor
	for period.Before(end) {
		period = period.Next()
		t := domain.HalvesBetween(cfg.Joining, period)
		current = current.Add(taperAt(cfg.Inflation, t, cfg.TaperPeriods).Div(two))
		if period.Half == domain.H1 && commissions[period.Year] {
			current = decimal.Zero
		}
		dearness[period] = current.Round(2)
	}

	return &RateProvider{cfg: cfg, dearness: dearness}, nil
}

// RateFor returns the rate for a period and track, in annual percent
// (dearness is a percent of basic pay). Dearness lookups prefer the
// historical record, then the projection; anything outside both fails with
// ErrNotFound. Investment tracks are pure taper curves and never fail.
func (rp *RateProvider) RateFor(period domain.Period, track Track) (decimal.Decimal, error) {
	switch track {
	case TrackDearness:
		if rp.cfg.History.Covers(period) {
			return rp.cfg.History.Rate(period)
		}
		if rate, ok := rp.dearness[period]; ok {
			return rate, nil
		}
		return decimal.Zero, fmt.Errorf("%w: dearness rate for %s", ErrNotFound, period)
	case TrackEquity:
		return rp.taperFor(rp.cfg.Equity, period), nil
	case TrackCorporate:
		return rp.taperFor(rp.cfg.Corporate, period), nil
	case TrackGovernment:
		return rp.taperFor(rp.cfg.Government, period), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: rate track %d", ErrNotFound, track)
	}
}

// InflationFor returns the annual inflation assumption at a period, from
// the same taper curve that drives dearness accrual.
func (rp *RateProvider) InflationFor(period domain.Period) decimal.Decimal {
	return rp.taperFor(rp.cfg.Inflation, period)
}

// AnnualReturn compounds the two half-year rates of a calendar year into
// one annual rate, returned as a fraction. Half-year compounding, not
// simple addition: (1 + r1/2)(1 + r2/2) - 1 with r in percent.
func (rp *RateProvider) AnnualReturn(year int, track Track) (decimal.Decimal, error) {
	r1, err := rp.RateFor(domain.Period{Year: year, Half: domain.H1}, track)
	if err != nil {
		return decimal.Zero, err
	}
	r2, err := rp.RateFor(domain.Period{Year: year, Half: domain.H2}, track)
	if err != nil {
		return decimal.Zero, err
	}
	h1 := decimal.NewFromInt(1).Add(r1.Div(twoHundred))
	h2 := decimal.NewFromInt(1).Add(r2.Div(twoHundred))
	return h1.Mul(h2).Sub(decimal.NewFromInt(1)), nil
}

func (rp *RateProvider) taperFor(rt domain.RateTaper, period domain.Period) decimal.Decimal {
	t := domain.HalvesBetween(rp.cfg.Joining, period)
	if t < 0 {
		t = 0
	}
	return taperAt(rt, t, rp.cfg.TaperPeriods)
}

// taperAt evaluates rate(t) = initial + (final-initial) * min(t/taperPeriods, 1)
// for t half-year steps past the anchor.
func taperAt(rt domain.RateTaper, t, taperPeriods int) decimal.Decimal {
	if taperPeriods <= 0 || t <= 0 {
		return rt.Initial
	}
	if t >= taperPeriods {
		return rt.Final
	}
	ratio := decimal.NewFromInt(int64(t)).Div(decimal.NewFromInt(int64(taperPeriods)))
	return rt.Initial.Add(rt.Final.Sub(rt.Initial).Mul(ratio)).Round(4)
}
