package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
	"github.com/npsups/pension-calculator/internal/paymatrix"
)

// Default contribution percentages when the input leaves them unset. The
// employee pays the same under both schemes; the government tops up more
// under the contribution scheme.
var (
	defaultEmployeeRate    = decimal.NewFromInt(10)
	defaultEmployerRateNPS = decimal.NewFromInt(14)
	defaultEmployerRateUPS = decimal.NewFromInt(10)
)

// CalculationEngine orchestrates a full simulation run: rates, career walk,
// salary series, corpus accumulation, settlement and financial metrics.
type CalculationEngine struct {
	Matrix  *paymatrix.Matrix
	History *DearnessHistory
	Logger  Logger
}

// NewCalculationEngine creates an engine with the embedded pay matrix and
// dearness history.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Matrix:  paymatrix.Default(),
		History: DefaultDearnessHistory(),
		Logger:  NopLogger{},
	}
}

// NewCalculationEngineWithMatrix creates an engine backed by an externally
// loaded pay matrix, typically from CSV.
func NewCalculationEngineWithMatrix(matrix *paymatrix.Matrix) *CalculationEngine {
	return &CalculationEngine{
		Matrix:  matrix,
		History: DefaultDearnessHistory(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided,
// a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScheme simulates one scheme end to end and returns its outcome. A
// failed precondition surfaces immediately; no partial outcome is produced.
func (ce *CalculationEngine) RunScheme(input *domain.SimulationInput, scheme domain.Scheme) (*domain.RetirementOutcome, error) {
	if scheme != domain.SchemeNPS && scheme != domain.SchemeUPS {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, scheme)
	}
	if err := validateInput(input, scheme); err != nil {
		return nil, err
	}

	retirement := input.ResolveRetirementDate()
	joining := domain.PeriodOf(input.JoiningDate)
	careerHalves := domain.HalvesBetween(joining, domain.PeriodOf(retirement))

	rates, err := NewRateProvider(RateConfig{
		Joining:         joining,
		Horizon:         careerHalves + input.PensionYears*2 + 4,
		CommissionYears: input.CommissionYears,
		TaperPeriods:    input.TaperYears * 2,
		Inflation:       input.Inflation,
		Equity:          input.EquityReturn,
		Corporate:       input.CorporateReturn,
		Government:      input.GovernmentReturn,
		History:         ce.History,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build rate provider: %w", err)
	}

	progression, err := Progress(CareerConfig{
		Matrix:            ce.Matrix,
		Service:           input.Service,
		StartLevel:        input.StartingLevel,
		StartYearInLevel:  input.StartingYearInLevel,
		PromotionSchedule: input.PromotionSchedule,
		CommissionYears:   input.CommissionYears,
		FitmentFactors:    input.FitmentFactors,
		Joining:           input.JoiningDate,
		Retirement:        retirement,
		Logger:            ce.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("career progression failed: %w", err)
	}
	ce.Logger.Infof("%s: career spans %d half-years, final level %s basic %s",
		scheme, len(progression), progression[len(progression)-1].Level,
		progression[len(progression)-1].BasicPay)

	salaries, err := BuildSalarySeries(progression, rates, input.JoiningDate, retirement)
	if err != nil {
		return nil, fmt.Errorf("salary series failed: %w", err)
	}

	corpusCfg := CorpusConfig{
		EmployeeRate: input.EmployeeRate,
		EmployerRate: input.EmployerRate,
		Strategy:     input.Allocation,
		BirthDate:    input.BirthDate,
		Logger:       ce.Logger,
	}
	if corpusCfg.EmployeeRate.IsZero() {
		corpusCfg.EmployeeRate = defaultEmployeeRate
	}
	if corpusCfg.EmployerRate.IsZero() {
		if scheme == domain.SchemeNPS {
			corpusCfg.EmployerRate = defaultEmployerRateNPS
		} else {
			corpusCfg.EmployerRate = defaultEmployerRateUPS
		}
	}
	if input.ExistingCorpus != nil {
		corpusCfg.Seed = *input.ExistingCorpus
		corpusCfg.SeedAsOf = input.ExistingCorpusAsOf
	}

	corpusYears, contributions, err := Accumulate(salaries, rates, corpusCfg)
	if err != nil {
		return nil, fmt.Errorf("corpus accumulation failed: %w", err)
	}
	finalCorpus := FinalCorpus(corpusYears)

	settlement, err := CalculateSettlement(salaries, SettlementConfig{
		Scheme:            scheme,
		FinalCorpus:       finalCorpus,
		WithdrawalPercent: input.WithdrawalPercent,
		AnnuityRate:       input.AnnuityRate,
		Joining:           input.JoiningDate,
		Retirement:        retirement,
	})
	if err != nil {
		return nil, fmt.Errorf("settlement failed: %w", err)
	}

	inflationFactor, err := InflationFactor(salaries, rates)
	if err != nil {
		return nil, fmt.Errorf("inflation factor failed: %w", err)
	}
	presentValue, err := NPV(finalCorpus, inflationFactor)
	if err != nil {
		return nil, fmt.Errorf("present value failed: %w", err)
	}

	xirr, err := ContributionXIRR(contributions, finalCorpus)
	if err != nil {
		return nil, fmt.Errorf("rate of return failed: %w", err)
	}

	futurePension, err := FuturePension(rates, FuturePensionConfig{
		Scheme:          scheme,
		AdjustedPension: settlement.AdjustedPension,
		ResidualCorpus:  settlement.Residual,
		AnnuityRate:     input.AnnuityRate,
		Retirement:      retirement,
		Years:           input.PensionYears,
	})
	if err != nil {
		return nil, fmt.Errorf("future pension projection failed: %w", err)
	}

	lumpSum := settlement.Withdrawn.Add(settlement.Gratuity)
	ce.Logger.Infof("%s: corpus %s, pension %s, lumpsum %s",
		scheme, finalCorpus, settlement.AdjustedPension, lumpSum)

	return &domain.RetirementOutcome{
		Scheme:          scheme,
		RetirementDate:  retirement,
		FinalCorpus:     finalCorpus,
		MonthlyPension:  settlement.FullPension,
		AdjustedPension: settlement.AdjustedPension,
		LumpSum:         lumpSum,
		ResidualCorpus:  settlement.Residual,
		PresentValue:    presentValue,
		XIRR:            xirr,
		FuturePension:   futurePension,
		Salaries:        salaries,
		Contributions:   contributions,
		CorpusByYear:    corpusYears,
		Progression:     progression,
	}, nil
}

// Compare runs both schemes on the same inputs and scores them.
func (ce *CalculationEngine) Compare(input *domain.SimulationInput) (*domain.SchemeComparison, error) {
	nps, err := ce.RunScheme(input, domain.SchemeNPS)
	if err != nil {
		return nil, err
	}
	ups, err := ce.RunScheme(input, domain.SchemeUPS)
	if err != nil {
		return nil, err
	}
	cmp := Score(*nps, *ups)
	return &cmp, nil
}

func validateInput(input *domain.SimulationInput, scheme domain.Scheme) error {
	if input == nil {
		return fmt.Errorf("%w: simulation input", ErrMissingParameter)
	}
	if input.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date", ErrMissingParameter)
	}
	if input.JoiningDate.IsZero() {
		return fmt.Errorf("%w: joining date", ErrMissingParameter)
	}
	if input.JoiningDate.Before(input.BirthDate) {
		return fmt.Errorf("%w: joining date precedes birth date", ErrMissingParameter)
	}
	if input.EarlyRetirement && input.RetirementDate == nil {
		return fmt.Errorf("%w: early retirement requires a retirement date", ErrMissingParameter)
	}
	if scheme == domain.SchemeNPS && input.AnnuityRate == nil {
		return fmt.Errorf("%w: NPS requires an annuity rate", ErrMissingParameter)
	}
	if input.ExistingCorpus != nil && input.ExistingCorpusAsOf == nil {
		return fmt.Errorf("%w: existing corpus requires its as-of date", ErrMissingParameter)
	}
	if input.PensionYears <= 0 {
		return fmt.Errorf("%w: pension projection horizon", ErrMissingParameter)
	}
	return nil
}
