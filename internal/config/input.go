// Package config loads and validates simulation inputs from YAML files and
// fills in the documented defaults for optional assumptions.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/npsups/pension-calculator/internal/domain"
)

// Default assumptions applied when the input omits a value.
var (
	defaultCommissionYears = []int{2026, 2036, 2046, 2056, 2066}
	defaultFitmentFactor   = decimal.NewFromInt(2)

	defaultInflation  = domain.RateTaper{Initial: decimal.NewFromFloat(7.0), Final: decimal.NewFromFloat(4.0)}
	defaultEquity     = domain.RateTaper{Initial: decimal.NewFromFloat(12.0), Final: decimal.NewFromFloat(6.0)}
	defaultCorporate  = domain.RateTaper{Initial: decimal.NewFromFloat(8.0), Final: decimal.NewFromFloat(4.0)}
	defaultGovernment = domain.RateTaper{Initial: decimal.NewFromFloat(8.0), Final: decimal.NewFromFloat(4.0)}

	defaultTaperYears        = 40
	defaultPensionYears      = 40
	defaultWithdrawalPercent = decimal.NewFromInt(60)
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation input from a YAML file, applies defaults
// for omitted assumptions and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.SimulationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&input)

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ApplyDefaults fills in the documented defaults for every optional
// assumption the file omitted. Scheme-conditional requirements such as the
// NPS annuity rate are never defaulted; the engine rejects their absence.
func (ip *InputParser) ApplyDefaults(input *domain.SimulationInput) {
	if input.Service == "" {
		input.Service = domain.ServiceCentral
	}
	if input.StartingLevel == "" {
		input.StartingLevel = "10"
	}
	if input.StartingYearInLevel == 0 {
		input.StartingYearInLevel = 1
	}
	if len(input.PromotionSchedule) == 0 {
		input.PromotionSchedule = domain.DefaultPromotionSchedule()
	}
	if len(input.CommissionYears) == 0 {
		input.CommissionYears = append([]int(nil), defaultCommissionYears...)
	}
	if len(input.FitmentFactors) == 0 {
		input.FitmentFactors = make([]decimal.Decimal, len(input.CommissionYears))
		for i := range input.FitmentFactors {
			input.FitmentFactors[i] = defaultFitmentFactor
		}
	}
	if input.Inflation.Initial.IsZero() && input.Inflation.Final.IsZero() {
		input.Inflation = defaultInflation
	}
	if input.EquityReturn.Initial.IsZero() && input.EquityReturn.Final.IsZero() {
		input.EquityReturn = defaultEquity
	}
	if input.CorporateReturn.Initial.IsZero() && input.CorporateReturn.Final.IsZero() {
		input.CorporateReturn = defaultCorporate
	}
	if input.GovernmentReturn.Initial.IsZero() && input.GovernmentReturn.Final.IsZero() {
		input.GovernmentReturn = defaultGovernment
	}
	if input.TaperYears == 0 {
		input.TaperYears = defaultTaperYears
	}
	if input.PensionYears == 0 {
		input.PensionYears = defaultPensionYears
	}
	if input.Allocation == "" {
		input.Allocation = domain.AllocationLC50
	}
	if input.WithdrawalPercent.IsZero() {
		input.WithdrawalPercent = defaultWithdrawalPercent
	}
}

// ValidateInput checks the loaded input for internal consistency. The
// calculation engine re-checks its own preconditions; this catches the
// file-level mistakes early with friendlier messages.
func (ip *InputParser) ValidateInput(input *domain.SimulationInput) error {
	if input.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if input.JoiningDate.IsZero() {
		return fmt.Errorf("joining_date is required")
	}
	if input.JoiningDate.Before(input.BirthDate) {
		return fmt.Errorf("joining_date cannot precede birth_date")
	}
	if input.EarlyRetirement && input.RetirementDate == nil {
		return fmt.Errorf("retirement_date is required when early_retirement is set")
	}
	if input.RetirementDate != nil && input.RetirementDate.Before(input.JoiningDate) {
		return fmt.Errorf("retirement_date cannot precede joining_date")
	}

	switch input.Service {
	case domain.ServiceIAS, domain.ServiceAllIndia, domain.ServiceCentral:
	default:
		return fmt.Errorf("service must be one of IAS, AIS or central, got %q", input.Service)
	}

	switch input.Allocation {
	case domain.AllocationStandard, domain.AllocationLC25, domain.AllocationLC50,
		domain.AllocationLC75, domain.AllocationActive:
	default:
		return fmt.Errorf("allocation must be one of standard, lc25, lc50, lc75 or active, got %q", input.Allocation)
	}

	if len(input.FitmentFactors) != len(input.CommissionYears) {
		return fmt.Errorf("fitment_factors must have one entry per pay_commission_years entry")
	}
	for i, f := range input.FitmentFactors {
		if f.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fitment factor %d must be positive", i+1)
		}
	}
	for i, step := range input.PromotionSchedule {
		if step.YearsInLevel <= 0 {
			return fmt.Errorf("promotion_schedule entry %d must have a positive years_in_level", i+1)
		}
	}

	if input.EmployeeRate.IsNegative() {
		return fmt.Errorf("employee_contribution_percent cannot be negative")
	}
	if input.EmployerRate.IsNegative() {
		return fmt.Errorf("employer_contribution_percent cannot be negative")
	}
	if input.WithdrawalPercent.LessThan(decimal.NewFromInt(1)) || input.WithdrawalPercent.GreaterThan(decimal.NewFromInt(60)) {
		return fmt.Errorf("withdrawal_percent must be between 1 and 60")
	}
	if input.AnnuityRate != nil && input.AnnuityRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annuity_rate must be positive when provided")
	}
	if input.TaperYears < 0 {
		return fmt.Errorf("taper_years cannot be negative")
	}
	if input.PensionYears <= 0 {
		return fmt.Errorf("pension_years must be positive")
	}
	if input.ExistingCorpus != nil {
		if input.ExistingCorpus.IsNegative() {
			return fmt.Errorf("existing_corpus cannot be negative")
		}
		if input.ExistingCorpusAsOf == nil {
			return fmt.Errorf("existing_corpus_as_of is required when existing_corpus is set")
		}
	}

	return nil
}

// CreateExampleConfiguration returns a fully populated example input that
// can be written out as a starter file.
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationInput {
	birthDate, _ := time.Parse("2006-01-02", "1995-01-01")
	joiningDate, _ := time.Parse("2006-01-02", "2024-12-09")
	annuityRate := decimal.NewFromFloat(6.0)

	input := &domain.SimulationInput{
		BirthDate:           birthDate,
		JoiningDate:         joiningDate,
		Service:             domain.ServiceCentral,
		StartingLevel:       "10",
		StartingYearInLevel: 1,
		EmployeeRate:        decimal.NewFromInt(10),
		EmployerRate:        decimal.NewFromInt(14),
		AnnuityRate:         &annuityRate,
	}
	ip.ApplyDefaults(input)
	return input
}
