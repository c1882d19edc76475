package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npsups/pension-calculator/internal/domain"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempYAML(t, `
birth_date: 1995-01-01T00:00:00Z
joining_date: 2024-12-09T00:00:00Z
service: IAS
starting_level: "11"
starting_year_in_level: 2
annuity_rate: 6.5
withdrawal_percent: 40
`)

	parser := NewInputParser()
	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ServiceIAS, input.Service)
	assert.Equal(t, "11", input.StartingLevel)
	assert.Equal(t, 2, input.StartingYearInLevel)
	require.NotNil(t, input.AnnuityRate)
	assert.True(t, input.AnnuityRate.Equal(decimal.NewFromFloat(6.5)))
	assert.True(t, input.WithdrawalPercent.Equal(decimal.NewFromInt(40)))

	// Omitted assumptions come back defaulted.
	assert.Equal(t, []int{2026, 2036, 2046, 2056, 2066}, input.CommissionYears)
	assert.Len(t, input.FitmentFactors, 5)
	assert.Equal(t, 40, input.TaperYears)
	assert.Equal(t, 40, input.PensionYears)
	assert.Equal(t, domain.AllocationLC50, input.Allocation)
	assert.True(t, input.Inflation.Initial.Equal(decimal.NewFromFloat(7.0)))
	assert.True(t, input.Inflation.Final.Equal(decimal.NewFromFloat(4.0)))
}

func TestLoadFromFileNotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := writeTempYAML(t, "birth_date: [not\na date")
	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFileValidationFailure(t *testing.T) {
	// joining before birth is a file-level mistake.
	path := writeTempYAML(t, `
birth_date: 1995-01-01T00:00:00Z
joining_date: 1990-01-01T00:00:00Z
`)
	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")
}

func TestApplyDefaultsLeavesAnnuityUnset(t *testing.T) {
	parser := NewInputParser()
	input := &domain.SimulationInput{
		BirthDate:   time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		JoiningDate: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC),
	}
	parser.ApplyDefaults(input)

	// The annuity rate is scheme-conditional and never defaulted; the
	// engine rejects an NPS run without it.
	assert.Nil(t, input.AnnuityRate)
	assert.Equal(t, domain.ServiceCentral, input.Service)
	assert.Equal(t, "10", input.StartingLevel)
	assert.Equal(t, 1, input.StartingYearInLevel)
	assert.NotEmpty(t, input.PromotionSchedule)
	assert.True(t, input.WithdrawalPercent.Equal(decimal.NewFromInt(60)))
}

func TestValidateInput(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.SimulationInput {
		input := &domain.SimulationInput{
			BirthDate:   time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
			JoiningDate: time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC),
		}
		parser.ApplyDefaults(input)
		return input
	}

	require.NoError(t, parser.ValidateInput(valid()))

	tests := []struct {
		name    string
		mutate  func(*domain.SimulationInput)
		message string
	}{
		{
			name:    "missing birth date",
			mutate:  func(in *domain.SimulationInput) { in.BirthDate = time.Time{} },
			message: "birth_date is required",
		},
		{
			name:    "early retirement without date",
			mutate:  func(in *domain.SimulationInput) { in.EarlyRetirement = true },
			message: "retirement_date is required",
		},
		{
			name: "retirement before joining",
			mutate: func(in *domain.SimulationInput) {
				d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
				in.RetirementDate = &d
			},
			message: "retirement_date cannot precede joining_date",
		},
		{
			name:    "unknown service",
			mutate:  func(in *domain.SimulationInput) { in.Service = "IRS" },
			message: "service must be one of",
		},
		{
			name:    "unknown allocation",
			mutate:  func(in *domain.SimulationInput) { in.Allocation = "momentum" },
			message: "allocation must be one of",
		},
		{
			name: "fitment factor count mismatch",
			mutate: func(in *domain.SimulationInput) {
				in.FitmentFactors = in.FitmentFactors[:2]
			},
			message: "one entry per pay_commission_years",
		},
		{
			name: "non-positive fitment factor",
			mutate: func(in *domain.SimulationInput) {
				in.FitmentFactors[0] = decimal.Zero
			},
			message: "must be positive",
		},
		{
			name: "bad promotion step",
			mutate: func(in *domain.SimulationInput) {
				in.PromotionSchedule[0].YearsInLevel = -1
			},
			message: "positive years_in_level",
		},
		{
			name:    "negative employee rate",
			mutate:  func(in *domain.SimulationInput) { in.EmployeeRate = decimal.NewFromInt(-1) },
			message: "cannot be negative",
		},
		{
			name: "withdrawal above cap",
			mutate: func(in *domain.SimulationInput) {
				in.WithdrawalPercent = decimal.NewFromInt(61)
			},
			message: "between 1 and 60",
		},
		{
			name: "withdrawal below floor",
			mutate: func(in *domain.SimulationInput) {
				in.WithdrawalPercent = decimal.NewFromFloat(0.5)
			},
			message: "between 1 and 60",
		},
		{
			name: "non-positive annuity rate",
			mutate: func(in *domain.SimulationInput) {
				zero := decimal.Zero
				in.AnnuityRate = &zero
			},
			message: "annuity_rate must be positive",
		},
		{
			name: "existing corpus without as-of",
			mutate: func(in *domain.SimulationInput) {
				seed := decimal.NewFromInt(500000)
				in.ExistingCorpus = &seed
			},
			message: "existing_corpus_as_of is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)
			err := parser.ValidateInput(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	input := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateInput(input))
	assert.Equal(t, domain.ServiceCentral, input.Service)
	require.NotNil(t, input.AnnuityRate)
	assert.True(t, input.EmployeeRate.Equal(decimal.NewFromInt(10)))
	assert.True(t, input.EmployerRate.Equal(decimal.NewFromInt(14)))
	assert.Len(t, input.FitmentFactors, len(input.CommissionYears))
}
