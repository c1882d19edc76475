package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/pkg/dateutil"
)

// Scheme selects which pension scheme a run models.
type Scheme string

const (
	// SchemeNPS is the defined-contribution scheme: the corpus buys an
	// annuity at retirement.
	SchemeNPS Scheme = "NPS"
	// SchemeUPS is the hybrid guaranteed-benefit scheme: pension is assured
	// from final salary, with a service-linked lumpsum.
	SchemeUPS Scheme = "UPS"
)

// ServiceType selects the career track. Tracks differ in promotion rules
// and starting-level constraints.
type ServiceType string

const (
	// ServiceIAS skips levels 13A and 16 on promotion and earns two extra
	// increment cells when promoted out of levels 10-12.
	ServiceIAS ServiceType = "IAS"
	// ServiceAllIndia covers the other All India Services (IPS, IFS);
	// recruits start no lower than level 10.
	ServiceAllIndia ServiceType = "AIS"
	// ServiceCentral covers other central services with no special rules.
	ServiceCentral ServiceType = "central"
)

// AllocationStrategy names an investment glide path.
type AllocationStrategy string

const (
	// AllocationStandard is the fixed benchmark split (15/35/50)
	AllocationStandard AllocationStrategy = "standard"
	// AllocationLC25 is the conservative lifecycle curve (25% peak equity)
	AllocationLC25 AllocationStrategy = "lc25"
	// AllocationLC50 is the balanced lifecycle curve (50% peak equity)
	AllocationLC50 AllocationStrategy = "lc50"
	// AllocationLC75 is the aggressive lifecycle curve (75% peak equity)
	AllocationLC75 AllocationStrategy = "lc75"
	// AllocationActive holds 75% equity to age 50, then de-risks steeply
	AllocationActive AllocationStrategy = "active"
)

// RateTaper describes a rate assumption that declines linearly from Initial
// to Final over the configured taper window. Both values are annual
// percentages (7.0 means 7%). A constant assumption sets Initial == Final.
type RateTaper struct {
	Initial decimal.Decimal `yaml:"initial" json:"initial"`
	Final   decimal.Decimal `yaml:"final" json:"final"`
}

// PromotionStep is one entry of the promotion schedule: after YearsInLevel
// years in the current level, promote. TargetLevel may be empty, meaning
// the next level in matrix order (subject to service-type skip rules).
type PromotionStep struct {
	YearsInLevel int    `yaml:"years_in_level" json:"years_in_level"`
	TargetLevel  string `yaml:"target_level,omitempty" json:"target_level,omitempty"`
}

// DefaultPromotionSchedule is the multi-entry duration schedule applied when
// the input supplies none. Eight promotions over a 33-year career.
func DefaultPromotionSchedule() []PromotionStep {
	years := []int{4, 5, 4, 1, 4, 7, 5, 3}
	steps := make([]PromotionStep, len(years))
	for i, y := range years {
		steps[i] = PromotionStep{YearsInLevel: y}
	}
	return steps
}

// SimulationInput carries every assumption a run needs. It is immutable for
// the duration of a run; the engine never mutates it.
type SimulationInput struct {
	BirthDate       time.Time  `yaml:"birth_date" json:"birth_date"`
	JoiningDate     time.Time  `yaml:"joining_date" json:"joining_date"`
	EarlyRetirement bool       `yaml:"early_retirement" json:"early_retirement"`
	RetirementDate  *time.Time `yaml:"retirement_date,omitempty" json:"retirement_date,omitempty"`

	Service             ServiceType     `yaml:"service" json:"service"`
	StartingLevel       string          `yaml:"starting_level" json:"starting_level"`
	StartingYearInLevel int             `yaml:"starting_year_in_level" json:"starting_year_in_level"`
	PromotionSchedule   []PromotionStep `yaml:"promotion_schedule,omitempty" json:"promotion_schedule,omitempty"`

	CommissionYears []int             `yaml:"pay_commission_years" json:"pay_commission_years"`
	FitmentFactors  []decimal.Decimal `yaml:"fitment_factors" json:"fitment_factors"`

	Inflation        RateTaper `yaml:"inflation" json:"inflation"`
	EquityReturn     RateTaper `yaml:"equity_return" json:"equity_return"`
	CorporateReturn  RateTaper `yaml:"corporate_return" json:"corporate_return"`
	GovernmentReturn RateTaper `yaml:"government_return" json:"government_return"`
	TaperYears       int       `yaml:"taper_years" json:"taper_years"`

	Allocation   AllocationStrategy `yaml:"allocation" json:"allocation"`
	EmployeeRate decimal.Decimal    `yaml:"employee_contribution_percent" json:"employee_contribution_percent"`
	EmployerRate decimal.Decimal    `yaml:"employer_contribution_percent" json:"employer_contribution_percent"`

	WithdrawalPercent decimal.Decimal  `yaml:"withdrawal_percent" json:"withdrawal_percent"`
	AnnuityRate       *decimal.Decimal `yaml:"annuity_rate,omitempty" json:"annuity_rate,omitempty"`
	PensionYears      int              `yaml:"pension_years" json:"pension_years"`

	ExistingCorpus     *decimal.Decimal `yaml:"existing_corpus,omitempty" json:"existing_corpus,omitempty"`
	ExistingCorpusAsOf *time.Time       `yaml:"existing_corpus_as_of,omitempty" json:"existing_corpus_as_of,omitempty"`
}

// SuperannuationAge is the default retirement age
const SuperannuationAge = 60

// ResolveRetirementDate returns the explicit early-retirement date when set,
// otherwise the superannuation date at age 60. The missing-date case for an
// early retirement is a validation error handled by the engine.
func (in *SimulationInput) ResolveRetirementDate() time.Time {
	if in.EarlyRetirement && in.RetirementDate != nil {
		return *in.RetirementDate
	}
	return dateutil.RetirementDate(in.BirthDate, SuperannuationAge)
}

// AgeAtYearEnd returns the employee's completed age on 31 December of year
func (in *SimulationInput) AgeAtYearEnd(year int) int {
	return dateutil.Age(in.BirthDate, time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC))
}
