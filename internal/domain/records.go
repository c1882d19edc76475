package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind classifies the events that can move basic pay during a
// half-year. When several fall in the same period they apply in ascending
// order: a commission reset rebases the matrix before the promotion reads
// it, and the annual increment never coincides with either (increments land
// in H2, resets and promotions in H1).
type EventKind int

const (
	// EventCommissionReset rebases pay by the fitment factor of a new
	// pay commission.
	EventCommissionReset EventKind = iota
	// EventPromotion moves the employee to a higher level.
	EventPromotion
	// EventAnnualIncrement advances one cell within the current level.
	EventAnnualIncrement
)

func (k EventKind) String() string {
	switch k {
	case EventCommissionReset:
		return "commission-reset"
	case EventPromotion:
		return "promotion"
	case EventAnnualIncrement:
		return "increment"
	default:
		return "unknown"
	}
}

// CareerEvent records one pay-moving event on the progression timeline.
type CareerEvent struct {
	Period Period    `json:"period"`
	Kind   EventKind `json:"kind"`
	Level  string    `json:"level"`
}

// PayPoint is the pay state for one half-year of the career walk.
type PayPoint struct {
	Period       Period          `json:"period"`
	Level        string          `json:"level"`
	YearInLevel  int             `json:"year_in_level"`
	BasicPay     decimal.Decimal `json:"basic_pay"`
	ServiceYears float64         `json:"service_years"`
	Events       []CareerEvent   `json:"events,omitempty"`
}

// SalaryRecord is one month of gross pay: matrix basic plus the dearness
// allowance accrued for the covering half-year.
type SalaryRecord struct {
	Month             Month           `json:"month"`
	Basic             decimal.Decimal `json:"basic"`
	DearnessAllowance decimal.Decimal `json:"dearness_allowance"`
	Gross             decimal.Decimal `json:"gross"`
}

// ContributionRecord is one month's combined employee and employer inflow
// into the retirement corpus.
type ContributionRecord struct {
	Month  Month           `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CorpusYear is the corpus state after one year's contributions and the
// year-end compounding of each asset class.
type CorpusYear struct {
	Year          int             `json:"year"`
	Contributions decimal.Decimal `json:"contributions"`
	Equity        decimal.Decimal `json:"equity"`
	Corporate     decimal.Decimal `json:"corporate"`
	Government    decimal.Decimal `json:"government"`
	Closing       decimal.Decimal `json:"closing"`
}

// PensionPoint is the projected pension for one half-year after retirement.
type PensionPoint struct {
	Period  Period          `json:"period"`
	Monthly decimal.Decimal `json:"monthly"`
}

// RetirementOutcome is everything one scheme yields at and after retirement.
type RetirementOutcome struct {
	Scheme         Scheme    `json:"scheme"`
	RetirementDate time.Time `json:"retirement_date"`

	FinalCorpus decimal.Decimal `json:"final_corpus"`

	// MonthlyPension is the full entitlement before any corpus withdrawal
	// reduction.
	MonthlyPension decimal.Decimal `json:"monthly_pension"`
	// AdjustedPension is the payable pension after the withdrawal reduction.
	AdjustedPension decimal.Decimal `json:"adjusted_pension"`
	// LumpSum is the amount taken out of the corpus at retirement plus, for
	// the guaranteed scheme, the service gratuity.
	LumpSum        decimal.Decimal `json:"lump_sum"`
	ResidualCorpus decimal.Decimal `json:"residual_corpus"`

	// PresentValue discounts the retirement-day lumpsum back to today's
	// rupees at the projected inflation path.
	PresentValue decimal.Decimal `json:"present_value"`
	// XIRR is the money-weighted annual return over the contribution
	// history, as a fraction (0.10 means 10%).
	XIRR decimal.Decimal `json:"xirr"`

	FuturePension []PensionPoint `json:"future_pension"`

	Salaries      []SalaryRecord       `json:"salaries,omitempty"`
	Contributions []ContributionRecord `json:"contributions,omitempty"`
	CorpusByYear  []CorpusYear         `json:"corpus_by_year,omitempty"`
	Progression   []PayPoint           `json:"progression,omitempty"`
}

// SchemeComparison scores the two schemes against each other.
type SchemeComparison struct {
	NPS RetirementOutcome `json:"nps"`
	UPS RetirementOutcome `json:"ups"`

	// Scores are out of 100, split across pension, corpus, return and
	// present-value components.
	NPSScore decimal.Decimal `json:"nps_score"`
	UPSScore decimal.Decimal `json:"ups_score"`

	// Recommended names the scheme with the higher composite score.
	Recommended Scheme `json:"recommended"`
}
