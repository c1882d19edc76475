package calculation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
)

// DearnessHistory holds recorded half-year dearness-allowance percentages.
// Records are exact published values; the rate provider returns them
// verbatim for covered periods and projects beyond them.
type DearnessHistory struct {
	records map[domain.Period]decimal.Decimal
	first   domain.Period
	last    domain.Period
}

// NewDearnessHistory builds a history from period-keyed records. Coverage
// must be contiguous; the rate provider assumes no interior gaps.
func NewDearnessHistory(records map[domain.Period]decimal.Decimal) (*DearnessHistory, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dearness history has no records")
	}
	var first, last domain.Period
	init := false
	for p := range records {
		if !init {
			first, last = p, p
			init = true
			continue
		}
		if p.Before(first) {
			first = p
		}
		if p.After(last) {
			last = p
		}
	}
	for p := first; p.Before(last); p = p.Next() {
		if _, ok := records[p]; !ok {
			return nil, fmt.Errorf("dearness history has a gap at %s", p)
		}
	}
	return &DearnessHistory{records: records, first: first, last: last}, nil
}

// Covers reports whether the history has a record for the period
func (h *DearnessHistory) Covers(p domain.Period) bool {
	_, ok := h.records[p]
	return ok
}

// Rate returns the recorded rate for a covered period. Periods before the
// first record fail with ErrNotFound; periods after the last are the
// projection's job, and also fail here.
func (h *DearnessHistory) Rate(p domain.Period) (decimal.Decimal, error) {
	rate, ok := h.records[p]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no dearness record for %s", ErrNotFound, p)
	}
	return rate, nil
}

// First returns the earliest recorded period
func (h *DearnessHistory) First() domain.Period {
	return h.first
}

// Last returns the latest recorded period and its rate
func (h *DearnessHistory) Last() (domain.Period, decimal.Decimal) {
	return h.last, h.records[h.last]
}

// Published dearness-allowance rates, in percent of basic pay. Two eras:
// the 6th CPC scale (2006 through 2015) and the 7th CPC scale (2016
// onward, DA reset to zero at implementation). The 2020-2021 values
// reflect the freeze; arrears were not restored retrospectively.
var sixthCPCDearness = []struct {
	year int
	h1   float64
	h2   float64
}{
	{2006, 0, 2},
	{2007, 6, 9},
	{2008, 12, 16},
	{2009, 22, 27},
	{2010, 35, 45},
	{2011, 51, 58},
	{2012, 65, 72},
	{2013, 80, 90},
	{2014, 100, 107},
	{2015, 113, 119},
}

var seventhCPCDearness = []struct {
	year int
	h1   float64
	h2   float64
}{
	{2016, 0, 2},
	{2017, 4, 5},
	{2018, 7, 9},
	{2019, 12, 17},
	{2020, 17, 17},
	{2021, 17, 28},
	{2022, 34, 38},
	{2023, 42, 46},
	{2024, 50, 53},
}

var lastRecordedDearness = struct {
	year int
	h1   float64
}{2025, 55}

// DefaultDearnessHistory returns the embedded record of published rates,
// covering 2006H1 through 2025H1.
func DefaultDearnessHistory() *DearnessHistory {
	records := make(map[domain.Period]decimal.Decimal)
	for _, era := range [][]struct {
		year int
		h1   float64
		h2   float64
	}{sixthCPCDearness, seventhCPCDearness} {
		for _, rec := range era {
			records[domain.Period{Year: rec.year, Half: domain.H1}] = decimal.NewFromFloat(rec.h1)
			records[domain.Period{Year: rec.year, Half: domain.H2}] = decimal.NewFromFloat(rec.h2)
		}
	}
	records[domain.Period{Year: lastRecordedDearness.year, Half: domain.H1}] =
		decimal.NewFromFloat(lastRecordedDearness.h1)

	h, err := NewDearnessHistory(records)
	if err != nil {
		// Embedded records are contiguous; failure is a programming error.
		panic(err)
	}
	return h
}

// LoadDearnessCSV reads a dearness history from CSV with columns
// year,half,rate where half is 1 or 2. A header row is skipped when the
// first field is not numeric.
func LoadDearnessCSV(r io.Reader) (*DearnessHistory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	records := make(map[domain.Period]decimal.Decimal)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dearness record %d: %w", line, err)
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("invalid year in dearness record %d: %w", line, err)
		}
		var half domain.Half
		switch strings.TrimSpace(row[1]) {
		case "1":
			half = domain.H1
		case "2":
			half = domain.H2
		default:
			return nil, fmt.Errorf("invalid half %q in dearness record %d", row[1], line)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid rate in dearness record %d: %w", line, err)
		}
		records[domain.Period{Year: year, Half: half}] = rate
	}

	return NewDearnessHistory(records)
}
