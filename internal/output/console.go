package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
	"github.com/npsups/pension-calculator/pkg/money"
)

// ConsoleFormatter renders a side-by-side comparison table for terminals.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(results *domain.SchemeComparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("no comparison to format")
	}

	var b strings.Builder
	b.WriteString("NPS vs UPS Retirement Comparison\n")
	b.WriteString(strings.Repeat("=", 64))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Retirement date: %s\n\n", results.NPS.RetirementDate.Format("02 Jan 2006"))

	rows := []struct {
		label string
		nps   string
		ups   string
	}{
		{"Final corpus", money.Compact(results.NPS.FinalCorpus), money.Compact(results.UPS.FinalCorpus)},
		{"Monthly pension", money.Format(results.NPS.MonthlyPension), money.Format(results.UPS.MonthlyPension)},
		{"Adjusted pension", money.Format(results.NPS.AdjustedPension), money.Format(results.UPS.AdjustedPension)},
		{"Lumpsum", money.Compact(results.NPS.LumpSum), money.Compact(results.UPS.LumpSum)},
		{"Present value", money.Compact(results.NPS.PresentValue), money.Compact(results.UPS.PresentValue)},
		{"XIRR", formatPercent(results.NPS.XIRR), formatPercent(results.UPS.XIRR)},
		{"Score", results.NPSScore.String(), results.UPSScore.String()},
	}

	fmt.Fprintf(&b, "%-20s %20s %20s\n", "", "NPS", "UPS")
	b.WriteString(strings.Repeat("-", 64))
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-20s %20s %20s\n", row.label, row.nps, row.ups)
	}
	b.WriteString(strings.Repeat("-", 64))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Recommendation: %s (%s vs %s)\n",
		results.Recommended, results.NPSScore, results.UPSScore)

	return []byte(b.String()), nil
}

// formatPercent renders a fractional rate as a percentage with two decimals
func formatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
