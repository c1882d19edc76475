package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/npsups/pension-calculator/internal/domain"
)

// CSVFormatter exports the year-by-year corpus growth of both schemes plus
// a summary block, for spreadsheet analysis.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results *domain.SchemeComparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("no comparison to format")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "nps_contributions", "nps_corpus", "ups_contributions", "ups_corpus"}); err != nil {
		return nil, err
	}

	upsByYear := make(map[int]domain.CorpusYear, len(results.UPS.CorpusByYear))
	for _, y := range results.UPS.CorpusByYear {
		upsByYear[y.Year] = y
	}
	for _, nps := range results.NPS.CorpusByYear {
		ups := upsByYear[nps.Year]
		record := []string{
			fmt.Sprintf("%d", nps.Year),
			nps.Contributions.Round(0).String(),
			nps.Closing.String(),
			ups.Contributions.Round(0).String(),
			ups.Closing.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	summary := [][]string{
		{},
		{"metric", "nps", "ups"},
		{"final_corpus", results.NPS.FinalCorpus.String(), results.UPS.FinalCorpus.String()},
		{"monthly_pension", results.NPS.MonthlyPension.String(), results.UPS.MonthlyPension.String()},
		{"adjusted_pension", results.NPS.AdjustedPension.String(), results.UPS.AdjustedPension.String()},
		{"lump_sum", results.NPS.LumpSum.String(), results.UPS.LumpSum.String()},
		{"present_value", results.NPS.PresentValue.String(), results.UPS.PresentValue.String()},
		{"xirr", results.NPS.XIRR.String(), results.UPS.XIRR.String()},
		{"score", results.NPSScore.String(), results.UPSScore.String()},
		{"recommended", string(results.Recommended), ""},
	}
	for _, record := range summary {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
