package output

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/npsups/pension-calculator/internal/domain"
)

// JSONFormatter exports the full comparison, including the per-month and
// per-year series, for downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results *domain.SchemeComparison) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("no comparison to format")
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return append(data, '\n'), nil
}
