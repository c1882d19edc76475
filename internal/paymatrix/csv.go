package paymatrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// LoadCSV reads a pay matrix from CSV. Each row is a level: the first field
// is the level name, the remaining fields are its pay cells in increment
// order. Row order is promotion order. A header row starting with "level"
// is skipped.
func LoadCSV(r io.Reader) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var order []string
	cells := make(map[string][]decimal.Decimal)

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read pay matrix row %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "level") {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("pay matrix row %d has no pay cells", line)
		}
		level := strings.TrimSpace(record[0])
		if _, dup := cells[level]; dup {
			return nil, fmt.Errorf("duplicate pay level %s at row %d", level, line)
		}
		row := make([]decimal.Decimal, 0, len(record)-1)
		for i, field := range record[1:] {
			pay, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid pay cell %d in level %s: %w", i+1, level, err)
			}
			row = append(row, pay)
		}
		order = append(order, level)
		cells[level] = row
	}

	return New(order, cells)
}

// LoadCSVFile reads a pay matrix from a CSV file on disk
func LoadCSVFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pay matrix file: %w", err)
	}
	defer f.Close()

	m, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pay matrix file %s: %w", path, err)
	}
	return m, nil
}
