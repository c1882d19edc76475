package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npsups/pension-calculator/internal/calculation"
	"github.com/npsups/pension-calculator/internal/config"
	"github.com/npsups/pension-calculator/internal/output"
	"github.com/npsups/pension-calculator/internal/paymatrix"
)

var (
	compareInput  string
	compareFormat string
	compareToFile bool
	compareMatrix string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both schemes on an input file and compare them",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareInput, "input", "i", "", "simulation input YAML file (required)")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "console",
		fmt.Sprintf("output format, one of %v", output.AvailableFormatterNames()))
	compareCmd.Flags().BoolVar(&compareToFile, "save", false, "write the report to a timestamped file instead of stdout")
	compareCmd.Flags().StringVar(&compareMatrix, "pay-matrix", "", "pay matrix CSV (defaults to the embedded 7th CPC matrix)")
	_ = compareCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(compareInput)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	if compareMatrix != "" {
		matrix, err := paymatrix.LoadCSVFile(compareMatrix)
		if err != nil {
			return err
		}
		engine = calculation.NewCalculationEngineWithMatrix(matrix)
	}
	engine.SetLogger(stderrLogger{debug: verbose})

	results, err := engine.Compare(input)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(compareFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", compareFormat, output.AvailableFormatterNames())
	}

	if compareToFile {
		ext := formatter.Name()
		if ext == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(formatter, results, ext)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(results)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
