package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/npsups/pension-calculator/internal/config"
)

var examplePath string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a starter input file with the default assumptions",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&examplePath, "output", "o", "pension_input.yaml", "where to write the example file")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	input := config.NewInputParser().CreateExampleConfiguration()

	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal example input: %w", err)
	}
	if err := os.WriteFile(examplePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", examplePath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "example input written to %s\n", examplePath)
	return nil
}
