// Package cmd wires the command-line interface of the pension calculator.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pensioncalc",
	Short: "Compare NPS and UPS retirement outcomes",
	Long: `pensioncalc projects a government employee's career from joining to
retirement and compares the retirement outcomes of the National Pension
System (NPS) and the Unified Pension Scheme (UPS): final corpus, monthly
pension, lumpsum, present value and money-weighted return.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log calculation steps to stderr")
}

// stderrLogger implements calculation.Logger on standard error. Debug lines
// are gated behind the verbose flag.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
	}
}

func (l stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}

func (l stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}

func (l stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
