// Command aggregator runs one cycle of the job-listings aggregation
// pipeline: resolve companies, refresh stale per-source JSON, parse and
// geocode postings, enrich salary/experience, and rewrite the snapshot and
// ledger CSVs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnbot/jobatlas/internal/runner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		useAICompanies bool
		atsFilter      string
		outputPath     string
		configPath     string
	)

	cmd := &cobra.Command{
		Use:   "aggregator [company ...]",
		Short: "Aggregate job listings across ATS platforms and bespoke careers sites",
		Long: "aggregator resolves a company list to concrete ATS sources, refreshes stale\n" +
			"per-company JSON, normalizes and geocodes postings, enriches missing\n" +
			"salary/experience from descriptions, and diffs against the prior snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runner.Options{
				Companies:      args,
				UseAICompanies: useAICompanies,
				ATSFilter:      atsFilter,
				OutputPath:     outputPath,
				ConfigPath:     configPath,
			}
			return runner.Run(context.Background(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&useAICompanies, "ai-companies", false, "use the built-in default company map even if positional args are given")
	cmd.Flags().StringVar(&atsFilter, "ats", "", "restrict resolution to a single ATS (ashby, greenhouse, lever, workable, rippling)")
	cmd.Flags().StringVar(&outputPath, "output", "", "canonical snapshot path (default map/public/ai.csv)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional config file overlay")

	return cmd
}
