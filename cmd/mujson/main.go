// Command mujson is a thin CLI front-end over the token and emit
// packages: the CORE itself has no CLI (spec.md §1 lists CLIs as an
// external collaborator, not part of the core), but every
// teacher-adjacent library in this lineage ships one, so this is the
// "outer surface" described in SPEC_FULL.md §3.3.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	runID := uuid.New()

	rootCmd := &cobra.Command{
		Use:           "mujson",
		Short:         "Inspect, reformat and validate JSON with the mu-json tokenizer",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	var maxTokens int
	rootCmd.PersistentFlags().IntVar(&maxTokens, "max-tokens", 4096, "capacity of the token array used to parse each file")

	rootCmd.AddCommand(
		newTokensCmd(runID, &maxTokens),
		newFmtCmd(runID, &maxTokens),
		newKeysCmd(runID, &maxTokens),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mujson: %v\n", err)
		os.Exit(1)
	}
}
