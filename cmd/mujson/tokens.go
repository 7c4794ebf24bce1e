package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rdpoor/mu-json/token"
)

func newTokensCmd(runID uuid.UUID, maxTokens *int) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>...",
		Short: "Print the preorder token list for one or more JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := sortedArgs(args)
			logRun(runID, "tokens", files)
			for _, path := range files {
				input, tokens, err := parseFile(path, *maxTokens)
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n%s", path, token.Dump(input, tokens, len(tokens)))
			}
			return nil
		},
	}
}
