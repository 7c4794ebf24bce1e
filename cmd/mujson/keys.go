package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rdpoor/mu-json/internal/keyset"
	"github.com/rdpoor/mu-json/token"
)

func newKeysCmd(runID uuid.UUID, maxTokens *int) *cobra.Command {
	var tableSize int
	cmd := &cobra.Command{
		Use:   "keys <file>...",
		Short: "Report duplicate object keys in one or more JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := sortedArgs(args)
			logRun(runID, "keys", files)
			table := make([]keyset.Slot, tableSize)
			for _, path := range files {
				input, tokens, err := parseFile(path, *maxTokens)
				if err != nil {
					return err
				}
				found := false
				for i, tok := range tokens {
					if tok.Kind() != token.KindObject {
						continue
					}
					report, err := keyset.Scan(input, tokens, i, table)
					if err != nil {
						return fmt.Errorf("scanning %s: %w", path, err)
					}
					for _, dupIdx := range report.Duplicates {
						found = true
						fmt.Printf("%s: duplicate key %s at token %d\n", path, tokens[dupIdx].Text(input), dupIdx)
					}
				}
				if !found {
					fmt.Printf("%s: no duplicate keys\n", path)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&tableSize, "table-size", 64, "capacity of the duplicate-key hash table")
	return cmd
}
