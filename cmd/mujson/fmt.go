package main

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rdpoor/mu-json/emit"
	"github.com/rdpoor/mu-json/token"
)

func newFmtCmd(runID uuid.UUID, maxTokens *int) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Tokenize then re-emit canonical compact JSON (round-trip check)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := sortedArgs(args)
			logRun(runID, "fmt", files)
			for _, path := range files {
				input, tokens, err := parseFile(path, *maxTokens)
				if err != nil {
					return err
				}
				out, err := reemit(input, tokens)
				if err != nil {
					return err
				}
				fmt.Println(out)
			}
			return nil
		},
	}
}

// reemit drives the emitter over an already-tokenized document, one
// token at a time, exercising both halves of the core together
// (spec.md §8 property 7). Since the tokenizer never decodes escape
// sequences (spec.md §1's non-goal), every leaf value's raw token text
// is already valid JSON and is written with Literal rather than
// re-escaped through String.
func reemit(input []byte, tokens []token.Token) (string, error) {
	if len(tokens) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	levels := make([]emit.Level, token.MaxLevel+1)
	e := emit.New(emit.NewBuffer(&buf), levels)
	walk(e, input, tokens, 0)
	return buf.String(), nil
}

func walk(e *emit.Emitter, input []byte, tokens []token.Token, idx int) {
	t := tokens[idx]
	switch t.Kind() {
	case token.KindObject:
		e.ObjectOpen()
		for c := token.Child(tokens, idx); c != -1; c = token.SiblingNext(tokens, c) {
			walk(e, input, tokens, c)
		}
		e.ObjectClose()
	case token.KindArray:
		e.ArrayOpen()
		for c := token.Child(tokens, idx); c != -1; c = token.SiblingNext(tokens, c) {
			walk(e, input, tokens, c)
		}
		e.ArrayClose()
	default:
		e.Literal(t.Text(input))
	}
}
