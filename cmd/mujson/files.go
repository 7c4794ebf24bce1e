package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/rdpoor/mu-json/token"
)

// sortedArgs returns args in a deterministic, lexicographic order so a
// batch run's log lines and output are reproducible regardless of
// shell globbing order.
func sortedArgs(args []string) []string {
	out := append([]string(nil), args...)
	slices.Sort(out)
	return out
}

// parseFile reads path and tokenizes it into a freshly allocated token
// array sized maxTokens. It is the common first step of every
// subcommand.
func parseFile(path string, maxTokens int) ([]byte, []token.Token, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tokens := make([]token.Token, maxTokens)
	count, err := token.Parse(input, tokens)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return input, tokens[:count], nil
}

func logRun(runID uuid.UUID, verb string, files []string) {
	log.Printf("run=%s %s files=%d", runID, verb, len(files))
}
