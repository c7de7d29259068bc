// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest parses the plaintext arXiv mailing digest into paper
// records. Two extraction strategies exist behind one interface: a
// label-anchored regex strategy (default) and a tolerant line scanner.
// Both accept a block only when every required field is found, so a
// malformed block never yields a partial record.
package digest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/paperscout/paperscout/pkg/types"
)

// ErrNoDigest distinguishes a missing digest file from a digest that
// legitimately contained no papers.
var ErrNoDigest = errors.New("digest file not found")

const absURLPrefix = "https://arxiv.org/abs/"

// reRule matches the horizontal-rule line separating paper blocks.
var reRule = regexp.MustCompile(`(?m)^-{20,}\s*$`)

// terminatorPrefix starts the percent-dash row ending the digest body.
const terminatorPrefix = "%%--"

// Strategy extracts paper records from digest text.
type Strategy interface {
	Name() string
	Parse(text string) []types.Paper
}

// StrategyFor returns the configured strategy. Unknown names fall back to
// the regex default.
func StrategyFor(name string) Strategy {
	if name == "linescan" {
		return LineStrategy{}
	}
	return RegexStrategy{}
}

// ParseFile reads the digest file and extracts records with the given
// strategy. A missing file is reported as ErrNoDigest.
func ParseFile(path string, s Strategy) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDigest, path)
		}
		return nil, fmt.Errorf("reading digest %s: %w", path, err)
	}
	return s.Parse(string(data)), nil
}

// cleanAbstract strips the leading editorial artifact: everything up to
// and including the first double-backslash marker is discarded and any
// later markers collapse to spaces.
func cleanAbstract(s string) string {
	parts := strings.Split(s, `\\`)
	if len(parts) > 1 {
		return strings.TrimSpace(strings.Join(parts[1:], " "))
	}
	return strings.TrimSpace(s)
}

// collapseNewlines folds the digest's hard-wrapped lines into one line.
func collapseNewlines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateAtTerminator drops everything from the percent-dash row on.
func truncateAtTerminator(text string) string {
	for i, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, terminatorPrefix) {
			return strings.Join(strings.Split(text, "\n")[:i], "\n")
		}
	}
	return text
}
