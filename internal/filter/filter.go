// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter applies category, keyword, and author filters to paper
// records and ranks survivors by weighted keyword relevance. All three
// source adapters share this engine; it is a pure pass over in-memory
// records with no I/O.
package filter

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/paperscout/paperscout/pkg/types"
)

// ErrNoCriteria is returned by callers that require at least one filter
// clause (the API search cannot query the remote service without one).
var ErrNoCriteria = errors.New("no search criteria supplied: provide keywords, authors, or categories")

// Params holds the filter parameters shared by all modes.
type Params struct {
	// Categories is the set of category codes to keep (case-insensitive).
	// A wildcard token ("*" or "cs.*") matches everything. Empty means
	// no category filtering.
	Categories []string

	// Keywords are phrases matched whole-word, case-insensitive, against
	// title+abstract. Empty means no keyword filtering and no ranking.
	Keywords []string

	// Authors are name fragments; a record passes only if every fragment
	// is a case-insensitive substring of its authors field.
	Authors []string

	// Limit caps the result count. Zero means unbounded.
	Limit int

	// SearchAuthors widens the keyword search text to include the
	// authors field (used by the mail digest mode, whose records carry
	// no subjects to filter on).
	SearchAuthors bool
}

// IsEmpty reports whether no filter clause is set.
func (p Params) IsEmpty() bool {
	return len(p.Categories) == 0 && len(p.Keywords) == 0 && len(p.Authors) == 0
}

// Apply filters papers in source order and, when keywords are given,
// computes relevance scores and sorts descending. The sort is stable:
// equal scores keep their source order. Malformed individual records
// were discarded upstream; Apply never fails.
func Apply(papers []types.Paper, p Params, sc types.ScoringConfig) []types.Paper {
	var kwPattern *regexp.Regexp
	if len(p.Keywords) > 0 {
		kwPattern = KeywordPattern(p.Keywords)
	}

	kept := make([]types.Paper, 0, len(papers))
	for _, paper := range papers {
		if len(p.Categories) > 0 && !MatchesCategories(paper.Subjects, p.Categories) {
			continue
		}
		if kwPattern != nil {
			text := paper.Title + " " + paper.Abstract
			if p.SearchAuthors {
				text += " " + paper.Authors
			}
			if !kwPattern.MatchString(text) {
				continue
			}
		}
		if !matchesAuthors(paper.Authors, p.Authors) {
			continue
		}
		kept = append(kept, paper)
	}

	if kwPattern != nil {
		for i := range kept {
			kept[i].RelevanceScore = score(kept[i], kwPattern, sc)
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].RelevanceScore > kept[j].RelevanceScore
		})
	}

	if p.Limit > 0 && len(kept) > p.Limit {
		kept = kept[:p.Limit]
	}
	return kept
}

// KeywordPattern compiles the whole-word, case-insensitive alternation for
// the given phrases. Phrases keep their internal spaces, so a multi-word
// phrase matches only as a contiguous run.
func KeywordPattern(keywords []string) *regexp.Regexp {
	if len(keywords) == 0 {
		return nil
	}
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(kw))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// MatchesCategories reports whether the record's subjects string shares at
// least one category code with the filter set. A wildcard filter token
// disables the check entirely.
func MatchesCategories(subjects string, categories []string) bool {
	for _, c := range categories {
		if c == "*" || strings.HasSuffix(c, ".*") {
			return true
		}
	}

	codes := SubjectCodes(subjects)
	for _, c := range categories {
		if codes[strings.ToLower(strings.TrimSpace(c))] {
			return true
		}
	}
	return false
}

// SubjectCodes parses a subjects string like "Computer Vision (cs.CV);
// Machine Learning (cs.LG)" into a lowercased set of short codes. Labels
// without a parenthesized code contribute their trimmed text.
func SubjectCodes(subjects string) map[string]bool {
	codes := make(map[string]bool)
	parts := strings.FieldsFunc(subjects, func(r rune) bool {
		return r == ';' || r == ','
	})
	for _, part := range parts {
		s := part
		if i := strings.LastIndex(s, "("); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ")"))
		if s != "" {
			codes[strings.ToLower(s)] = true
		}
	}
	return codes
}

func matchesAuthors(authors string, fragments []string) bool {
	lower := strings.ToLower(authors)
	for _, f := range fragments {
		if !strings.Contains(lower, strings.ToLower(f)) {
			return false
		}
	}
	return true
}
