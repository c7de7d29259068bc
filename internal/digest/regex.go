// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"regexp"

	"github.com/paperscout/paperscout/pkg/types"
)

var (
	// reArxivID matches the modern identifier form: four digits, a dot,
	// five digits.
	reArxivID = regexp.MustCompile(`arXiv:(\d{4}\.\d{5})`)

	// reTitle captures everything between the Title: and Authors: labels.
	reTitle = regexp.MustCompile(`(?s)Title:\s*(.*?)\s*Authors:`)

	// reAuthors captures the rest of the Authors: line.
	reAuthors = regexp.MustCompile(`Authors:\s*(.+)`)

	// reAbstract captures the paragraph between the backslash markers
	// that follow the last header line (Comments: or Categories:).
	reAbstract = regexp.MustCompile(`(?s)(?:Comments|Categories):[^\n]*\n\\\\\n(.*?)\n\\\\`)
)

// RegexStrategy is the label-anchored extraction strategy. Each block is
// searched independently for the identifier, title, authors, and abstract;
// a block missing any of the four is discarded whole.
type RegexStrategy struct{}

// Name returns the strategy identifier.
func (RegexStrategy) Name() string { return "regex" }

// Parse splits the digest into blocks on the horizontal-rule lines and
// extracts one record per well-formed block.
func (RegexStrategy) Parse(text string) []types.Paper {
	text = truncateAtTerminator(text)

	var papers []types.Paper
	for _, block := range reRule.Split(text, -1) {
		p, ok := parseBlock(block)
		if ok {
			papers = append(papers, p)
		}
	}
	return papers
}

func parseBlock(block string) (types.Paper, bool) {
	id := reArxivID.FindStringSubmatch(block)
	title := reTitle.FindStringSubmatch(block)
	authors := reAuthors.FindStringSubmatch(block)
	abstract := reAbstract.FindStringSubmatch(block)

	if id == nil || title == nil || authors == nil || abstract == nil {
		return types.Paper{}, false
	}

	return types.Paper{
		Title:    collapseNewlines(title[1]),
		Authors:  collapseNewlines(authors[1]),
		Abstract: cleanAbstract(collapseNewlines(abstract[1])),
		URL:      absURLPrefix + id[1],
	}, true
}
