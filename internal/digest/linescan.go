// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"strings"

	"github.com/paperscout/paperscout/pkg/types"
)

// field tracks which labeled section the scanner is accumulating.
type field int

const (
	fieldNone field = iota
	fieldTitle
	fieldAuthors
	fieldAbstract
)

// LineStrategy is the tolerant line scanner. It walks the digest line by
// line, switching accumulation on the known labels, and flushes a record
// at each rule line. A block that never produced all four fields is
// dropped at the flush, keeping acceptance atomic per block.
type LineStrategy struct{}

// Name returns the strategy identifier.
func (LineStrategy) Name() string { return "linescan" }

// Parse scans the digest sequentially and stops at the percent-dash
// terminator row.
func (LineStrategy) Parse(text string) []types.Paper {
	var papers []types.Paper
	var cur scanRecord
	active := fieldNone

	flush := func() {
		if p, ok := cur.paper(); ok {
			papers = append(papers, p)
		}
		cur = scanRecord{}
		active = fieldNone
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, terminatorPrefix) {
			break
		}
		if reRule.MatchString(line) {
			flush()
			continue
		}

		switch {
		case strings.HasPrefix(line, "arXiv:"):
			cur.id = firstToken(strings.TrimPrefix(line, "arXiv:"))
			active = fieldNone
		case strings.HasPrefix(line, "Title:"):
			cur.title = append(cur.title, strings.TrimSpace(strings.TrimPrefix(line, "Title:")))
			active = fieldTitle
		case strings.HasPrefix(line, "Authors:"):
			cur.authors = append(cur.authors, strings.TrimSpace(strings.TrimPrefix(line, "Authors:")))
			active = fieldAuthors
		case strings.HasPrefix(line, "Categories:"):
			// The abstract body follows the header block; the label line
			// itself and the paragraph markers are stripped later.
			cur.abstract = append(cur.abstract, strings.TrimSpace(line))
			active = fieldAbstract
		case strings.HasPrefix(line, `\\`) && strings.TrimSpace(line) != `\\`:
			// The closing marker carries the size and link suffix.
			if active == fieldAbstract {
				active = fieldNone
			}
		default:
			switch active {
			case fieldTitle:
				cur.title = append(cur.title, strings.TrimSpace(line))
			case fieldAuthors:
				cur.authors = append(cur.authors, strings.TrimSpace(line))
			case fieldAbstract:
				cur.abstract = append(cur.abstract, strings.TrimSpace(line))
			}
		}
	}
	flush()

	return papers
}

// scanRecord accumulates one block's fields during the scan.
type scanRecord struct {
	id       string
	title    []string
	authors  []string
	abstract []string
}

// paper assembles the record, requiring all four fields.
func (r scanRecord) paper() (types.Paper, bool) {
	title := collapseNewlines(strings.Join(r.title, " "))
	authors := collapseNewlines(strings.Join(r.authors, " "))
	abstract := cleanAbstract(strings.Join(r.abstract, " "))

	if r.id == "" || title == "" || authors == "" || abstract == "" {
		return types.Paper{}, false
	}
	return types.Paper{
		Title:    title,
		Authors:  authors,
		Abstract: collapseNewlines(abstract),
		URL:      absURLPrefix + r.id,
	}, true
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
