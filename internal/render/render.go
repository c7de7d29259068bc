// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes matched papers to a terminal with themed colors
// and whole-word keyword highlighting, or as JSON for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/pkg/types"
)

// Renderer formats papers for a terminal.
type Renderer struct {
	Theme     Theme
	Keywords  []string
	ShowScore bool
}

// New builds a renderer for the named theme and keyword set.
func New(theme string, keywords []string, showScore bool) Renderer {
	return Renderer{
		Theme:     ThemeFor(theme),
		Keywords:  keywords,
		ShowScore: showScore,
	}
}

// Papers writes one numbered record per paper. An empty slice prints a
// single notice line so scripted callers still get output.
func (r Renderer) Papers(w io.Writer, papers []types.Paper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No matching papers found.")
		return
	}

	kw := filter.KeywordPattern(r.Keywords)
	for i, p := range papers {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.field(r.Theme.Title, p.Title, kw))
		fmt.Fprintf(w, "   %s\n", r.field(r.Theme.Authors, p.Authors, kw))
		if p.Subjects != "" {
			fmt.Fprintf(w, "   %s\n", r.field(r.Theme.Subjects, p.Subjects, nil))
		}
		fmt.Fprintf(w, "   %s\n", r.field(r.Theme.Link, p.URL, nil))
		if p.Abstract != "" {
			fmt.Fprintf(w, "   %s\n", r.field(r.Theme.Abstract, p.Abstract, kw))
		}
		if r.ShowScore && p.RelevanceScore > 0 {
			fmt.Fprintf(w, "   score: %.4f\n", p.RelevanceScore)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d papers\n", len(papers))
}

// field colors a field value, switching to the highlight color for
// whole-word keyword matches. Coloring is applied per segment so the
// field color resumes after each match.
func (r Renderer) field(c *color.Color, s string, kw *regexp.Regexp) string {
	paint := func(seg string) string {
		if seg == "" || c == nil {
			return seg
		}
		return c.Sprint(seg)
	}
	if kw == nil || r.Theme.Highlight == nil {
		return paint(s)
	}

	var b strings.Builder
	last := 0
	for _, m := range kw.FindAllStringIndex(s, -1) {
		b.WriteString(paint(s[last:m[0]]))
		b.WriteString(r.Theme.Highlight.Sprint(s[m[0]:m[1]]))
		last = m[1]
	}
	b.WriteString(paint(s[last:]))
	return b.String()
}

// JSON writes the papers as an indented JSON array.
func JSON(w io.Writer, papers []types.Paper) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}
