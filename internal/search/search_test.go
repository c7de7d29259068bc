// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/pkg/types"
)

func testCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "paperscout-test/0.1",
		},
		MaxResults: 25,
	}
}

// --- query construction ---

func TestQueryIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  bool
	}{
		{"empty", Query{}, true},
		{"categories", Query{Categories: []string{"cs.CV"}}, false},
		{"keywords", Query{Keywords: []string{"diffusion"}}, false},
		{"authors", Query{Authors: []string{"Smith"}}, false},
		{"date only", Query{From: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			"categories or-group",
			Query{Categories: []string{"cs.CV", "cs.LG"}},
			"(cat:cs.CV OR cat:cs.LG)",
		},
		{
			"single keyword",
			Query{Keywords: []string{"diffusion"}},
			"(ti:diffusion OR abs:diffusion)",
		},
		{
			"phrase keyword quoted",
			Query{Keywords: []string{"diffusion model"}},
			`(ti:"diffusion model" OR abs:"diffusion model")`,
		},
		{
			"author quoted",
			Query{Authors: []string{"Jane Smith"}},
			`au:"Jane Smith"`,
		},
		{
			"clauses joined with AND",
			Query{Categories: []string{"cs.CV"}, Keywords: []string{"gan"}},
			"(cat:cs.CV) AND (ti:gan OR abs:gan)",
		},
		{"empty", Query{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQueryDateRange(t *testing.T) {
	from := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	got := Query{From: from, To: to}.Build()
	want := "submittedDate:[20230501000000 TO 20230601000000]"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}

	// Missing start bound falls back to the epoch-like floor.
	got = Query{To: to}.Build()
	if !strings.HasPrefix(got, "submittedDate:[20000101000000 TO ") {
		t.Errorf("Build() = %q, want floor start bound", got)
	}

	// Missing end bound defaults to now.
	got = Query{From: from}.Build()
	thisYear := fmt.Sprintf("%d", time.Now().Year())
	if !strings.Contains(got, " TO "+thisYear) {
		t.Errorf("Build() = %q, want current-time end bound", got)
	}
}

func TestSortKey(t *testing.T) {
	if got := (Query{Keywords: []string{"x"}}).SortKey(); got != "relevance" {
		t.Errorf("SortKey with keywords = %q, want relevance", got)
	}
	if got := (Query{Categories: []string{"cs.CV"}}).SortKey(); got != "submittedDate" {
		t.Errorf("SortKey without keywords = %q, want submittedDate", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2023-13-45"); err == nil {
		t.Error("malformed date should be rejected")
	}
	if _, err := ParseDate("01/02/2023"); err == nil {
		t.Error("wrong layout should be rejected")
	}
	got, err := ParseDate("2023-05-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Year() != 2023 || got.Month() != time.May {
		t.Errorf("ParseDate = %v", got)
	}
	zero, err := ParseDate("")
	if err != nil || !zero.IsZero() {
		t.Error("empty string should parse to zero time")
	}
}

// --- API adapter ---

const sampleAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query Results</title>
  <entry>
    <id>http://arxiv.org/abs/1706.03762v1</id>
    <title>Attention Is All
 You Need</title>
    <summary>We propose a new architecture based
 solely on attention mechanisms.</summary>
    <published>2017-06-12T17:57:34Z</published>
    <link href="http://arxiv.org/abs/1706.03762v1" rel="alternate" type="text/html"/>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1810.04805v2</id>
    <title>BERT: Pre-training of Deep Bidirectional Transformers</title>
    <summary>We introduce BERT.</summary>
    <published>2018-10-11T00:00:00Z</published>
    <link href="http://arxiv.org/abs/1810.04805v2" rel="alternate" type="text/html"/>
    <author><name>Jacob Devlin</name></author>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
</feed>`

func TestRun(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, sampleAtomFeed)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	q := Query{Categories: []string{"cs.CL"}, Keywords: []string{"attention"}}
	papers, err := Run(context.Background(), ts.Client(), q, testCfg())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if gotQuery.Get("sortBy") != "relevance" {
		t.Errorf("sortBy = %q, want relevance", gotQuery.Get("sortBy"))
	}
	if gotQuery.Get("sortOrder") != "descending" {
		t.Errorf("sortOrder = %q", gotQuery.Get("sortOrder"))
	}
	if gotQuery.Get("max_results") != "25" {
		t.Errorf("max_results = %q", gotQuery.Get("max_results"))
	}
	if !strings.Contains(gotQuery.Get("search_query"), "cat:cs.CL") {
		t.Errorf("search_query = %q", gotQuery.Get("search_query"))
	}

	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.Title != "Attention Is All  You Need" && p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, want newlines collapsed", p.Title)
	}
	if p.Authors != "Ashish Vaswani, Noam Shazeer" {
		t.Errorf("Authors = %q", p.Authors)
	}
	if p.Subjects != "cs.CL, cs.LG" {
		t.Errorf("Subjects = %q", p.Subjects)
	}
	if p.URL != "http://arxiv.org/abs/1706.03762v1" {
		t.Errorf("URL = %q", p.URL)
	}
	if strings.Contains(p.Abstract, "\n") {
		t.Errorf("Abstract should have newlines collapsed: %q", p.Abstract)
	}
}

func TestRunEmptyQuery(t *testing.T) {
	_, err := Run(context.Background(), http.DefaultClient, Query{}, testCfg())
	if !errors.Is(err, filter.ErrNoCriteria) {
		t.Errorf("err = %v, want ErrNoCriteria", err)
	}
}

func TestRunFailsSoftOnTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	papers, err := Run(context.Background(), ts.Client(), Query{Keywords: []string{"x"}}, testCfg())
	if err != nil {
		t.Fatalf("transport failure should not surface an error, got %v", err)
	}
	if len(papers) != 0 {
		t.Errorf("transport failure should yield empty result, got %d", len(papers))
	}
}
