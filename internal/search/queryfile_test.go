// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/paperscout/paperscout/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")

	q := Query{
		Categories: []string{"cs.CV"},
		Keywords:   []string{"diffusion model"},
		From:       time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	results := []types.Paper{
		{Title: "Paper A", Authors: "Smith", URL: "https://arxiv.org/abs/2301.00001", RelevanceScore: 0.9},
	}

	if err := WriteQueryFile(path, q, results); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}
	if qf.Summary.Total != 1 {
		t.Errorf("Total = %d, want 1", qf.Summary.Total)
	}
	if qf.Summary.SortedBy != "relevance" {
		t.Errorf("SortedBy = %q", qf.Summary.SortedBy)
	}
	if len(qf.Results) != 1 || qf.Results[0].Title != "Paper A" {
		t.Errorf("Results = %v", qf.Results)
	}

	back, err := qf.Query.ToQuery()
	if err != nil {
		t.Fatalf("ToQuery: %v", err)
	}
	if !back.From.Equal(q.From) {
		t.Errorf("From = %v, want %v", back.From, q.From)
	}
	if len(back.Keywords) != 1 || back.Keywords[0] != "diffusion model" {
		t.Errorf("Keywords = %v", back.Keywords)
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}
