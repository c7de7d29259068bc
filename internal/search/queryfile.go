// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/paperscout/paperscout/pkg/types"
)

// QueryFile is the on-disk snapshot of a search and its results. A search
// can be saved to a file and reloaded later without re-querying the API.
type QueryFile struct {
	Query   QueryParams   `yaml:"query"`
	Results []types.Paper `yaml:"results"`
	Summary QuerySummary  `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Categories []string `yaml:"categories,omitempty"`
	Keywords   []string `yaml:"keywords,omitempty"`
	Authors    []string `yaml:"authors,omitempty"`
	DateFrom   string   `yaml:"date_from,omitempty"`
	DateTo     string   `yaml:"date_to,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	SortedBy  string    `yaml:"sorted_by"`
	Timestamp time.Time `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, q Query, results []types.Paper) error {
	qf := QueryFile{
		Query: QueryParams{
			Categories: q.Categories,
			Keywords:   q.Keywords,
			Authors:    q.Authors,
		},
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			SortedBy:  q.SortKey(),
			Timestamp: time.Now(),
		},
	}
	if !q.From.IsZero() {
		qf.Query.DateFrom = q.From.Format(dateFmt)
	}
	if !q.To.IsZero() {
		qf.Query.DateTo = q.To.Format(dateFmt)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored QueryParams back into a Query struct.
func (p QueryParams) ToQuery() (Query, error) {
	q := Query{
		Categories: p.Categories,
		Keywords:   p.Keywords,
		Authors:    p.Authors,
	}
	var err error
	if q.From, err = ParseDate(p.DateFrom); err != nil {
		return q, err
	}
	if q.To, err = ParseDate(p.DateTo); err != nil {
		return q, err
	}
	return q, nil
}
