// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperscout pipeline.
package types

// Paper is the canonical record produced by every source adapter (daily
// listing, API search, mail digest). Records are created fresh per
// invocation and live only for the duration of one filter+render pass.
type Paper struct {
	// Title is the paper title with embedded newlines collapsed to spaces.
	Title string `json:"title" yaml:"title"`

	// Authors is the comma-joined author list as free text.
	Authors string `json:"authors" yaml:"authors"`

	// Subjects is the joined category label list (e.g. "Computer Vision
	// (cs.CV); Machine Learning (cs.LG)"). Empty for the mail digest
	// source, which carries no subject lines.
	Subjects string `json:"subjects,omitempty" yaml:"subjects,omitempty"`

	// Abstract is the normalized abstract body text.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is the canonical abstract-page link (.../abs/<id>).
	URL string `json:"url" yaml:"url"`

	// RelevanceScore is the weighted keyword-match score. It is set only
	// when keyword ranking was requested; higher means more relevant.
	RelevanceScore float64 `json:"relevance_score,omitempty" yaml:"relevance_score,omitempty"`
}
