// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the network-backed adapters.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The
	// daily listing page rejects the default Go client string, so a
	// browser-like value is used there.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ListingConfig holds settings for the daily listing scraper.
type ListingConfig struct {
	HTTPConfig `yaml:",inline"`
}

// SearchConfig holds settings for the API search adapter.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the number of results requested from the API.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DigestConfig holds settings for the mail digest parser.
type DigestConfig struct {
	// Path is the digest text file location (default "mail_text.txt").
	Path string `json:"path" yaml:"path"`

	// Strategy selects the extraction strategy: "regex" (label-anchored,
	// default) or "linescan" (tolerant line scanner).
	Strategy string `json:"strategy" yaml:"strategy"`

	// FetchScript is the mail-automation script invoked by the optional
	// pre-fetch step to regenerate the digest file.
	FetchScript string `json:"fetch_script" yaml:"fetch_script"`
}

// ScoringPolicy selects the relevance-scoring formula.
type ScoringPolicy string

const (
	// ScoringNormalized divides match counts by field word counts before
	// weighting. Default title weight 2.0.
	ScoringNormalized ScoringPolicy = "normalized"

	// ScoringCount uses raw match counts. Default title weight 3.0.
	ScoringCount ScoringPolicy = "count"
)

// ScoringConfig holds the relevance-scoring tuning. Both policies exist in
// the field; neither strictly dominates, so the choice is configuration.
type ScoringConfig struct {
	// Policy selects the scoring formula (default "normalized").
	Policy ScoringPolicy `json:"policy" yaml:"policy"`

	// TitleWeight multiplies the title contribution. Zero means the
	// policy default (2.0 normalized, 3.0 count).
	TitleWeight float64 `json:"title_weight" yaml:"title_weight"`
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	// Theme names the color theme (vibrant, solarized, classic, nordic).
	Theme string `json:"theme" yaml:"theme"`
}

// Config groups all component configurations.
type Config struct {
	Listing ListingConfig `json:"listing" yaml:"listing"`
	Search  SearchConfig  `json:"search" yaml:"search"`
	Digest  DigestConfig  `json:"digest" yaml:"digest"`
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	Render  RenderConfig  `json:"render" yaml:"render"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Listing: ListingConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "Mozilla/5.0",
			},
		},
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "paperscout/0.1",
			},
			MaxResults: 25,
		},
		Digest: DigestConfig{
			Path:     "mail_text.txt",
			Strategy: "regex",
		},
		Scoring: ScoringConfig{
			Policy: ScoringNormalized,
		},
		Render: RenderConfig{
			Theme: "nordic",
		},
	}
}
