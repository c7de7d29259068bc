// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/paperscout/paperscout/internal/listing"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Scrape the daily arXiv new-submissions page",
	Long: `Daily scrapes arxiv.org/list/cs/new, keeps the new and cross-listed
submissions matching the filters, and ranks them by keyword relevance.
A fetch or parse failure yields an empty result set rather than an error.`,
	RunE: runDaily,
}

func init() {
	addFilterFlags(dailyCmd)
	addCategoryFlag(dailyCmd)

	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p := filterParams(cmd, allCapDaily)
	p.Categories = categoriesOrBaseline(p.Categories)

	client := &http.Client{Timeout: cfg.Listing.Timeout}
	papers := listing.Scrape(cmd.Context(), client, cfg.Listing, p, cfg.Scoring)

	return emit(cmd, cfg, p, papers)
}
