// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paperscout/paperscout/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the arXiv database via the public API",
	Long: `Search queries the arXiv API with the given categories, keywords,
authors, and submission date range. Results arrive ranked by the service,
by relevance when keywords are given and by submission date otherwise.

At least one search criterion is required.`,
	RunE: runSearch,
}

func init() {
	addFilterFlags(searchCmd)
	addCategoryFlag(searchCmd)
	searchCmd.Flags().String("start-date", "", "submission date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("end-date", "", "submission date range end (YYYY-MM-DD)")
	searchCmd.Flags().String("save", "", "write the query and results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p := filterParams(cmd, 0)
	p.Categories = categoriesOrBaseline(p.Categories)

	startStr, _ := cmd.Flags().GetString("start-date")
	endStr, _ := cmd.Flags().GetString("end-date")
	from, err := search.ParseDate(startStr)
	if err != nil {
		return fmt.Errorf("invalid --start-date: %w", err)
	}
	to, err := search.ParseDate(endStr)
	if err != nil {
		return fmt.Errorf("invalid --end-date: %w", err)
	}

	q := search.Query{
		Categories: p.Categories,
		Keywords:   p.Keywords,
		Authors:    p.Authors,
		From:       from,
		To:         to,
	}

	// The API does the limiting; the local limit stays unbounded.
	if p.Limit > 0 {
		cfg.Search.MaxResults = p.Limit
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		cfg.Search.MaxResults = allCapSearch
	}
	p.Limit = 0

	client := &http.Client{Timeout: cfg.Search.Timeout}
	papers, err := search.Run(cmd.Context(), client, q, cfg.Search)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, q, papers); err != nil {
			return fmt.Errorf("saving query file: %w", err)
		}
		log.Info().Str("path", savePath).Msg("query file written")
	}

	return emit(cmd, cfg, p, papers)
}
