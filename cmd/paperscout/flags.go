// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/internal/render"
	"github.com/paperscout/paperscout/pkg/types"
)

const (
	defaultMax = 10

	// --all caps: the listing page never carries more than a few
	// thousand entries per day; the search API refuses page sizes
	// above 2000.
	allCapDaily  = 9999
	allCapSearch = 2000
)

// baselineCategories is used by the daily and search commands when no
// categories are given.
var baselineCategories = []string{"cs.CV", "cs.LG", "cs.CL", "cs.AI", "cs.IR"}

// addFilterFlags registers the flags shared by every mode command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("keyword", "k", nil, "keyword phrases matched whole-word in title and abstract")
	cmd.Flags().StringSliceP("author", "a", nil, "author name fragments; all must match")
	cmd.Flags().Int("max", defaultMax, "maximum number of papers to return")
	cmd.Flags().Bool("all", false, "return all available results")
	cmd.Flags().Bool("json", false, "output results as JSON")
	cmd.Flags().Bool("score", false, "show relevance scores")
}

func addCategoryFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("category", "c", nil, "arXiv category codes to filter by (e.g. cs.CV, cs.*)")
}

// filterParams assembles engine parameters from the shared flags. allCap
// is the limit substituted when --all is given.
func filterParams(cmd *cobra.Command, allCap int) filter.Params {
	keywords, _ := cmd.Flags().GetStringSlice("keyword")
	authors, _ := cmd.Flags().GetStringSlice("author")
	categories, _ := cmd.Flags().GetStringSlice("category")
	limit, _ := cmd.Flags().GetInt("max")
	if all, _ := cmd.Flags().GetBool("all"); all {
		limit = allCap
	}

	return filter.Params{
		Categories: categories,
		Keywords:   keywords,
		Authors:    authors,
		Limit:      limit,
	}
}

// categoriesOrBaseline substitutes the baseline category set when none
// were given.
func categoriesOrBaseline(categories []string) []string {
	if len(categories) > 0 {
		return categories
	}
	log.Info().Strs("categories", baselineCategories).Msg("no category specified, using baseline")
	return baselineCategories
}

// emit renders the result set on stdout, as JSON when requested.
func emit(cmd *cobra.Command, cfg types.Config, p filter.Params, papers []types.Paper) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return render.JSON(cmd.OutOrStdout(), papers)
	}
	showScore, _ := cmd.Flags().GetBool("score")
	r := render.New(cfg.Render.Theme, highlightTerms(p), showScore)
	r.Papers(cmd.OutOrStdout(), papers)
	return nil
}

// highlightTerms splits the keyword phrases and author names into the
// individual words the renderer highlights.
func highlightTerms(p filter.Params) []string {
	var terms []string
	for _, kw := range p.Keywords {
		terms = append(terms, strings.Fields(kw)...)
	}
	for _, a := range p.Authors {
		terms = append(terms, strings.Fields(a)...)
	}
	return terms
}
