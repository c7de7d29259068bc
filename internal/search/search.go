// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the arXiv search API and maps its Atom feed into
// paper records. Filtering happens server-side through the query string;
// the caller may re-apply the shared filter for consistency.
package search

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog/log"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/internal/httputil"
	"github.com/paperscout/paperscout/pkg/types"
)

// searchAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var searchAPIBase = "https://export.arxiv.org/api/query"

// Run executes the query against the search API. An empty query is an
// input validation failure (filter.ErrNoCriteria) reported before any
// network call; transport and feed-parse failures are logged and yield an
// empty result so the caller treats them as "no results".
func Run(ctx context.Context, client *http.Client, q Query, cfg types.SearchConfig) ([]types.Paper, error) {
	if q.IsEmpty() {
		return nil, filter.ErrNoCriteria
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 25
	}

	vals := url.Values{}
	vals.Set("search_query", q.Build())
	vals.Set("start", "0")
	vals.Set("max_results", strconv.Itoa(maxResults))
	vals.Set("sortBy", q.SortKey())
	vals.Set("sortOrder", "descending")
	fullURL := searchAPIBase + "?" + vals.Encode()

	body, err := httputil.Get(ctx, client, fullURL, cfg.UserAgent)
	if err != nil {
		log.Warn().Err(err).Msg("search API request failed")
		return nil, nil
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("search feed parse failed")
		return nil, nil
	}

	return mapFeed(feed), nil
}

// mapFeed converts feed entries into paper records: newlines in title and
// summary collapse to single spaces, author names and category terms join
// with ", ", and the link is taken verbatim.
func mapFeed(feed *gofeed.Feed) []types.Paper {
	papers := make([]types.Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		names := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			if a != nil && a.Name != "" {
				names = append(names, strings.TrimSpace(a.Name))
			}
		}

		papers = append(papers, types.Paper{
			Title:    collapseNewlines(item.Title),
			Authors:  strings.Join(names, ", "),
			Subjects: strings.Join(item.Categories, ", "),
			Abstract: collapseNewlines(item.Description),
			URL:      item.Link,
		})
	}
	return papers
}

func collapseNewlines(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
