// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing scrapes the daily arXiv listing page into paper records.
// The page is a single <dl id="articles"> whose children alternate between
// <h3> section headers and <dt>/<dd> entry pairs; a small state machine
// tracks which section the walk is in.
package listing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/internal/httputil"
	"github.com/paperscout/paperscout/pkg/types"
)

// listingURL is the daily listing page. Declared as a var so tests can
// substitute an httptest server.
var listingURL = "https://arxiv.org/list/cs/new"

const absURLPrefix = "https://arxiv.org/abs/"

// section is the parsing state while walking the listing container.
type section int

const (
	sectionNone section = iota
	sectionNew
	sectionCross
	sectionStopped
)

// Scrape fetches the daily listing, parses it, and applies the shared
// filter. It fails soft: any transport or structural failure yields an
// empty result with a logged diagnostic, never an error.
func Scrape(ctx context.Context, client *http.Client, cfg types.ListingConfig, p filter.Params, sc types.ScoringConfig) []types.Paper {
	body, err := httputil.Get(ctx, client, listingURL, cfg.UserAgent)
	if err != nil {
		log.Warn().Err(err).Str("url", listingURL).Msg("listing fetch failed")
		return nil
	}

	papers, err := Parse(bytes.NewReader(body), p.Categories)
	if err != nil {
		log.Warn().Err(err).Msg("listing parse failed")
		return nil
	}

	return filter.Apply(papers, p, sc)
}

// Parse extracts paper records from listing-page HTML. Entries from the
// "New submissions" and "Cross submissions" sections are kept; everything
// from "Replacements" on is ignored. Entries missing a mandatory field
// (title, authors, subjects, identifier) or whose subjects fail the
// category filter are skipped without aborting the page.
func Parse(r io.Reader, categories []string) ([]types.Paper, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing listing HTML: %w", err)
	}

	articles := doc.Find("dl#articles").First()
	if articles.Length() == 0 {
		return nil, fmt.Errorf("article list not found on page")
	}

	state := sectionNone
	var papers []types.Paper

	articles.Children().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Is("h3") {
			text := s.Text()
			switch {
			case strings.Contains(text, "New submissions"):
				state = sectionNew
			case strings.Contains(text, "Cross submissions"):
				state = sectionCross
			case strings.Contains(text, "Replacements"):
				state = sectionStopped
				return false
			}
			return true
		}

		if (state != sectionNew && state != sectionCross) || !s.Is("dt") {
			return true
		}

		// An identifier block must have an adjacent detail block.
		dd := s.NextFiltered("dd")
		if dd.Length() == 0 {
			return true
		}

		titleDiv := dd.Find("div.list-title").First()
		authorsDiv := dd.Find("div.list-authors").First()
		subjectsDiv := dd.Find("div.list-subjects").First()
		idLink := s.Find(`a[title="Abstract"]`).First()

		if titleDiv.Length() == 0 || authorsDiv.Length() == 0 ||
			subjectsDiv.Length() == 0 || idLink.Length() == 0 {
			return true
		}

		abstract := ""
		if p := dd.Find("p.mathjax").First(); p.Length() > 0 {
			abstract = strings.TrimSpace(p.Text())
		}

		subjects := stripLabel(subjectsDiv.Text(), "Subjects:")
		if len(categories) > 0 && !filter.MatchesCategories(subjects, categories) {
			return true
		}

		id := stripLabel(idLink.Text(), "arXiv:")
		papers = append(papers, types.Paper{
			Title:    collapseNewlines(stripLabel(titleDiv.Text(), "Title:")),
			Authors:  collapseNewlines(stripLabel(authorsDiv.Text(), "Authors:")),
			Subjects: subjects,
			Abstract: abstract,
			URL:      absURLPrefix + id,
		})
		return true
	})

	return papers, nil
}

// stripLabel removes a leading field label and surrounding whitespace.
func stripLabel(text, label string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, label)
	return strings.TrimSpace(s)
}

// collapseNewlines folds line breaks in page text into single spaces.
func collapseNewlines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
