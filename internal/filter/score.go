// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"regexp"
	"strings"

	"github.com/paperscout/paperscout/pkg/types"
)

// Policy defaults. Two tunings exist in observed use: the normalized
// formula favors short, dense titles; the raw count favors long abstracts
// with many hits.
const (
	defaultNormalizedTitleWeight = 2.0
	defaultCountTitleWeight      = 3.0
)

// score computes the relevance score for one record under the configured
// policy. Whole-word keyword occurrences are counted separately in title
// and abstract; a multi-word phrase counts once per contiguous occurrence.
func score(p types.Paper, kw *regexp.Regexp, sc types.ScoringConfig) float64 {
	titleMatches := len(kw.FindAllString(p.Title, -1))
	abstractMatches := len(kw.FindAllString(p.Abstract, -1))

	switch sc.Policy {
	case types.ScoringCount:
		return float64(titleMatches)*titleWeight(sc) + float64(abstractMatches)
	default:
		// Frequency-normalized. Empty fields contribute zero rather
		// than dividing by zero.
		var titleFreq, abstractFreq float64
		if n := len(strings.Fields(p.Title)); n > 0 {
			titleFreq = float64(titleMatches) / float64(n)
		}
		if n := len(strings.Fields(p.Abstract)); n > 0 {
			abstractFreq = float64(abstractMatches) / float64(n)
		}
		return titleFreq*titleWeight(sc) + abstractFreq
	}
}

func titleWeight(sc types.ScoringConfig) float64 {
	if sc.TitleWeight > 0 {
		return sc.TitleWeight
	}
	if sc.Policy == types.ScoringCount {
		return defaultCountTitleWeight
	}
	return defaultNormalizedTitleWeight
}
