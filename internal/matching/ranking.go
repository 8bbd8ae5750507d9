package matching

import "sort"

// FindBestMatches scores the user against every candidate, filters by the
// minimum score, sorts descending and truncates. This is a full rescan per
// call; candidate pools are hundreds of profiles, not millions, so there is
// no pagination or precomputation here.
func (e *Engine) FindBestMatches(user *MatchProfile, candidates []*MatchProfile, pctx *PropertyContext, opts MatchOptions) []*CompatibilityMatch {
	if opts.MinimumScore <= 0 {
		opts.MinimumScore = DefaultMinimumScore
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}

	matches := make([]*CompatibilityMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil || candidate.UserID == user.UserID {
			continue
		}

		score := e.Score(user, candidate, pctx)
		if score.Overall < opts.MinimumScore {
			continue
		}

		matches = append(matches, &CompatibilityMatch{
			UserID:       candidate.UserID,
			DisplayName:  candidate.DisplayName,
			Overall:      score.Overall,
			Breakdown:    score.Breakdown,
			MatchReasons: score.MatchReasons,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Overall > matches[j].Overall
	})

	if len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}
	return matches
}
