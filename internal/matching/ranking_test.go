package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatchesFiltersAndSorts(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	twin := tidyEarlyBird("twin")

	closeMatch := tidyEarlyBird("close")
	closeMatch.Answers.CookingFrequency = intPtr(3)

	// An opposite-lifestyle candidate lands under the default threshold.
	poorMatch := messyNightOwl("poor")

	matches := engine.FindBestMatches(user,
		[]*MatchProfile{poorMatch, closeMatch, twin}, nil, MatchOptions{})

	require.Len(t, matches, 2)
	assert.Equal(t, "twin", matches[0].UserID)
	assert.Equal(t, "close", matches[1].UserID)
	assert.Greater(t, matches[0].Overall, matches[1].Overall)
	assert.GreaterOrEqual(t, matches[1].Overall, DefaultMinimumScore)

	for _, m := range matches {
		assert.NotEqual(t, "poor", m.UserID)
	}
}

func TestFindBestMatchesExcludesSelf(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	matches := engine.FindBestMatches(user,
		[]*MatchProfile{user, tidyEarlyBird("other")}, nil, MatchOptions{})

	require.Len(t, matches, 1)
	assert.Equal(t, "other", matches[0].UserID)
}

func TestFindBestMatchesTruncates(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	var candidates []*MatchProfile
	for i := 0; i < 25; i++ {
		candidates = append(candidates, tidyEarlyBird(fmt.Sprintf("candidate-%d", i)))
	}

	matches := engine.FindBestMatches(user, candidates, nil, MatchOptions{})
	assert.Len(t, matches, DefaultMaxResults)

	matches = engine.FindBestMatches(user, candidates, nil, MatchOptions{MaxResults: 3})
	assert.Len(t, matches, 3)
}

func TestFindBestMatchesCustomMinimum(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	// With the bar on the floor even the opposite-lifestyle candidate
	// makes the list.
	matches := engine.FindBestMatches(user,
		[]*MatchProfile{messyNightOwl("poor")}, nil, MatchOptions{MinimumScore: 1})
	assert.Len(t, matches, 1)

	matches = engine.FindBestMatches(user,
		[]*MatchProfile{messyNightOwl("poor")}, nil, MatchOptions{MinimumScore: 99})
	assert.Empty(t, matches)
}

func TestFindBestMatchesSkipsNilCandidates(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	matches := engine.FindBestMatches(user,
		[]*MatchProfile{nil, tidyEarlyBird("other"), nil}, nil, MatchOptions{})
	require.Len(t, matches, 1)
	assert.Equal(t, "other", matches[0].UserID)
}

func TestFindBestMatchesCarriesBreakdownAndReasons(t *testing.T) {
	engine := NewEngine()
	user := tidyEarlyBird("user")

	matches := engine.FindBestMatches(user,
		[]*MatchProfile{tidyEarlyBird("other")}, nil, MatchOptions{})

	require.Len(t, matches, 1)
	assert.NotZero(t, matches[0].Breakdown.Personality)
	assert.NotEmpty(t, matches[0].MatchReasons)
}
