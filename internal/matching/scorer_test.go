package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

func intPtr(n int) *int { return &n }

func profileFromAnswers(userID string, answers *quiz.QuizAnswers) *MatchProfile {
	return &MatchProfile{
		UserID:      userID,
		DisplayName: userID,
		Answers:     answers,
		Traits:      quiz.AnalyzeTraits(answers),
		Preferences: quiz.ExtractMatchPreferences(answers),
		Property:    quiz.ExtractPropertyPreferences(answers),
	}
}

func tidyEarlyBird(userID string) *MatchProfile {
	return profileFromAnswers(userID, &quiz.QuizAnswers{
		Age:              26,
		Occupation:       "Full-time work",
		State:            "NSW",
		Cleanliness:      intPtr(9),
		Socialness:       intPtr(5),
		MorningPerson:    intPtr(8),
		NoiseSensitivity: intPtr(7),
		CookingFrequency: intPtr(6),
		CommonAreas:      intPtr(5),
		Dishes:           "Immediately after eating",
		Bedtime:          "Before 9pm",
		Guests:           "Rarely",
		Interests:        []string{"outdoors", "cooking", "reading"},
	})
}

func messyNightOwl(userID string) *MatchProfile {
	return profileFromAnswers(userID, &quiz.QuizAnswers{
		Age:              24,
		Occupation:       "Student",
		State:            "NSW",
		Cleanliness:      intPtr(2),
		Socialness:       intPtr(9),
		MorningPerson:    intPtr(1),
		NoiseSensitivity: intPtr(1),
		CookingFrequency: intPtr(1),
		CommonAreas:      intPtr(9),
		Dishes:           "Takeaway life",
		Bedtime:          "After 1am",
		Guests:           "Often",
		Interests:        []string{"partying", "gaming", "music"},
	})
}

func TestScoreBounded(t *testing.T) {
	engine := NewEngine()

	pairs := []struct {
		name string
		a, b *MatchProfile
	}{
		{"similar users", tidyEarlyBird("a"), tidyEarlyBird("b")},
		{"opposite users", tidyEarlyBird("a"), messyNightOwl("b")},
		{"empty answers", profileFromAnswers("a", nil), profileFromAnswers("b", nil)},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			score := engine.Score(tc.a, tc.b, nil)
			require.NotNil(t, score)

			for name, v := range map[string]int{
				"overall":      score.Overall,
				"personality":  score.Breakdown.Personality,
				"lifestyle":    score.Breakdown.Lifestyle,
				"preferences":  score.Breakdown.Preferences,
				"dealBreakers": score.Breakdown.DealBreakers,
			} {
				assert.GreaterOrEqual(t, v, 0, name)
				assert.LessOrEqual(t, v, 100, name)
			}
		})
	}
}

func TestScoreSymmetricSubScores(t *testing.T) {
	engine := NewEngine()
	a, b := tidyEarlyBird("a"), messyNightOwl("b")

	ab := engine.Score(a, b, nil)
	ba := engine.Score(b, a, nil)

	assert.Equal(t, ab.Breakdown.Personality, ba.Breakdown.Personality)
	assert.Equal(t, ab.Breakdown.Lifestyle, ba.Breakdown.Lifestyle)
	assert.Equal(t, ab.Breakdown.DealBreakers, ba.Breakdown.DealBreakers)
}

func TestScoreSimilarBeatsOpposite(t *testing.T) {
	engine := NewEngine()

	similar := engine.Score(tidyEarlyBird("a"), tidyEarlyBird("b"), nil)
	opposite := engine.Score(tidyEarlyBird("a"), messyNightOwl("c"), nil)

	assert.Greater(t, similar.Overall, opposite.Overall)
}

func TestScoreFallbackOnMalformedTraits(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		a, b *MatchProfile
	}{
		{"nil traits", &MatchProfile{UserID: "a", Answers: &quiz.QuizAnswers{Age: 25, State: "NSW"}}, tidyEarlyBird("b")},
		{
			"missing enum values",
			&MatchProfile{
				UserID:  "a",
				Answers: &quiz.QuizAnswers{Age: 25, State: "NSW", Occupation: "Student"},
				Traits:  &quiz.PersonalityTraits{Cleanliness: quiz.CleanModerate},
			},
			tidyEarlyBird("b"),
		},
		{"nil profile", nil, tidyEarlyBird("b")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var score *CompatibilityScore
			require.NotPanics(t, func() {
				score = engine.Score(tc.a, tc.b, nil)
			})
			require.NotNil(t, score)

			// Degraded mode: optimistic deal-breakers plus a generic notice.
			assert.Equal(t, 100, score.Breakdown.DealBreakers)
			require.NotEmpty(t, score.Concerns)
			assert.Contains(t, score.Concerns[0], "estimate")
			assert.GreaterOrEqual(t, score.Overall, 0)
			assert.LessOrEqual(t, score.Overall, 100)
		})
	}
}

func TestDealBreakerOverlapPenalty(t *testing.T) {
	engine := NewEngine()

	a := tidyEarlyBird("a")
	a.Preferences.DealBreakers = []string{quiz.DealBreakerNoSmoking}
	b := tidyEarlyBird("b")
	b.Preferences.DealBreakers = []string{quiz.DealBreakerNoSmoking, quiz.DealBreakerNoPets}

	score := engine.Score(a, b, nil)

	// One shared deal-breaker: 100 - 25.
	assert.Equal(t, 75, score.Breakdown.DealBreakers)
}

func TestDealBreakerFloor(t *testing.T) {
	engine := NewEngine()
	all := []string{
		quiz.DealBreakerNoSmoking, quiz.DealBreakerNoAlcohol,
		quiz.DealBreakerNoPets, quiz.DealBreakerNoParties,
	}

	a := tidyEarlyBird("a")
	a.Preferences.DealBreakers = all
	b := tidyEarlyBird("b")
	b.Preferences.DealBreakers = all

	score := engine.Score(a, b, nil)
	assert.Equal(t, 0, score.Breakdown.DealBreakers)
}

func TestScorePropertyOwnerMode(t *testing.T) {
	engine := NewEngine()
	owner := tidyEarlyBird("owner")
	pctx := &PropertyContext{IsPropertyOwner: true}

	reliable := engine.Score(owner, tidyEarlyBird("tenant"), pctx)
	risky := engine.Score(owner, messyNightOwl("tenant"), pctx)

	// Full-time, tidy, quiet tenant should screen better than a messy
	// frequent-guest student.
	assert.Greater(t, reliable.Breakdown.Preferences, risky.Breakdown.Preferences)
	assert.Greater(t, reliable.Overall, risky.Overall)
}

func TestScorePropertyOwnerInsights(t *testing.T) {
	engine := NewEngine()
	owner := tidyEarlyBird("owner")

	tenant := messyNightOwl("tenant")
	tenant.Answers.Age = 20

	score := engine.Score(owner, tenant, &PropertyContext{IsPropertyOwner: true})

	assert.Contains(t, score.Concerns, "Has guests over frequently")
	assert.Contains(t, score.Concerns, "Younger tenant with limited rental history")
	assert.Contains(t, score.Concerns, "Relaxed approach to cleaning")
}

func TestScoreInsights(t *testing.T) {
	engine := NewEngine()

	t.Run("matching cleanliness is a reason", func(t *testing.T) {
		score := engine.Score(tidyEarlyBird("a"), tidyEarlyBird("b"), nil)
		assert.Contains(t, score.MatchReasons, "You have matching cleanliness standards")
	})

	t.Run("opposite schedules and cleanliness gap are concerns", func(t *testing.T) {
		score := engine.Score(tidyEarlyBird("a"), messyNightOwl("b"), nil)
		assert.Contains(t, score.Concerns, "Very different cleanliness standards")
		assert.Contains(t, score.Concerns, "Opposite sleep schedules could cause friction")
		assert.Contains(t, score.Concerns, "No shared interests listed")
	})

	t.Run("three shared interests is a reason", func(t *testing.T) {
		a := tidyEarlyBird("a")
		b := tidyEarlyBird("b")
		score := engine.Score(a, b, nil)

		assert.Contains(t, strings.Join(score.MatchReasons, "\n"), "share 3 interests",
			"expected shared-interests reason, got %v", score.MatchReasons)
	})
}

func TestCleanlinessExampleFromQuiz(t *testing.T) {
	// Slider 9 plus immediate dishes clamps to 10 and lands in very_clean.
	traits := quiz.AnalyzeTraits(&quiz.QuizAnswers{
		Cleanliness: intPtr(9),
		Dishes:      "Immediately after eating",
	})
	assert.Equal(t, quiz.CleanVeryClean, traits.Cleanliness)
}
