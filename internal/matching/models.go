package matching

import (
	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

// MatchProfile is one side of a pairwise score: a user's answers plus the
// records derived from them. Assembled by the service layer from storage.
type MatchProfile struct {
	UserID      string                    `json:"user_id"`
	DisplayName string                    `json:"display_name"`
	Answers     *quiz.QuizAnswers         `json:"answers"`
	Traits      *quiz.PersonalityTraits   `json:"traits"`
	Preferences *quiz.MatchPreferences    `json:"preferences"`
	Property    *quiz.PropertyPreferences `json:"property"`
}

// PropertyContext switches the scorer into landlord/tenant mode, where one
// side of the match is assessing a prospective tenant rather than a peer.
type PropertyContext struct {
	IsPropertyOwner      bool                      `json:"is_property_owner"`
	PropertyRequirements *quiz.PropertyPreferences `json:"property_requirements,omitempty"`
	HouseRules           []string                  `json:"house_rules,omitempty"`
}

// ScoreBreakdown holds the four sub-scores behind an overall score, each
// 0-100. In property-owner mode Preferences carries the tenant-reliability
// score instead.
type ScoreBreakdown struct {
	Personality  int `json:"personality"`
	Lifestyle    int `json:"lifestyle"`
	Preferences  int `json:"preferences"`
	DealBreakers int `json:"dealBreakers"`
}

// CompatibilityScore is a view computed fresh on every query. The inputs
// are persisted; the score never is.
type CompatibilityScore struct {
	Overall      int            `json:"overall"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	MatchReasons []string       `json:"matchReasons"`
	Concerns     []string       `json:"concerns"`
}

// CompatibilityMatch is one ranked entry from a best-matches query.
type CompatibilityMatch struct {
	UserID       string         `json:"user_id"`
	DisplayName  string         `json:"display_name"`
	Overall      int            `json:"overall"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	MatchReasons []string       `json:"matchReasons"`
}

// MatchOptions tunes a best-matches query.
type MatchOptions struct {
	MinimumScore int `json:"minimum_score"`
	MaxResults   int `json:"max_results"`
}

// Ranking defaults
const (
	DefaultMinimumScore = 60
	DefaultMaxResults   = 10
)
