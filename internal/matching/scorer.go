package matching

import (
	"errors"
	"math"
	"strings"

	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

var errMalformedProfile = errors.New("profile is missing trait data")

// Engine computes pairwise compatibility. Stateless and safe for
// concurrent use; identical inputs always produce identical output.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Sub-score weights. The property-owner variant swaps the generic
// preferences factor for a tenant-reliability score.
const (
	weightPersonality = 0.4
	weightLifestyle   = 0.3
	weightPreferences = 0.2
	weightDealBreaker = 0.1

	ownerWeightPersonality = 0.35
	ownerWeightLifestyle   = 0.25
	ownerWeightProperty    = 0.25
	ownerWeightDealBreaker = 0.15
)

// Score computes the compatibility between two users. It never fails: if
// the primary computation cannot run (malformed or missing trait data),
// the degraded fallbackScore is returned instead. The failure path is part
// of the contract, not an accident - a rough estimate beats an error page
// on a matching screen.
func (e *Engine) Score(a, b *MatchProfile, pctx *PropertyContext) *CompatibilityScore {
	mode := "peer"
	if pctx != nil && pctx.IsPropertyOwner {
		mode = "owner"
	}

	score, err := e.compute(a, b, pctx)
	if err != nil {
		RecordFallback()
		score = e.fallbackScore(a, b)
	}
	RecordScore(mode, score.Overall)
	return score
}

func (e *Engine) compute(a, b *MatchProfile, pctx *PropertyContext) (*CompatibilityScore, error) {
	if a == nil || b == nil {
		return nil, errMalformedProfile
	}
	if err := checkTraits(a.Traits); err != nil {
		return nil, err
	}
	if err := checkTraits(b.Traits); err != nil {
		return nil, err
	}

	personality := e.personalityScore(a.Traits, b.Traits)
	lifestyle := e.lifestyleScore(a, b)
	dealBreakers := e.dealBreakerScore(a.Preferences, b.Preferences)

	breakdown := ScoreBreakdown{
		Personality:  personality,
		Lifestyle:    lifestyle,
		DealBreakers: dealBreakers,
	}

	var overall int
	if pctx != nil && pctx.IsPropertyOwner {
		breakdown.Preferences = e.tenantReliabilityScore(b)
		overall = roundScore(
			float64(personality)*ownerWeightPersonality +
				float64(lifestyle)*ownerWeightLifestyle +
				float64(breakdown.Preferences)*ownerWeightProperty +
				float64(dealBreakers)*ownerWeightDealBreaker)
	} else {
		breakdown.Preferences = e.preferencesScore(a.Preferences, b.Preferences)
		overall = roundScore(
			float64(personality)*weightPersonality +
				float64(lifestyle)*weightLifestyle +
				float64(breakdown.Preferences)*weightPreferences +
				float64(dealBreakers)*weightDealBreaker)
	}

	reasons, concerns := e.generateInsights(a, b, pctx)

	return &CompatibilityScore{
		Overall:      clampScore(overall),
		Breakdown:    breakdown,
		MatchReasons: reasons,
		Concerns:     concerns,
	}, nil
}

// checkTraits rejects vectors with missing values. Unknown but present
// values are tolerated (the matrices default them to 60); absent ones mean
// the record was never derived properly and the fallback path should run.
func checkTraits(t *quiz.PersonalityTraits) error {
	if t == nil {
		return errMalformedProfile
	}
	fields := []string{
		t.Lifestyle, t.SocialEnergy, t.Cleanliness, t.Schedule,
		t.NoiseTolerance, t.GuestPolicy, t.CommunicationStyle,
		t.ConflictResolution, t.SharedSpaces, t.PersonalSpace,
		t.FinancialApproach, t.LongTermGoals,
	}
	for _, f := range fields {
		if f == "" {
			return errMalformedProfile
		}
	}
	return nil
}

// personalityScore is the weighted sum of the nine matrix comparisons.
// Symmetric in its arguments because every table is symmetric.
func (e *Engine) personalityScore(a, b *quiz.PersonalityTraits) int {
	total := 0
	for _, tw := range traitWeights {
		total += lookupTraitScore(tw.table, tw.get(a), tw.get(b)) * tw.weight
	}
	return clampScore(total / 100)
}

// lifestyleScore averages three normalized distances: cooking habits,
// common-area usage and interest overlap.
func (e *Engine) lifestyleScore(a, b *MatchProfile) int {
	aAns, bAns := answersOr(a.Answers), answersOr(b.Answers)

	cookingDiff := absInt(sliderValue(aAns.CookingFrequency) - sliderValue(bAns.CookingFrequency))
	cooking := maxInt(0, 100-10*cookingDiff)

	commonDiff := absInt(sliderValue(aAns.CommonAreas) - sliderValue(bAns.CommonAreas))
	common := maxInt(0, 100-12*commonDiff)

	interests := interestOverlapScore(aAns.Interests, bAns.Interests)

	return clampScore((cooking + common + interests) / 3)
}

// interestOverlapScore is Jaccard similarity scaled to 0-100, with a
// neutral 50 when neither user listed anything.
func interestOverlapScore(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 50
	}
	shared := sharedStrings(a, b)
	union := len(a) + len(b) - len(shared)
	if union == 0 {
		return 50
	}
	return int(float64(len(shared)) / float64(union) * 100)
}

// preferencesScore averages the age-window overlap ratio with the location
// overlap ratio.
func (e *Engine) preferencesScore(a, b *quiz.MatchPreferences) int {
	a, b = prefsOr(a), prefsOr(b)
	age := ageOverlapScore(a.AgeRange, b.AgeRange)
	location := locationOverlapScore(a.LocationPreferences, b.LocationPreferences)
	return clampScore((age + location) / 2)
}

func ageOverlapScore(a, b [2]int) int {
	overlap := minInt(a[1], b[1]) - maxInt(a[0], b[0])
	if overlap < 0 {
		overlap = 0
	}
	span := maxInt(a[1], b[1]) - minInt(a[0], b[0])
	if span <= 0 {
		return 100
	}
	return int(float64(overlap) / float64(span) * 100)
}

// locationOverlapScore counts a match whenever either location string
// contains the other, case-insensitive, so "Newtown" pairs with
// "Newtown NSW". Neutral 50 when neither side listed locations.
func locationOverlapScore(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 50
	}
	matched := 0
	total := len(a) + len(b)
	for _, loc := range a {
		if hasLocationMatch(loc, b) {
			matched++
		}
	}
	for _, loc := range b {
		if hasLocationMatch(loc, a) {
			matched++
		}
	}
	return int(float64(matched) / float64(total) * 100)
}

func hasLocationMatch(loc string, candidates []string) bool {
	loc = strings.ToLower(loc)
	for _, c := range candidates {
		c = strings.ToLower(c)
		if strings.Contains(loc, c) || strings.Contains(c, loc) {
			return true
		}
	}
	return false
}

// dealBreakerScore penalizes 25 points per deal-breaker both users share.
// Note the asymmetry: two users who both hate smoking are treated as a
// conflict, not a match. Behavior preserved as-is pending product review.
func (e *Engine) dealBreakerScore(a, b *quiz.MatchPreferences) int {
	a, b = prefsOr(a), prefsOr(b)
	shared := sharedStrings(a.DealBreakers, b.DealBreakers)
	return maxInt(0, 100-25*len(shared))
}

// tenantReliabilityScore sizes up a prospective tenant for a property
// owner. Starts from a base of 75 and adjusts on household-discipline
// signals.
func (e *Engine) tenantReliabilityScore(tenant *MatchProfile) int {
	score := 75
	ans := answersOr(tenant.Answers)

	if tenant.Traits != nil {
		switch tenant.Traits.Cleanliness {
		case quiz.CleanVeryClean:
			score += 10
		case quiz.CleanModerate:
			score += 5
		case quiz.CleanRelaxed:
			score -= 10
		}
		switch tenant.Traits.GuestPolicy {
		case quiz.GuestsMinimal:
			score += 5
		case quiz.GuestsFrequent:
			score -= 10
		}
		if tenant.Traits.NoiseTolerance == quiz.NoiseLow {
			score += 5
		}
		if tenant.Traits.CommunicationStyle == quiz.CommDirect {
			score += 5
		}
	}

	switch ans.Dishes {
	case "Immediately after eating":
		score += 5
	case "Takeaway life":
		score -= 5
	}

	switch ans.Occupation {
	case "Full-time work":
		score += 10
	case "Part-time work":
		score += 5
	case "Not working":
		score -= 5
	}

	if ans.Age >= 25 && ans.Age <= 35 {
		score += 5
	}

	return clampScore(score)
}

// fallbackScore is the degraded heuristic used when the primary pipeline
// cannot run: age proximity, same state, same occupation. Deal-breakers
// default to a clean 100 since there is no data to say otherwise.
func (e *Engine) fallbackScore(a, b *MatchProfile) *CompatibilityScore {
	aAns, bAns := &quiz.QuizAnswers{}, &quiz.QuizAnswers{}
	if a != nil {
		aAns = answersOr(a.Answers)
	}
	if b != nil {
		bAns = answersOr(b.Answers)
	}

	score := 50

	ageDiff := absInt(aAns.Age - bAns.Age)
	switch {
	case ageDiff <= 3:
		score += 15
	case ageDiff <= 8:
		score += 8
	}

	if aAns.State != "" && aAns.State == bAns.State {
		score += 15
	}
	if aAns.Occupation != "" && aAns.Occupation == bAns.Occupation {
		score += 10
	}

	score = clampScore(score)
	return &CompatibilityScore{
		Overall: score,
		Breakdown: ScoreBreakdown{
			Personality:  score,
			Lifestyle:    score,
			Preferences:  score,
			DealBreakers: 100,
		},
		MatchReasons: []string{"Basic compatibility estimate"},
		Concerns:     []string{"Limited profile data available - this score is an estimate"},
	}
}

// Shared helpers

func answersOr(a *quiz.QuizAnswers) *quiz.QuizAnswers {
	if a == nil {
		return &quiz.QuizAnswers{}
	}
	return a
}

func prefsOr(p *quiz.MatchPreferences) *quiz.MatchPreferences {
	if p == nil {
		return &quiz.MatchPreferences{}
	}
	return p
}

func sliderValue(p *int) int {
	if p == nil {
		return 5
	}
	return *p
}

func sharedStrings(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	var shared []string
	for _, s := range b {
		if set[s] {
			shared = append(shared, s)
			set[s] = false
		}
	}
	return shared
}

func roundScore(f float64) int {
	return int(math.Round(f))
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
