package matching

import (
	"fmt"
	"strings"

	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

// generateInsights re-inspects the comparisons behind the score and turns
// the notable ones into display strings. Reasons and concerns come back in
// a stable order so the UI renders consistently.
func (e *Engine) generateInsights(a, b *MatchProfile, pctx *PropertyContext) (reasons, concerns []string) {
	at, bt := a.Traits, b.Traits
	aAns, bAns := answersOr(a.Answers), answersOr(b.Answers)

	if at.Cleanliness == bt.Cleanliness {
		reasons = append(reasons, "You have matching cleanliness standards")
	} else if cleanlinessGap(at.Cleanliness, bt.Cleanliness) >= 2 {
		concerns = append(concerns, "Very different cleanliness standards")
	}

	if at.Schedule != bt.Schedule &&
		at.Schedule != quiz.ScheduleFlexible && bt.Schedule != quiz.ScheduleFlexible {
		concerns = append(concerns, "Opposite sleep schedules could cause friction")
	}

	shared := sharedStrings(aAns.Interests, bAns.Interests)
	if len(shared) >= 3 {
		reasons = append(reasons, fmt.Sprintf("You share %d interests including %s", len(shared), shared[0]))
	} else if len(shared) == 0 && (len(aAns.Interests) > 0 || len(bAns.Interests) > 0) {
		concerns = append(concerns, "No shared interests listed")
	}

	if at.SocialEnergy == bt.SocialEnergy {
		reasons = append(reasons, "Similar social energy levels")
	}
	if at.GuestPolicy == bt.GuestPolicy {
		reasons = append(reasons, "You agree on how often guests should come over")
	}

	if a.Preferences != nil && b.Preferences != nil {
		overlapping := sharedStrings(a.Preferences.DealBreakers, b.Preferences.DealBreakers)
		if len(overlapping) > 0 {
			concerns = append(concerns, "Overlapping deal-breakers: "+strings.Join(overlapping, ", "))
		}
	}

	if pctx != nil && pctx.IsPropertyOwner {
		if bAns.Occupation == "Full-time work" {
			reasons = append(reasons, "Stable full-time employment")
		}
		if bt.GuestPolicy == quiz.GuestsFrequent {
			concerns = append(concerns, "Has guests over frequently")
		}
		if bAns.Age > 0 && bAns.Age < 22 {
			concerns = append(concerns, "Younger tenant with limited rental history")
		}
		if bt.Cleanliness == quiz.CleanRelaxed {
			concerns = append(concerns, "Relaxed approach to cleaning")
		}
	}

	return reasons, concerns
}

var cleanlinessRank = map[string]int{
	quiz.CleanRelaxed:   0,
	quiz.CleanModerate:  1,
	quiz.CleanVeryClean: 2,
}

func cleanlinessGap(a, b string) int {
	return absInt(cleanlinessRank[a] - cleanlinessRank[b])
}
