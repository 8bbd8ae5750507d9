package quiz

// AnalyzeTraits derives the 12-field personality vector from validated
// answers. It is total: it never fails, and treats a missing slider as the
// scale midpoint (5) and a missing categorical answer as neutral. Callers
// are expected to validate first; a nil input yields an all-defaults vector.
func AnalyzeTraits(a *QuizAnswers) *PersonalityTraits {
	if a == nil {
		a = &QuizAnswers{}
	}
	// Defensive double check. Analysis still proceeds on the original
	// record if revalidation fails, it just leans on the defaults.
	if clean, err := RevalidateAnswers(a); err == nil {
		a = clean
	}

	return &PersonalityTraits{
		Lifestyle:          classifyLifestyle(a),
		SocialEnergy:       classifySocialEnergy(a),
		Cleanliness:        classifyCleanliness(a),
		Schedule:           classifySchedule(a),
		NoiseTolerance:     classifyNoiseTolerance(a),
		GuestPolicy:        classifyGuestPolicy(a),
		CommunicationStyle: classifyCommunication(a),
		ConflictResolution: classifyConflictResolution(a),
		SharedSpaces:       classifySharedSpaces(a),
		PersonalSpace:      classifyPersonalSpace(a),
		FinancialApproach:  FinancialSharedEqually,
		LongTermGoals:      classifyLongTermGoals(a),
	}
}

const sliderMidpoint = 5

func sliderOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

var (
	socialInterests = []string{"partying", "music", "sports", "outdoors"}
	quietInterests  = []string{"reading", "study groups", "art", "gaming"}
)

func classifyLifestyle(a *QuizAnswers) string {
	social, quiet := 0, 0

	for _, interest := range a.Interests {
		if containsString(socialInterests, interest) {
			social++
		}
		if containsString(quietInterests, interest) {
			quiet++
		}
	}

	switch a.Guests {
	case "Often":
		social += 2
	case "Sometimes":
		social++
	case "Rarely":
		quiet++
	case "Never":
		quiet += 2
	}

	if a.Parties != nil {
		if *a.Parties {
			social++
		} else {
			quiet++
		}
	}

	switch s := sliderOr(a.Socialness, sliderMidpoint); {
	case s >= 8:
		social += 2
	case s >= 6:
		social++
	case s <= 2:
		quiet += 2
	case s <= 4:
		quiet++
	}

	switch {
	case social > quiet+1:
		return LifestyleSocial
	case quiet > social+1:
		return LifestyleQuiet
	default:
		return LifestyleBalanced
	}
}

func classifySocialEnergy(a *QuizAnswers) string {
	switch s := sliderOr(a.Socialness, sliderMidpoint); {
	case s >= 7:
		return EnergyExtrovert
	case s <= 3:
		return EnergyIntrovert
	default:
		return EnergyAmbivert
	}
}

func classifyCleanliness(a *QuizAnswers) string {
	score := sliderOr(a.Cleanliness, sliderMidpoint)

	switch a.Dishes {
	case "Immediately after eating":
		score += 2
	case "Same day":
		score++
	case "Takeaway life":
		score--
	}

	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}

	switch {
	case score >= 8:
		return CleanVeryClean
	case score <= 4:
		return CleanRelaxed
	default:
		return CleanModerate
	}
}

func classifySchedule(a *QuizAnswers) string {
	score := sliderOr(a.MorningPerson, sliderMidpoint)

	switch a.Bedtime {
	case "Before 9pm":
		score += 2
	case "9pm - 11pm":
		score++
	case "11pm - 1am":
		score--
	case "After 1am":
		score -= 2
	}

	switch {
	case score >= 7:
		return ScheduleEarlyBird
	case score <= 3:
		return ScheduleNightOwl
	default:
		return ScheduleFlexible
	}
}

// Tolerance is the inverse of sensitivity.
func classifyNoiseTolerance(a *QuizAnswers) string {
	switch s := sliderOr(a.NoiseSensitivity, sliderMidpoint); {
	case s >= 8:
		return NoiseLow
	case s <= 3:
		return NoiseHigh
	default:
		return NoiseModerate
	}
}

func classifyGuestPolicy(a *QuizAnswers) string {
	policy := GuestsOccasional
	switch a.Guests {
	case "Often":
		policy = GuestsFrequent
	case "Sometimes":
		policy = GuestsOccasional
	case "Rarely", "Never":
		policy = GuestsMinimal
	}

	if a.Parties != nil {
		if *a.Parties && policy == GuestsMinimal {
			policy = GuestsOccasional
		}
		if !*a.Parties && policy == GuestsFrequent {
			policy = GuestsOccasional
		}
	}
	return policy
}

func classifyCommunication(a *QuizAnswers) string {
	switch s := sliderOr(a.Socialness, sliderMidpoint); {
	case s >= 7:
		return CommDirect
	case s <= 3:
		return CommReserved
	default:
		return CommDiplomatic
	}
}

func classifyConflictResolution(a *QuizAnswers) string {
	switch s := sliderOr(a.Socialness, sliderMidpoint); {
	case s >= 8:
		return ConflictHeadOn
	case s <= 2:
		return ConflictAvoidant
	default:
		return ConflictDiscussion
	}
}

func classifySharedSpaces(a *QuizAnswers) string {
	switch s := sliderOr(a.CommonAreas, sliderMidpoint); {
	case s >= 7:
		return SpacesCommunal
	case s <= 3:
		return SpacesPrivate
	default:
		return SpacesBalanced
	}
}

// High socialness and heavy common-area use both signal a low need for
// personal space, so this is the inverse of their average.
func classifyPersonalSpace(a *QuizAnswers) string {
	social := sliderOr(a.Socialness, sliderMidpoint)
	common := sliderOr(a.CommonAreas, sliderMidpoint)
	need := ((10 - social) + (10 - common)) / 2

	switch {
	case need >= 7:
		return PersonalSpaceHigh
	case need <= 3:
		return PersonalSpaceLow
	default:
		return PersonalSpaceModerate
	}
}

func classifyLongTermGoals(a *QuizAnswers) string {
	switch {
	case a.Occupation == "Student":
		return GoalsStudying
	case a.Occupation == "Full-time work" && a.Age >= 25:
		return GoalsCareerFocused
	case a.Age >= 30:
		return GoalsSettling
	default:
		return GoalsExploring
	}
}
