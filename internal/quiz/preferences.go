package quiz

// Platform-wide matching age bounds. Narrower than the quiz age range on
// purpose: the matching pool is capped at 65.
const (
	matchMinAge   = 18
	matchMaxAge   = 65
	ageWindowSpan = 8
)

// ExtractMatchPreferences derives who-to-match-with preferences from
// validated answers. Pure and total.
func ExtractMatchPreferences(a *QuizAnswers) *MatchPreferences {
	if a == nil {
		a = &QuizAnswers{}
	}

	prefs := &MatchPreferences{
		AgeRange:               ageWindow(a.Age),
		LifestyleCompatibility: append([]string(nil), a.Interests...),
		DealBreakers:           extractDealBreakers(a),
	}

	// Tag selections first, then the parsed free-text suburbs.
	prefs.LocationPreferences = append(prefs.LocationPreferences, a.LocationTags...)
	prefs.LocationPreferences = append(prefs.LocationPreferences, a.PreferredLocations...)

	return prefs
}

// ageWindow is a fixed ±8 year band around the user's age, clamped to the
// platform bounds. With no age on record the full band is used.
func ageWindow(age int) [2]int {
	if age == 0 {
		return [2]int{matchMinAge, matchMaxAge}
	}
	lo := clampMatchAge(age - ageWindowSpan)
	hi := clampMatchAge(age + ageWindowSpan)
	return [2]int{lo, hi}
}

// clampMatchAge keeps both window bounds inside [18, 65] so the range stays
// ordered even for users older than the matching pool cap.
func clampMatchAge(age int) int {
	if age < matchMinAge {
		return matchMinAge
	}
	if age > matchMaxAge {
		return matchMaxAge
	}
	return age
}

// extractDealBreakers maps four specific answers onto the closed
// deal-breaker vocabulary. Not extensible by design.
func extractDealBreakers(a *QuizAnswers) []string {
	var out []string
	if a.Smoking == "Deal breaker" {
		out = append(out, DealBreakerNoSmoking)
	}
	if a.Drinking == "Deal breaker" {
		out = append(out, DealBreakerNoAlcohol)
	}
	if a.Pets == "Deal breaker" {
		out = append(out, DealBreakerNoPets)
	}
	if a.Parties != nil && !*a.Parties {
		out = append(out, DealBreakerNoParties)
	}
	return out
}

// ExtractPropertyPreferences echoes the validated property answers with
// named defaults where the user skipped a question.
func ExtractPropertyPreferences(a *QuizAnswers) *PropertyPreferences {
	if a == nil {
		a = &QuizAnswers{}
	}
	return &PropertyPreferences{
		FurnishedRoom: defaultStr(a.FurnishedRoom, "Flexible"),
		Bathroom:      defaultStr(a.Bathroom, "Flexible"),
		MaxFlatmates:  defaultStr(a.MaxFlatmates, "Flexible"),
		Internet:      defaultStr(a.Internet, "Required (basic internet)"),
		Parking:       defaultStr(a.Parking, "Flexible"),
	}
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
