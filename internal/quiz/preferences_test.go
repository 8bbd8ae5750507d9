package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMatchPreferencesAgeWindow(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		expected [2]int
	}{
		{"mid twenties", 26, [2]int{18, 34}},
		{"clamped at lower bound", 19, [2]int{18, 27}},
		{"clamped at upper bound", 62, [2]int{54, 65}},
		{"above pool cap collapses to it", 80, [2]int{65, 65}},
		{"oldest valid age", 100, [2]int{65, 65}},
		{"no age falls back to full band", 0, [2]int{18, 65}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prefs := ExtractMatchPreferences(&QuizAnswers{Age: tc.age})
			assert.Equal(t, tc.expected, prefs.AgeRange)
		})
	}
}

func TestAgeWindowAlwaysOrdered(t *testing.T) {
	for age := MinAge; age <= MaxAge; age++ {
		prefs := ExtractMatchPreferences(&QuizAnswers{Age: age})
		assert.LessOrEqual(t, prefs.AgeRange[0], prefs.AgeRange[1], "age %d", age)
		assert.GreaterOrEqual(t, prefs.AgeRange[0], matchMinAge, "age %d", age)
		assert.LessOrEqual(t, prefs.AgeRange[1], matchMaxAge, "age %d", age)
	}
}

func TestExtractMatchPreferencesLocationOrder(t *testing.T) {
	prefs := ExtractMatchPreferences(&QuizAnswers{
		LocationTags:       []string{"Inner West", "Near university"},
		PreferredLocations: []string{"Newtown", "Marrickville"},
	})

	// Tag selections first, parsed suburbs after.
	assert.Equal(t,
		[]string{"Inner West", "Near university", "Newtown", "Marrickville"},
		prefs.LocationPreferences)
}

func TestExtractDealBreakers(t *testing.T) {
	tests := []struct {
		name     string
		answers  *QuizAnswers
		expected []string
	}{
		{
			"all four",
			&QuizAnswers{Smoking: "Deal breaker", Drinking: "Deal breaker", Pets: "Deal breaker", Parties: boolPtr(false)},
			[]string{DealBreakerNoSmoking, DealBreakerNoAlcohol, DealBreakerNoPets, DealBreakerNoParties},
		},
		{
			"soft stances produce none",
			&QuizAnswers{Smoking: "Prefer not", Drinking: "Fine", Pets: "Fine", Parties: boolPtr(true)},
			nil,
		},
		{
			"unanswered parties is not a deal breaker",
			&QuizAnswers{},
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prefs := ExtractMatchPreferences(tc.answers)
			assert.Equal(t, tc.expected, prefs.DealBreakers)
		})
	}
}

func TestExtractPropertyPreferencesDefaults(t *testing.T) {
	prefs := ExtractPropertyPreferences(&QuizAnswers{})

	assert.Equal(t, "Flexible", prefs.FurnishedRoom)
	assert.Equal(t, "Flexible", prefs.Bathroom)
	assert.Equal(t, "Flexible", prefs.MaxFlatmates)
	assert.Equal(t, "Required (basic internet)", prefs.Internet)
	assert.Equal(t, "Flexible", prefs.Parking)
}

func TestExtractPropertyPreferencesEchoesAnswers(t *testing.T) {
	prefs := ExtractPropertyPreferences(&QuizAnswers{
		FurnishedRoom: "Furnished",
		Bathroom:      "Private",
		Internet:      "Required (high-speed)",
	})

	assert.Equal(t, "Furnished", prefs.FurnishedRoom)
	assert.Equal(t, "Private", prefs.Bathroom)
	assert.Equal(t, "Required (high-speed)", prefs.Internet)
	assert.Equal(t, "Flexible", prefs.Parking)
}
