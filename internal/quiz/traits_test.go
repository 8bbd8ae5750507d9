package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestAnalyzeTraitsTotalOnMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		answers *QuizAnswers
	}{
		{"nil answers", nil},
		{"empty answers", &QuizAnswers{}},
		{"only age", &QuizAnswers{Age: 24}},
		{"only sliders", &QuizAnswers{Socialness: intPtr(9), Cleanliness: intPtr(2)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			traits := AnalyzeTraits(tc.answers)
			require.NotNil(t, traits)

			// Every one of the 12 fields must come back populated.
			fields := []string{
				traits.Lifestyle, traits.SocialEnergy, traits.Cleanliness,
				traits.Schedule, traits.NoiseTolerance, traits.GuestPolicy,
				traits.CommunicationStyle, traits.ConflictResolution,
				traits.SharedSpaces, traits.PersonalSpace,
				traits.FinancialApproach, traits.LongTermGoals,
			}
			for i, f := range fields {
				assert.NotEmpty(t, f, "trait field %d must not be empty", i)
			}
		})
	}
}

func TestAnalyzeTraitsMidpointDefaults(t *testing.T) {
	traits := AnalyzeTraits(&QuizAnswers{})

	assert.Equal(t, LifestyleBalanced, traits.Lifestyle)
	assert.Equal(t, EnergyAmbivert, traits.SocialEnergy)
	assert.Equal(t, CleanModerate, traits.Cleanliness)
	assert.Equal(t, ScheduleFlexible, traits.Schedule)
	assert.Equal(t, NoiseModerate, traits.NoiseTolerance)
	assert.Equal(t, GuestsOccasional, traits.GuestPolicy)
	assert.Equal(t, PersonalSpaceModerate, traits.PersonalSpace)
}

func TestClassifyCleanliness(t *testing.T) {
	tests := []struct {
		name     string
		slider   *int
		dishes   string
		expected string
	}{
		{"high slider plus immediate dishes clamps to ten", intPtr(9), "Immediately after eating", CleanVeryClean},
		{"low slider takeaway life", intPtr(3), "Takeaway life", CleanRelaxed},
		{"midpoint stays moderate", intPtr(5), "", CleanModerate},
		{"same day nudges up", intPtr(7), "Same day", CleanVeryClean},
		{"missing slider defaults to midpoint", nil, "", CleanModerate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			traits := AnalyzeTraits(&QuizAnswers{Cleanliness: tc.slider, Dishes: tc.dishes})
			assert.Equal(t, tc.expected, traits.Cleanliness)
		})
	}
}

func TestClassifySchedule(t *testing.T) {
	tests := []struct {
		name     string
		slider   *int
		bedtime  string
		expected string
	}{
		{"early riser before nine", intPtr(7), "Before 9pm", ScheduleEarlyBird},
		{"night owl after one", intPtr(3), "After 1am", ScheduleNightOwl},
		{"middle of the road", intPtr(5), "9pm - 11pm", ScheduleFlexible},
		{"late bedtime drags an early slider down", intPtr(7), "After 1am", ScheduleFlexible},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			traits := AnalyzeTraits(&QuizAnswers{MorningPerson: tc.slider, Bedtime: tc.bedtime})
			assert.Equal(t, tc.expected, traits.Schedule)
		})
	}
}

func TestClassifyLifestyle(t *testing.T) {
	social := AnalyzeTraits(&QuizAnswers{
		Interests:  []string{"partying", "music", "sports"},
		Guests:     "Often",
		Parties:    boolPtr(true),
		Socialness: intPtr(9),
	})
	assert.Equal(t, LifestyleSocial, social.Lifestyle)

	quiet := AnalyzeTraits(&QuizAnswers{
		Interests:  []string{"reading", "art", "gaming"},
		Guests:     "Never",
		Parties:    boolPtr(false),
		Socialness: intPtr(1),
	})
	assert.Equal(t, LifestyleQuiet, quiet.Lifestyle)

	balanced := AnalyzeTraits(&QuizAnswers{
		Interests:  []string{"music", "reading"},
		Socialness: intPtr(5),
	})
	assert.Equal(t, LifestyleBalanced, balanced.Lifestyle)
}

func TestClassifyNoiseToleranceInverse(t *testing.T) {
	sensitive := AnalyzeTraits(&QuizAnswers{NoiseSensitivity: intPtr(9)})
	assert.Equal(t, NoiseLow, sensitive.NoiseTolerance)

	unbothered := AnalyzeTraits(&QuizAnswers{NoiseSensitivity: intPtr(2)})
	assert.Equal(t, NoiseHigh, unbothered.NoiseTolerance)
}

func TestClassifyGuestPolicy(t *testing.T) {
	tests := []struct {
		name     string
		guests   string
		parties  *bool
		expected string
	}{
		{"often is frequent", "Often", nil, GuestsFrequent},
		{"never is minimal", "Never", nil, GuestsMinimal},
		{"party lover bumps minimal up", "Never", boolPtr(true), GuestsOccasional},
		{"no parties caps frequent", "Often", boolPtr(false), GuestsOccasional},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			traits := AnalyzeTraits(&QuizAnswers{Guests: tc.guests, Parties: tc.parties})
			assert.Equal(t, tc.expected, traits.GuestPolicy)
		})
	}
}

func TestFinancialApproachIsConstant(t *testing.T) {
	// Not derived from any answer today; the quiz has no money-split
	// question yet.
	a := AnalyzeTraits(&QuizAnswers{Age: 40, Budget: 900})
	b := AnalyzeTraits(nil)
	assert.Equal(t, FinancialSharedEqually, a.FinancialApproach)
	assert.Equal(t, FinancialSharedEqually, b.FinancialApproach)
}

func TestClassifyLongTermGoals(t *testing.T) {
	tests := []struct {
		name       string
		occupation string
		age        int
		expected   string
	}{
		{"student", "Student", 20, GoalsStudying},
		{"career", "Full-time work", 28, GoalsCareerFocused},
		{"settling", "Freelance", 34, GoalsSettling},
		{"exploring", "Part-time work", 21, GoalsExploring},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			traits := AnalyzeTraits(&QuizAnswers{Occupation: tc.occupation, Age: tc.age})
			assert.Equal(t, tc.expected, traits.LongTermGoals)
		})
	}
}

func TestAnalyzeTraitsDeterministic(t *testing.T) {
	answers := &QuizAnswers{
		Age:         27,
		Occupation:  "Full-time work",
		Socialness:  intPtr(7),
		Cleanliness: intPtr(8),
		Interests:   []string{"music", "outdoors"},
	}
	assert.Equal(t, AnalyzeTraits(answers), AnalyzeTraits(answers))
}
