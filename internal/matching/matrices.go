package matching

import "github.com/flatmatchau/flatmatch-backend/internal/quiz"

// Pairwise trait compatibility tables. These cells are business decisions,
// kept as explicit constants so each one can be reviewed and tuned on its
// own. Identical categories score 100, adjacent ones 70-85, opposites
// 20-40. A pairing absent from its table falls back to traitDefaultScore.
//
// Every table is symmetric; lookups try (a,b) then (b,a).

const traitDefaultScore = 60

type traitPair struct {
	a, b string
}

// Weights over the nine most decision-relevant trait fields. Sum to 100.
var traitWeights = []struct {
	field  string
	weight int
	get    func(*quiz.PersonalityTraits) string
	table  map[traitPair]int
}{
	{"cleanliness", 25, func(t *quiz.PersonalityTraits) string { return t.Cleanliness }, cleanlinessTable},
	{"noise_tolerance", 20, func(t *quiz.PersonalityTraits) string { return t.NoiseTolerance }, noiseToleranceTable},
	{"schedule", 15, func(t *quiz.PersonalityTraits) string { return t.Schedule }, scheduleTable},
	{"social_energy", 15, func(t *quiz.PersonalityTraits) string { return t.SocialEnergy }, socialEnergyTable},
	{"guest_policy", 10, func(t *quiz.PersonalityTraits) string { return t.GuestPolicy }, guestPolicyTable},
	{"shared_spaces", 5, func(t *quiz.PersonalityTraits) string { return t.SharedSpaces }, sharedSpacesTable},
	{"lifestyle", 5, func(t *quiz.PersonalityTraits) string { return t.Lifestyle }, lifestyleTable},
	{"personal_space", 3, func(t *quiz.PersonalityTraits) string { return t.PersonalSpace }, personalSpaceTable},
	{"communication_style", 2, func(t *quiz.PersonalityTraits) string { return t.CommunicationStyle }, communicationTable},
}

var cleanlinessTable = map[traitPair]int{
	{quiz.CleanVeryClean, quiz.CleanVeryClean}: 100,
	{quiz.CleanModerate, quiz.CleanModerate}:   100,
	{quiz.CleanRelaxed, quiz.CleanRelaxed}:     100,
	{quiz.CleanVeryClean, quiz.CleanModerate}:  75,
	{quiz.CleanModerate, quiz.CleanRelaxed}:    75,
	{quiz.CleanVeryClean, quiz.CleanRelaxed}:   25,
}

var noiseToleranceTable = map[traitPair]int{
	{quiz.NoiseHigh, quiz.NoiseHigh}:         100,
	{quiz.NoiseModerate, quiz.NoiseModerate}: 100,
	{quiz.NoiseLow, quiz.NoiseLow}:           100,
	{quiz.NoiseHigh, quiz.NoiseModerate}:     80,
	{quiz.NoiseModerate, quiz.NoiseLow}:      70,
	{quiz.NoiseHigh, quiz.NoiseLow}:          30,
}

var scheduleTable = map[traitPair]int{
	{quiz.ScheduleEarlyBird, quiz.ScheduleEarlyBird}: 100,
	{quiz.ScheduleNightOwl, quiz.ScheduleNightOwl}:   100,
	{quiz.ScheduleFlexible, quiz.ScheduleFlexible}:   100,
	{quiz.ScheduleEarlyBird, quiz.ScheduleFlexible}:  85,
	{quiz.ScheduleNightOwl, quiz.ScheduleFlexible}:   85,
	{quiz.ScheduleEarlyBird, quiz.ScheduleNightOwl}:  30,
}

var socialEnergyTable = map[traitPair]int{
	{quiz.EnergyExtrovert, quiz.EnergyExtrovert}: 100,
	{quiz.EnergyAmbivert, quiz.EnergyAmbivert}:   100,
	{quiz.EnergyIntrovert, quiz.EnergyIntrovert}: 100,
	{quiz.EnergyExtrovert, quiz.EnergyAmbivert}:  80,
	{quiz.EnergyAmbivert, quiz.EnergyIntrovert}:  80,
	{quiz.EnergyExtrovert, quiz.EnergyIntrovert}: 40,
}

var guestPolicyTable = map[traitPair]int{
	{quiz.GuestsFrequent, quiz.GuestsFrequent}:     100,
	{quiz.GuestsOccasional, quiz.GuestsOccasional}: 100,
	{quiz.GuestsMinimal, quiz.GuestsMinimal}:       100,
	{quiz.GuestsFrequent, quiz.GuestsOccasional}:   75,
	{quiz.GuestsOccasional, quiz.GuestsMinimal}:    75,
	{quiz.GuestsFrequent, quiz.GuestsMinimal}:      20,
}

var sharedSpacesTable = map[traitPair]int{
	{quiz.SpacesCommunal, quiz.SpacesCommunal}: 100,
	{quiz.SpacesBalanced, quiz.SpacesBalanced}: 100,
	{quiz.SpacesPrivate, quiz.SpacesPrivate}:   100,
	{quiz.SpacesCommunal, quiz.SpacesBalanced}: 80,
	{quiz.SpacesBalanced, quiz.SpacesPrivate}:  80,
	{quiz.SpacesCommunal, quiz.SpacesPrivate}:  40,
}

var lifestyleTable = map[traitPair]int{
	{quiz.LifestyleSocial, quiz.LifestyleSocial}:     100,
	{quiz.LifestyleBalanced, quiz.LifestyleBalanced}: 100,
	{quiz.LifestyleQuiet, quiz.LifestyleQuiet}:       100,
	{quiz.LifestyleSocial, quiz.LifestyleBalanced}:   80,
	{quiz.LifestyleBalanced, quiz.LifestyleQuiet}:    80,
	{quiz.LifestyleSocial, quiz.LifestyleQuiet}:      35,
}

var personalSpaceTable = map[traitPair]int{
	{quiz.PersonalSpaceLow, quiz.PersonalSpaceLow}:           100,
	{quiz.PersonalSpaceModerate, quiz.PersonalSpaceModerate}: 100,
	{quiz.PersonalSpaceHigh, quiz.PersonalSpaceHigh}:         100,
	{quiz.PersonalSpaceLow, quiz.PersonalSpaceModerate}:      80,
	{quiz.PersonalSpaceModerate, quiz.PersonalSpaceHigh}:     80,
	{quiz.PersonalSpaceLow, quiz.PersonalSpaceHigh}:          40,
}

var communicationTable = map[traitPair]int{
	{quiz.CommDirect, quiz.CommDirect}:         100,
	{quiz.CommDiplomatic, quiz.CommDiplomatic}: 100,
	{quiz.CommReserved, quiz.CommReserved}:     100,
	{quiz.CommDirect, quiz.CommDiplomatic}:     85,
	{quiz.CommDiplomatic, quiz.CommReserved}:   85,
	{quiz.CommDirect, quiz.CommReserved}:       45,
}

// lookupTraitScore resolves one pairwise comparison against its table.
func lookupTraitScore(table map[traitPair]int, a, b string) int {
	if score, ok := table[traitPair{a, b}]; ok {
		return score
	}
	if score, ok := table[traitPair{b, a}]; ok {
		return score
	}
	return traitDefaultScore
}
