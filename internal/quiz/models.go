package quiz

import "time"

// QuizAnswers is the canonical, validated form of a quiz submission.
// It is only ever produced by ValidateAnswers; downstream code never
// touches the raw answer map.
type QuizAnswers struct {
	// Basics
	Age        int    `json:"age,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	State      string `json:"state,omitempty"`
	Budget     int    `json:"budget,omitempty"`

	// 0-10 sliders. Pointers because 0 is a valid answer.
	Cleanliness      *int `json:"cleanliness,omitempty"`
	Socialness       *int `json:"socialness,omitempty"`
	MorningPerson    *int `json:"morning_person,omitempty"`
	NoiseSensitivity *int `json:"noise_sensitivity,omitempty"`
	CookingFrequency *int `json:"cooking_frequency,omitempty"`
	CommonAreas      *int `json:"common_areas,omitempty"`

	// Lifestyle enums
	Bedtime string `json:"bedtime,omitempty"`
	Dishes  string `json:"dishes,omitempty"`
	Guests  string `json:"guests,omitempty"`

	// Stances (deal-breaker sources)
	Smoking  string `json:"smoking,omitempty"`
	Drinking string `json:"drinking,omitempty"`
	Pets     string `json:"pets,omitempty"`
	Parties  *bool  `json:"parties,omitempty"`

	// Property tiers
	FurnishedRoom string `json:"furnished_room,omitempty"`
	Bathroom      string `json:"bathroom,omitempty"`
	MaxFlatmates  string `json:"max_flatmates,omitempty"`
	Internet      string `json:"internet,omitempty"`
	Parking       string `json:"parking,omitempty"`

	// String sets
	Interests           []string `json:"interests,omitempty"`
	MusicTaste          []string `json:"music_taste,omitempty"`
	LocationTags        []string `json:"location_tags,omitempty"`
	PreferredLocations  []string `json:"preferred_locations,omitempty"`

	// Free text
	Bio string `json:"bio,omitempty"`

	// Consents
	TermsAccepted   bool `json:"terms_accepted,omitempty"`
	MarketingOptIn  bool `json:"marketing_opt_in,omitempty"`
}

// PersonalityTraits is the fixed 12-field categorical vector derived from
// answers. Recomputed whenever answers change, never edited directly.
type PersonalityTraits struct {
	Lifestyle          string `json:"lifestyle"`
	SocialEnergy       string `json:"social_energy"`
	Cleanliness        string `json:"cleanliness"`
	Schedule           string `json:"schedule"`
	NoiseTolerance     string `json:"noise_tolerance"`
	GuestPolicy        string `json:"guest_policy"`
	CommunicationStyle string `json:"communication_style"`
	ConflictResolution string `json:"conflict_resolution"`
	SharedSpaces       string `json:"shared_spaces"`
	PersonalSpace      string `json:"personal_space"`
	FinancialApproach  string `json:"financial_approach"`
	LongTermGoals      string `json:"long_term_goals"`
}

// MatchPreferences captures who a user wants to live with.
type MatchPreferences struct {
	AgeRange               [2]int   `json:"age_range"`
	LocationPreferences    []string `json:"location_preferences"`
	LifestyleCompatibility []string `json:"lifestyle_compatibility"`
	DealBreakers           []string `json:"deal_breakers"`
}

// PropertyPreferences captures what a user wants from the place itself.
type PropertyPreferences struct {
	FurnishedRoom string `json:"furnished_room"`
	Bathroom      string `json:"bathroom"`
	MaxFlatmates  string `json:"max_flatmates"`
	Internet      string `json:"internet"`
	Parking       string `json:"parking"`
}

// FlatmateProfile is the persisted unit: one user's answers plus everything
// derived from them.
type FlatmateProfile struct {
	UserID      string               `json:"user_id" db:"user_id"`
	DisplayName string               `json:"display_name" db:"display_name"`
	Answers     *QuizAnswers         `json:"answers"`
	Traits      *PersonalityTraits   `json:"traits"`
	Preferences *MatchPreferences    `json:"preferences"`
	Property    *PropertyPreferences `json:"property"`
	IsActive    bool                 `json:"is_active" db:"is_active"`
	CreatedAt   time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" db:"updated_at"`
}

// Trait categories
const (
	LifestyleSocial   = "social"
	LifestyleQuiet    = "quiet"
	LifestyleBalanced = "balanced"

	EnergyExtrovert = "extrovert"
	EnergyAmbivert  = "ambivert"
	EnergyIntrovert = "introvert"

	CleanVeryClean = "very_clean"
	CleanModerate  = "moderate"
	CleanRelaxed   = "relaxed"

	ScheduleEarlyBird = "early_bird"
	ScheduleNightOwl  = "night_owl"
	ScheduleFlexible  = "flexible"

	NoiseHigh     = "high"
	NoiseModerate = "moderate"
	NoiseLow      = "low"

	GuestsFrequent   = "frequent"
	GuestsOccasional = "occasional"
	GuestsMinimal    = "minimal"

	CommDirect     = "direct"
	CommDiplomatic = "diplomatic"
	CommReserved   = "reserved"

	ConflictHeadOn     = "head_on"
	ConflictDiscussion = "discussion"
	ConflictAvoidant   = "avoidant"

	SpacesCommunal = "communal"
	SpacesBalanced = "balanced"
	SpacesPrivate  = "private"

	PersonalSpaceLow      = "low"
	PersonalSpaceModerate = "moderate"
	PersonalSpaceHigh     = "high"

	FinancialSharedEqually = "shared_equally"

	GoalsStudying      = "studying"
	GoalsCareerFocused = "career_focused"
	GoalsSettling      = "settling"
	GoalsExploring     = "exploring"
)

// Deal-breaker vocabulary. Closed by design.
const (
	DealBreakerNoSmoking = "no_smoking"
	DealBreakerNoAlcohol = "no_alcohol"
	DealBreakerNoPets    = "no_pets"
	DealBreakerNoParties = "no_parties"
)
