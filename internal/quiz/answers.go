package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError identifies the offending field so the frontend can show
// a field-level error instead of a generic toast.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation limits
const (
	MinAge    = 18
	MaxAge    = 100
	MinBudget = 50
	MaxBudget = 1000

	maxListEntries = 20
	maxEntryLen    = 50
	maxBioLen      = 2000
)

// Fixed option sets. A value outside its set is rejected, not coerced.
var (
	occupationOptions = []string{"Student", "Full-time work", "Part-time work", "Freelance", "Not working"}
	stateOptions      = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}
	bedtimeOptions    = []string{"Before 9pm", "9pm - 11pm", "11pm - 1am", "After 1am"}
	dishesOptions     = []string{"Immediately after eating", "Same day", "Within a couple of days", "Takeaway life"}
	guestsOptions     = []string{"Often", "Sometimes", "Rarely", "Never"}
	stanceOptions     = []string{"Fine", "Prefer not", "Deal breaker"}

	furnishedOptions    = []string{"Furnished", "Unfurnished", "Flexible"}
	bathroomOptions     = []string{"Private", "Shared", "Flexible"}
	maxFlatmatesOptions = []string{"Just one other", "2-3 others", "4+ is fine", "Flexible"}
	internetOptions     = []string{"Required (high-speed)", "Required (basic internet)", "Not needed"}
	parkingOptions      = []string{"Required", "Preferred", "Not needed", "Flexible"}
)

// ValidateAnswers sanitizes a raw answer map into a canonical QuizAnswers.
// Unrecognized keys are dropped. Recognized keys with invalid values return
// a *ValidationError naming the field. Lists are lenient on cardinality
// (truncated) but strict on type. Validating already-valid output again
// yields an equal record.
func ValidateAnswers(raw map[string]interface{}) (*QuizAnswers, error) {
	out := &QuizAnswers{}

	if v, ok := raw["age"]; ok {
		age, ok := toInt(v)
		if !ok || age < MinAge || age > MaxAge {
			return nil, &ValidationError{"age", fmt.Sprintf("Age must be between %d and %d", MinAge, MaxAge)}
		}
		out.Age = age
	}

	if v, ok := raw["budget"]; ok {
		budget, ok := toInt(v)
		if !ok || budget < MinBudget || budget > MaxBudget {
			return nil, &ValidationError{"budget", fmt.Sprintf("Weekly budget must be between $%d and $%d", MinBudget, MaxBudget)}
		}
		out.Budget = budget
	}

	var err error
	if out.Occupation, err = enumField(raw, "occupation", occupationOptions); err != nil {
		return nil, err
	}
	if out.State, err = enumField(raw, "state", stateOptions); err != nil {
		return nil, err
	}
	if out.Bedtime, err = enumField(raw, "bedtime", bedtimeOptions); err != nil {
		return nil, err
	}
	if out.Dishes, err = enumField(raw, "dishes", dishesOptions); err != nil {
		return nil, err
	}
	if out.Guests, err = enumField(raw, "guests", guestsOptions); err != nil {
		return nil, err
	}
	if out.Smoking, err = enumField(raw, "smoking", stanceOptions); err != nil {
		return nil, err
	}
	if out.Drinking, err = enumField(raw, "drinking", stanceOptions); err != nil {
		return nil, err
	}
	if out.Pets, err = enumField(raw, "pets", stanceOptions); err != nil {
		return nil, err
	}
	if out.FurnishedRoom, err = enumField(raw, "furnished_room", furnishedOptions); err != nil {
		return nil, err
	}
	if out.Bathroom, err = enumField(raw, "bathroom", bathroomOptions); err != nil {
		return nil, err
	}
	if out.MaxFlatmates, err = enumField(raw, "max_flatmates", maxFlatmatesOptions); err != nil {
		return nil, err
	}
	if out.Internet, err = enumField(raw, "internet", internetOptions); err != nil {
		return nil, err
	}
	if out.Parking, err = enumField(raw, "parking", parkingOptions); err != nil {
		return nil, err
	}

	if out.Cleanliness, err = sliderField(raw, "cleanliness"); err != nil {
		return nil, err
	}
	if out.Socialness, err = sliderField(raw, "socialness"); err != nil {
		return nil, err
	}
	if out.MorningPerson, err = sliderField(raw, "morning_person"); err != nil {
		return nil, err
	}
	if out.NoiseSensitivity, err = sliderField(raw, "noise_sensitivity"); err != nil {
		return nil, err
	}
	if out.CookingFrequency, err = sliderField(raw, "cooking_frequency"); err != nil {
		return nil, err
	}
	if out.CommonAreas, err = sliderField(raw, "common_areas"); err != nil {
		return nil, err
	}

	out.Interests = cleanStringList(raw["interests"])
	out.MusicTaste = cleanStringList(raw["music_taste"])
	out.LocationTags = cleanStringList(raw["location_tags"])

	if v, ok := raw["preferred_locations"]; ok {
		locations, err := parseLocations(v)
		if err != nil {
			return nil, err
		}
		out.PreferredLocations = locations
	}

	if v, ok := raw["bio"]; ok {
		bio, _ := v.(string)
		out.Bio = capString(strings.TrimSpace(bio), maxBioLen)
	}

	if v, ok := raw["parties"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, &ValidationError{"parties", "Parties answer must be true or false"}
		}
		out.Parties = &b
	}

	if v, ok := raw["terms_accepted"].(bool); ok {
		out.TermsAccepted = v
	}
	if v, ok := raw["marketing_opt_in"].(bool); ok {
		out.MarketingOptIn = v
	}

	return out, nil
}

// RevalidateAnswers re-runs validation on an already-canonical record.
// Used by the trait analyzer as a defensive double check and by tests for
// the idempotence property.
func RevalidateAnswers(a *QuizAnswers) (*QuizAnswers, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return ValidateAnswers(raw)
}

func enumField(raw map[string]interface{}, key string, options []string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok || !containsString(options, s) {
		return "", &ValidationError{key, fmt.Sprintf("Invalid value for %s", key)}
	}
	return s, nil
}

func sliderField(raw map[string]interface{}, key string) (*int, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	n, ok := toInt(v)
	if !ok || n < 0 || n > 10 {
		return nil, &ValidationError{key, fmt.Sprintf("%s must be between 0 and 10", key)}
	}
	return &n, nil
}

// cleanStringList keeps only string entries, caps each at maxEntryLen and
// the list at maxListEntries. Excess items are dropped silently rather than
// rejected.
func cleanStringList(v interface{}) []string {
	var out []string
	appendEntry := func(s string) {
		if len(out) >= maxListEntries {
			return
		}
		s = capString(strings.TrimSpace(s), maxEntryLen)
		if s == "" {
			return
		}
		out = append(out, s)
	}

	switch list := v.(type) {
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok {
				appendEntry(s)
			}
		}
	case []string:
		for _, s := range list {
			appendEntry(s)
		}
	}
	return out
}

// parseLocations splits free-text suburbs on commas. Accepts an already
// parsed list so revalidation of canonical output stays idempotent.
func parseLocations(v interface{}) ([]string, error) {
	var parts []string
	switch t := v.(type) {
	case string:
		parts = strings.Split(t, ",")
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	case []string:
		parts = t
	default:
		return nil, &ValidationError{"preferred_locations", "Preferred locations must be text"}
	}

	var out []string
	for _, p := range parts {
		p = capString(strings.TrimSpace(p), maxEntryLen)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, &ValidationError{"preferred_locations", "At least one preferred location is required"}
	}
	return out, nil
}

// capString truncates to at most max bytes without splitting a rune, then
// drops any whitespace the cut exposed so the result survives revalidation
// unchanged.
func capString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
