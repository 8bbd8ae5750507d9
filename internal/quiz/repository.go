// internal/quiz/repository.go

package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrProfileNotFound is returned when no profile exists for a user
var ErrProfileNotFound = errors.New("profile not found")

// Repository defines the quiz data access interface
type Repository interface {
	SaveProfile(ctx context.Context, profile *FlatmateProfile) error
	GetProfile(ctx context.Context, userID string) (*FlatmateProfile, error)
	SetActive(ctx context.Context, userID string, active bool) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL quiz repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// profileRow mirrors the flatmate_profiles table. The derived records live
// in jsonb columns so trait vocabulary changes never need a migration.
type profileRow struct {
	UserID      string    `db:"user_id"`
	DisplayName string    `db:"display_name"`
	Answers     []byte    `db:"answers"`
	Traits      []byte    `db:"traits"`
	Preferences []byte    `db:"preferences"`
	Property    []byte    `db:"property"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *postgresRepository) SaveProfile(ctx context.Context, profile *FlatmateProfile) error {
	row, err := toRow(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO flatmate_profiles (user_id, display_name, answers, traits, preferences, property, is_active, created_at, updated_at)
		VALUES (:user_id, :display_name, :answers, :traits, :preferences, :property, :is_active, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			answers = EXCLUDED.answers,
			traits = EXCLUDED.traits,
			preferences = EXCLUDED.preferences,
			property = EXCLUDED.property,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID string) (*FlatmateProfile, error) {
	var row profileRow
	query := `
		SELECT user_id, display_name, answers, traits, preferences, property, is_active, created_at, updated_at
		FROM flatmate_profiles
		WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return fromRow(&row)
}

func (r *postgresRepository) SetActive(ctx context.Context, userID string, active bool) error {
	query := `UPDATE flatmate_profiles SET is_active = $1, updated_at = NOW() WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, active, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func toRow(profile *FlatmateProfile) (*profileRow, error) {
	answers, err := json.Marshal(profile.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	traits, err := json.Marshal(profile.Traits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal traits: %w", err)
	}
	prefs, err := json.Marshal(profile.Preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	property, err := json.Marshal(profile.Property)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property: %w", err)
	}

	return &profileRow{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Answers:     answers,
		Traits:      traits,
		Preferences: prefs,
		Property:    property,
		IsActive:    profile.IsActive,
	}, nil
}

func fromRow(row *profileRow) (*FlatmateProfile, error) {
	profile := &FlatmateProfile{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.Answers) > 0 {
		profile.Answers = &QuizAnswers{}
		if err := json.Unmarshal(row.Answers, profile.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}
	if len(row.Traits) > 0 {
		profile.Traits = &PersonalityTraits{}
		if err := json.Unmarshal(row.Traits, profile.Traits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal traits: %w", err)
		}
	}
	if len(row.Preferences) > 0 {
		profile.Preferences = &MatchPreferences{}
		if err := json.Unmarshal(row.Preferences, profile.Preferences); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
	}
	if len(row.Property) > 0 {
		profile.Property = &PropertyPreferences{}
		if err := json.Unmarshal(row.Property, profile.Property); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property: %w", err)
		}
	}

	return profile, nil
}
