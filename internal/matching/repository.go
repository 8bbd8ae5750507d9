// internal/matching/repository.go

package matching

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

// ErrProfileNotFound is returned when no profile exists for a user
var ErrProfileNotFound = errors.New("profile not found")

// Repository defines the matching data access interface
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*MatchProfile, error)
	FindCandidates(ctx context.Context, userID, state string, limit int) ([]*MatchProfile, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL matching repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

type matchRow struct {
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
	Answers     []byte `db:"answers"`
	Traits      []byte `db:"traits"`
	Preferences []byte `db:"preferences"`
	Property    []byte `db:"property"`
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID string) (*MatchProfile, error) {
	var row matchRow
	query := `
		SELECT user_id, display_name, answers, traits, preferences, property
		FROM flatmate_profiles
		WHERE user_id = $1 AND is_active = true`

	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return rowToProfile(&row)
}

// FindCandidates returns active profiles in the same state, newest first.
// State is the coarse pre-filter; fine-grained location matching happens in
// the scorer.
func (r *postgresRepository) FindCandidates(ctx context.Context, userID, state string, limit int) ([]*MatchProfile, error) {
	var rows []matchRow
	query := `
		SELECT user_id, display_name, answers, traits, preferences, property
		FROM flatmate_profiles
		WHERE is_active = true
		  AND user_id != $1
		  AND ($2 = '' OR answers->>'state' = $2)
		ORDER BY updated_at DESC
		LIMIT $3`

	if err := r.db.SelectContext(ctx, &rows, query, userID, state, limit); err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}

	profiles := make([]*MatchProfile, 0, len(rows))
	for i := range rows {
		profile, err := rowToProfile(&rows[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func rowToProfile(row *matchRow) (*MatchProfile, error) {
	profile := &MatchProfile{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
	}

	if len(row.Answers) > 0 {
		profile.Answers = &quiz.QuizAnswers{}
		if err := json.Unmarshal(row.Answers, profile.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}
	if len(row.Traits) > 0 {
		profile.Traits = &quiz.PersonalityTraits{}
		if err := json.Unmarshal(row.Traits, profile.Traits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal traits: %w", err)
		}
	}
	if len(row.Preferences) > 0 {
		profile.Preferences = &quiz.MatchPreferences{}
		if err := json.Unmarshal(row.Preferences, profile.Preferences); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
	}
	if len(row.Property) > 0 {
		profile.Property = &quiz.PropertyPreferences{}
		if err := json.Unmarshal(row.Property, profile.Property); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property: %w", err)
		}
	}

	return profile, nil
}
