// internal/quiz/service.go

package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// SheetsSink mirrors submitted profiles into the ops spreadsheet.
// Optional; a nil sink disables mirroring.
type SheetsSink interface {
	AppendProfile(ctx context.Context, profile *FlatmateProfile) error
}

// ScoreInvalidator drops cached pairwise scores for a user. Resubmitting
// the quiz changes every score the user appears in.
type ScoreInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// Service defines the quiz business logic interface
type Service interface {
	SubmitAnswers(ctx context.Context, userID, displayName string, raw map[string]interface{}) (*FlatmateProfile, error)
	GetProfile(ctx context.Context, userID string) (*FlatmateProfile, error)
	DeactivateProfile(ctx context.Context, userID string) error
}

type service struct {
	repo   Repository
	sheet  SheetsSink
	scores ScoreInvalidator
}

// NewService creates a new quiz service
func NewService(repo Repository, sheet SheetsSink, scores ScoreInvalidator) Service {
	return &service{
		repo:   repo,
		sheet:  sheet,
		scores: scores,
	}
}

// SubmitAnswers validates a raw submission, derives the trait and preference
// records, and upserts the whole profile. Resubmitting replaces everything
// derived from the previous answers.
func (s *service) SubmitAnswers(ctx context.Context, userID, displayName string, raw map[string]interface{}) (*FlatmateProfile, error) {
	answers, err := ValidateAnswers(raw)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			recordValidationFailure(vErr.Field)
		}
		return nil, err
	}

	profile := &FlatmateProfile{
		UserID:      userID,
		DisplayName: displayName,
		Answers:     answers,
		Traits:      AnalyzeTraits(answers),
		Preferences: ExtractMatchPreferences(answers),
		Property:    ExtractPropertyPreferences(answers),
		IsActive:    true,
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	recordSubmission()

	if s.scores != nil {
		s.scores.Invalidate(ctx, userID)
	}

	if s.sheet != nil {
		go func(p *FlatmateProfile) {
			if err := s.sheet.AppendProfile(context.Background(), p); err != nil {
				log.Printf("Failed to mirror profile to sheet: %v", err)
			}
		}(profile)
	}

	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*FlatmateProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) DeactivateProfile(ctx context.Context, userID string) error {
	return s.repo.SetActive(ctx, userID, false)
}
