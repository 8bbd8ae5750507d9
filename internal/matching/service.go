// internal/matching/service.go

package matching

import (
	"context"
	"fmt"
	"log"
)

// MatchSink records scored pairs for the ops spreadsheet. Optional.
type MatchSink interface {
	AppendMatchResult(ctx context.Context, userID, otherID string, overall int, reasons []string) error
}

// Service defines the matching business logic interface
type Service interface {
	GetCompatibility(ctx context.Context, userID, otherID string) (*CompatibilityScore, error)
	FindBestMatches(ctx context.Context, userID string, opts MatchOptions) ([]*CompatibilityMatch, error)
	ScreenTenant(ctx context.Context, ownerID, tenantID string, pctx *PropertyContext) (*CompatibilityScore, error)
}

type service struct {
	repo          Repository
	engine        *Engine
	cache         *ScoreCache
	sink          MatchSink
	candidatePool int
}

// NewService creates a new matching service
func NewService(repo Repository, engine *Engine, cache *ScoreCache, sink MatchSink, candidatePool int) Service {
	return &service{
		repo:          repo,
		engine:        engine,
		cache:         cache,
		sink:          sink,
		candidatePool: candidatePool,
	}
}

// GetCompatibility scores a single pair. Peer scores are cached; the inputs
// only change on quiz resubmission, which invalidates the cache.
func (s *service) GetCompatibility(ctx context.Context, userID, otherID string) (*CompatibilityScore, error) {
	if cached := s.cache.Get(ctx, userID, otherID); cached != nil {
		return cached, nil
	}

	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.repo.GetProfile(ctx, otherID)
	if err != nil {
		return nil, err
	}

	score := s.engine.Score(user, other, nil)
	s.cache.Set(ctx, userID, otherID, score)
	s.recordMatch(userID, otherID, score)

	return score, nil
}

// FindBestMatches ranks candidates from the user's state against their
// profile.
func (s *service) FindBestMatches(ctx context.Context, userID string, opts MatchOptions) ([]*CompatibilityMatch, error) {
	RecordBestMatchQuery()

	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := ""
	if user.Answers != nil {
		state = user.Answers.State
	}

	candidates, err := s.repo.FindCandidates(ctx, userID, state, s.candidatePool)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return s.engine.FindBestMatches(user, candidates, nil, opts), nil
}

// ScreenTenant scores a prospective tenant against a property owner. Owner
// scores are never cached; the property context varies per request.
func (s *service) ScreenTenant(ctx context.Context, ownerID, tenantID string, pctx *PropertyContext) (*CompatibilityScore, error) {
	owner, err := s.repo.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.repo.GetProfile(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if pctx == nil {
		pctx = &PropertyContext{}
	}
	pctx.IsPropertyOwner = true

	score := s.engine.Score(owner, tenant, pctx)
	s.recordMatch(ownerID, tenantID, score)

	return score, nil
}

func (s *service) recordMatch(userID, otherID string, score *CompatibilityScore) {
	if s.sink == nil {
		return
	}
	go func() {
		if err := s.sink.AppendMatchResult(context.Background(), userID, otherID, score.Overall, score.MatchReasons); err != nil {
			log.Printf("Failed to mirror match result to sheet: %v", err)
		}
	}()
}
