package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	profiles map[string]*FlatmateProfile
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{profiles: make(map[string]*FlatmateProfile)}
}

func (r *fakeRepository) SaveProfile(ctx context.Context, profile *FlatmateProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeRepository) GetProfile(ctx context.Context, userID string) (*FlatmateProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeRepository) SetActive(ctx context.Context, userID string, active bool) error {
	profile, ok := r.profiles[userID]
	if !ok {
		return ErrProfileNotFound
	}
	profile.IsActive = active
	return nil
}

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, userID string) {
	f.invalidated = append(f.invalidated, userID)
}

func TestSubmitAnswersDerivesEverything(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	profile, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", validRawAnswers())
	require.NoError(t, err)

	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "Alex", profile.DisplayName)
	assert.True(t, profile.IsActive)
	require.NotNil(t, profile.Answers)
	require.NotNil(t, profile.Traits)
	require.NotNil(t, profile.Preferences)
	require.NotNil(t, profile.Property)
	assert.NotEmpty(t, profile.Traits.Cleanliness)

	saved, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, profile, saved)
}

func TestSubmitAnswersRejectsInvalid(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)

	raw := validRawAnswers()
	raw["age"] = float64(12)

	_, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", raw)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "age", vErr.Field)
}

func TestSubmitAnswersInvalidatesCachedScores(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewService(newFakeRepository(), nil, inv)

	_, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", validRawAnswers())
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, inv.invalidated)
}

func TestResubmitReplacesDerivedRecords(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	_, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", validRawAnswers())
	require.NoError(t, err)

	raw := validRawAnswers()
	raw["cleanliness"] = float64(1)
	raw["dishes"] = "Takeaway life"

	updated, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", raw)
	require.NoError(t, err)
	assert.Equal(t, CleanRelaxed, updated.Traits.Cleanliness)

	saved, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, CleanRelaxed, saved.Traits.Cleanliness)
}

func TestDeactivateProfile(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil, nil)

	_, err := svc.SubmitAnswers(context.Background(), "user-1", "Alex", validRawAnswers())
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateProfile(context.Background(), "user-1"))

	saved, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, saved.IsActive)

	assert.ErrorIs(t, svc.DeactivateProfile(context.Background(), "ghost"), ErrProfileNotFound)
}
