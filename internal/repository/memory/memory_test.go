package memory

import (
	"context"
	"testing"
	"time"

	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := &domain.User{Email: "a@example.com", Role: domain.RoleAdmin, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	dup := &domain.User{Email: "a@example.com", Role: domain.RoleAdmin, CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrUserExists)
}

func TestUserRepository_GetByEmail_Absent(t *testing.T) {
	repo := NewUserRepository()

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFeedbackRepository_ListOrderAndLimit(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		sub := &domain.FeedbackSubmission{
			Name:      "attendee",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, sub))
	}

	listed, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.True(t, listed[0].CreatedAt.After(listed[1].CreatedAt))
	assert.True(t, listed[1].CreatedAt.After(listed[2].CreatedAt))
}

func TestFeedbackRepository_CopiesOnWrite(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	sub := &domain.FeedbackSubmission{Name: "original", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, sub))

	// Mutating the caller's struct after insert must not affect the store
	sub.Name = "mutated"

	listed, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "original", listed[0].Name)
}
