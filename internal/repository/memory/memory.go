// Package memory provides in-memory repository implementations. They back the
// test suite, which injects them in place of the MongoDB repositories so the
// full HTTP stack runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/repository"
)

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(),
		Feedback: NewFeedbackRepository(),
		Prompt:   NewPromptRepository(),
	}
}

type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		copied := *r.users[i]
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type FeedbackRepository struct {
	mu          sync.RWMutex
	submissions []*domain.FeedbackSubmission
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(ctx context.Context, submission *domain.FeedbackSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	copied := *submission
	r.submissions = append(r.submissions, &copied)
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, limit int) ([]*domain.FeedbackSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.FeedbackSubmission, 0, len(r.submissions))
	for i := len(r.submissions) - 1; i >= 0; i-- {
		copied := *r.submissions[i]
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type PromptRepository struct {
	mu          sync.RWMutex
	submissions []*domain.PromptSubmission
}

func NewPromptRepository() *PromptRepository {
	return &PromptRepository{}
}

func (r *PromptRepository) Create(ctx context.Context, submission *domain.PromptSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	copied := *submission
	r.submissions = append(r.submissions, &copied)
	return nil
}

func (r *PromptRepository) List(ctx context.Context, limit int) ([]*domain.PromptSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PromptSubmission, 0, len(r.submissions))
	for i := len(r.submissions) - 1; i >= 0; i-- {
		copied := *r.submissions[i]
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
