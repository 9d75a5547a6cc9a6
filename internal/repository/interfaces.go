package repository

import (
	"context"

	"github.com/profenger/feedback-hub/internal/domain"
)

type UserRepository interface {
	// Create inserts a new user, returning domain.ErrUserExists when the
	// normalized email is already taken.
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, submission *domain.FeedbackSubmission) error
	// List returns submissions newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.FeedbackSubmission, error)
}

type PromptRepository interface {
	Create(ctx context.Context, submission *domain.PromptSubmission) error
	List(ctx context.Context, limit int) ([]*domain.PromptSubmission, error)
}

type Repositories struct {
	User     UserRepository
	Feedback FeedbackRepository
	Prompt   PromptRepository
}
