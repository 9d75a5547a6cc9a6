package service

import (
	"context"
	"time"

	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/repository"
)

// listLimit caps listings; the expected load is a few hundred submissions per
// event, so anything beyond this is not worth paginating.
const listLimit = 500

type SubmissionService struct {
	feedbackRepo repository.FeedbackRepository
	promptRepo   repository.PromptRepository
}

func NewSubmissionService(feedbackRepo repository.FeedbackRepository, promptRepo repository.PromptRepository) *SubmissionService {
	return &SubmissionService{
		feedbackRepo: feedbackRepo,
		promptRepo:   promptRepo,
	}
}

// SubmitFeedback stamps and stores a feedback submission, returning the
// generated ID.
func (s *SubmissionService) SubmitFeedback(ctx context.Context, submission *domain.FeedbackSubmission) (string, error) {
	submission.ID = ""
	submission.CreatedAt = time.Now()
	if err := s.feedbackRepo.Create(ctx, submission); err != nil {
		return "", err
	}
	return submission.ID, nil
}

func (s *SubmissionService) ListFeedback(ctx context.Context) ([]*domain.FeedbackSubmission, error) {
	return s.feedbackRepo.List(ctx, listLimit)
}

func (s *SubmissionService) SubmitPrompt(ctx context.Context, submission *domain.PromptSubmission) (string, error) {
	submission.ID = ""
	submission.CreatedAt = time.Now()
	if err := s.promptRepo.Create(ctx, submission); err != nil {
		return "", err
	}
	return submission.ID, nil
}

func (s *SubmissionService) ListPrompts(ctx context.Context) ([]*domain.PromptSubmission, error) {
	return s.promptRepo.List(ctx, listLimit)
}
