package service

import (
	"github.com/profenger/feedback-hub/internal/config"
	"github.com/profenger/feedback-hub/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Submission *SubmissionService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, cfg),
		Submission: NewSubmissionService(repos.Feedback, repos.Prompt),
	}
}
