package service

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"campmed/internal/model"
	"campmed/internal/repository"
)

// FeedbackService exposes feedback operations.
type FeedbackService interface {
	ListFeedback(ctx context.Context) ([]model.Feedback, error)
	CreateFeedback(ctx context.Context, feedback *model.Feedback) (*repository.InsertResult, error)
}

type feedbackService struct {
	repo   repository.FeedbackRepository
	policy *bluemonday.Policy
}

// NewFeedbackService builds a FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo, policy: bluemonday.StrictPolicy()}
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	return s.repo.List(ctx)
}

// CreateFeedback strips all markup from the free-text fields before storing.
func (s *feedbackService) CreateFeedback(ctx context.Context, feedback *model.Feedback) (*repository.InsertResult, error) {
	feedback.Name = strings.TrimSpace(s.policy.Sanitize(feedback.Name))
	feedback.Content = strings.TrimSpace(s.policy.Sanitize(feedback.Content))
	return s.repo.Create(ctx, feedback)
}
