package service

import (
	"context"
	"fmt"

	"feedbackboard/internal/model"
	"feedbackboard/internal/repository"
)

// FeedbackService exposes feedback operations. Ownership is checked by the
// caller against the session identity before any mutation.
type FeedbackService interface {
	Add(ctx context.Context, title, content, owner string) (*model.Feedback, error)
	Get(ctx context.Context, id uint) (*model.Feedback, error)
	Update(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService builds a FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Add(ctx context.Context, title, content, owner string) (*model.Feedback, error) {
	fb := &model.Feedback{
		Title:    title,
		Content:  content,
		Username: owner,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

// Get looks up feedback by ID. Absence surfaces as gorm.ErrRecordNotFound,
// which the boundary maps to a 404.
func (s *feedbackService) Get(ctx context.Context, id uint) (*model.Feedback, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *feedbackService) Update(ctx context.Context, id uint, title, content string) error {
	return s.repo.Update(ctx, id, title, content)
}

func (s *feedbackService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
