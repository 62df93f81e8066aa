package repository

import (
	"context"

	"gorm.io/gorm"

	"feedbackboard/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	FindByID(ctx context.Context, id uint) (*model.Feedback, error)
	ListByUsername(ctx context.Context, username string) ([]model.Feedback, error)
	Update(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository builds a GORM-backed repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var fb model.Feedback
	if err := r.db.WithContext(ctx).First(&fb, id).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *feedbackRepository) ListByUsername(ctx context.Context, username string) ([]model.Feedback, error) {
	var items []model.Feedback
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *feedbackRepository) Update(ctx context.Context, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&model.Feedback{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (r *feedbackRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, id).Error
}
