package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackboard/internal/model"
)

// MockFeedbackRepository is a mock implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListByUsername(ctx context.Context, username string) ([]model.Feedback, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) Update(ctx context.Context, id uint, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFeedbackService_Add(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(fb *model.Feedback) bool {
		return fb.Title == "T" && fb.Content == "C" && fb.Username == "alice"
	})).Return(nil)

	svc := NewFeedbackService(mockRepo)
	fb, err := svc.Add(context.Background(), "T", "C", "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", fb.Username)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_GetNotFound(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewFeedbackService(mockRepo)
	fb, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, fb)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_Update(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Update", mock.Anything, uint(1), "T2", "C2").Return(nil)

	svc := NewFeedbackService(mockRepo)
	require.NoError(t, svc.Update(context.Background(), 1, "T2", "C2"))
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_Delete(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	svc := NewFeedbackService(mockRepo)
	require.NoError(t, svc.Delete(context.Background(), 1))
	mockRepo.AssertExpectations(t)
}
