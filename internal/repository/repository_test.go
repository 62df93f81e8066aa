package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"feedbackboard/internal/model"
)

// newTestDB opens an isolated in-memory database per test, with foreign keys
// enforced and duplicate-key translation on, mirroring the production setup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Feedback{}))
	return db
}

func newTestUser(username, email string) *model.User {
	return &model.User{
		Username:  username,
		Password:  "$2a$10$fakedhashforrepositorytestsonlyxxxxxxxxxxxxxxxxxxxxxx",
		Email:     email,
		FirstName: "First",
		LastName:  "Last",
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("alice", "alice@example.com")))

	err := repo.Create(ctx, newTestUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the second user must never be persisted")
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("alice", "alice@example.com")))

	err := repo.Create(ctx, newTestUser("bob", "alice@example.com"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("alice", "alice@example.com")))

	user, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newTestUser("alice", "alice@example.com")))
	require.NoError(t, users.Create(ctx, newTestUser("bob", "bob@example.com")))
	require.NoError(t, feedback.Create(ctx, &model.Feedback{Title: "T1", Content: "C1", Username: "alice"}))
	require.NoError(t, feedback.Create(ctx, &model.Feedback{Title: "T2", Content: "C2", Username: "alice"}))
	require.NoError(t, feedback.Create(ctx, &model.Feedback{Title: "T3", Content: "C3", Username: "bob"}))

	require.NoError(t, users.Delete(ctx, "alice"))

	_, err := users.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	orphans, err := feedback.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, orphans, "cascade must remove all of alice's feedback")

	// Other users' rows are untouched.
	kept, err := feedback.ListByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestUserRepository_FindWithFeedback(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newTestUser("alice", "alice@example.com")))
	require.NoError(t, feedback.Create(ctx, &model.Feedback{Title: "T", Content: "C", Username: "alice"}))

	user, err := users.FindWithFeedback(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, user.Feedback, 1)
	assert.Equal(t, "T", user.Feedback[0].Title)
}

func TestFeedbackRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newTestUser("alice", "alice@example.com")))

	fb := &model.Feedback{Title: "T", Content: "C", Username: "alice"}
	require.NoError(t, feedback.Create(ctx, fb))
	require.NotZero(t, fb.ID, "id is assigned by the database")

	got, err := feedback.FindByID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)

	require.NoError(t, feedback.Update(ctx, fb.ID, "T2", "C2"))
	got, err = feedback.FindByID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "C2", got.Content)

	require.NoError(t, feedback.Delete(ctx, fb.ID))
	_, err = feedback.FindByID(ctx, fb.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeedbackRepository_RequiresExistingUser(t *testing.T) {
	db := newTestDB(t)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	err := feedback.Create(ctx, &model.Feedback{Title: "T", Content: "C", Username: "ghost"})
	assert.Error(t, err, "foreign key must reject feedback without an owner")
}
