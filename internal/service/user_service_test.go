package service

import (
	"context"
	"fmt"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db))
}

func strPtr(s string) *string { return &s }

// createTestUser persists a user with a unique nickname/email derived from n.
func createTestUser(t *testing.T, svc *UserService, n int) *models.User {
	t.Helper()
	location := fmt.Sprintf("City %d", n)
	job := fmt.Sprintf("Job %d", n)
	user, err := svc.Create(context.Background(), models.UserCreateInput{
		FirstName: "Test",
		LastName:  "User",
		Nickname:  fmt.Sprintf("user%d", n),
		Email:     fmt.Sprintf("user%d@example.com", n),
		Password:  "secret",
		Birthdate: "1990-01-15",
		Location:  &location,
		JobTitle:  &job,
	})
	require.NoError(t, err)
	return user
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	t.Run("persists all fields", func(t *testing.T) {
		user, err := svc.Create(ctx, models.UserCreateInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Nickname:  "ada",
			Email:     "ada@example.com",
			Password:  "secret",
			Birthdate: "1990-12-10",
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "1990-12-10", user.Birthdate.String())
		assert.Nil(t, user.Location)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects malformed birthdate", func(t *testing.T) {
		_, err := svc.Create(ctx, models.UserCreateInput{
			FirstName: "Bad",
			LastName:  "Date",
			Nickname:  "baddate",
			Email:     "baddate@example.com",
			Password:  "secret",
			Birthdate: "12/10/1990",
		})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := createTestUser(t, svc, 1)

	t.Run("found", func(t *testing.T) {
		got, err := svc.Get(ctx, user.ID, false)
		require.NoError(t, err)
		assert.Equal(t, user.Nickname, got.Nickname)
	})

	t.Run("missing id yields typed not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, 9999, false)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.Contains(t, appErr.Message, "9999")
	})

	t.Run("includePosts toggles preload", func(t *testing.T) {
		postSvc := NewPostService(
			repository.NewPostRepository(db),
			repository.NewUserRepository(db),
			repository.NewTagRepository(db),
		)
		_, err := postSvc.Create(ctx, user.ID, models.PostCreateInput{
			Title:   "First",
			Content: "body",
		})
		require.NoError(t, err)

		without, err := svc.Get(ctx, user.ID, false)
		require.NoError(t, err)
		assert.Empty(t, without.Posts)

		with, err := svc.Get(ctx, user.ID, true)
		require.NoError(t, err)
		assert.Len(t, with.Posts, 1)
	})
}

func TestUserService_Search(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		createTestUser(t, svc, i)
	}

	t.Run("filters combine with OR", func(t *testing.T) {
		// nickname matches user1 only, location matches user3 only.
		users, err := svc.Search(ctx, models.UserSearchInput{
			Nickname: strPtr("user1"),
			Location: strPtr("City 3"),
			Limit:    100,
		})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		users, err := svc.Search(ctx, models.UserSearchInput{
			Nickname: strPtr("USER2"),
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "user2", users[0].Nickname)
	})

	t.Run("no filters returns the page", func(t *testing.T) {
		users, err := svc.Search(ctx, models.UserSearchInput{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, users, 5)
	})

	t.Run("skip and limit window the result", func(t *testing.T) {
		users, err := svc.Search(ctx, models.UserSearchInput{Skip: 2, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		users, err := svc.Search(ctx, models.UserSearchInput{})
		require.NoError(t, err)
		assert.Len(t, users, 5)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	t.Run("patches only supplied fields", func(t *testing.T) {
		user := createTestUser(t, svc, 10)
		updated, err := svc.Update(ctx, user.ID, models.UserUpdateInput{
			FirstName: strPtr("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.FirstName)
		assert.Equal(t, user.LastName, updated.LastName)
		assert.Equal(t, user.Nickname, updated.Nickname)
		require.NotNil(t, updated.Location)
		assert.Equal(t, *user.Location, *updated.Location)
	})

	t.Run("explicit null clears a nullable field", func(t *testing.T) {
		user := createTestUser(t, svc, 11)
		require.NotNil(t, user.Location)

		updated, err := svc.Update(ctx, user.ID, models.UserUpdateInput{
			Location: models.Null[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.Location)

		reloaded, err := svc.Get(ctx, user.ID, false)
		require.NoError(t, err)
		assert.Nil(t, reloaded.Location)
		require.NotNil(t, reloaded.JobTitle, "untouched nullable fields must survive")
	})

	t.Run("absent optional leaves the stored value", func(t *testing.T) {
		user := createTestUser(t, svc, 12)
		updated, err := svc.Update(ctx, user.ID, models.UserUpdateInput{
			LastName: strPtr("Changed"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Location)
		assert.Equal(t, *user.Location, *updated.Location)
	})

	t.Run("birthdate is re-parsed", func(t *testing.T) {
		user := createTestUser(t, svc, 13)
		_, err := svc.Update(ctx, user.ID, models.UserUpdateInput{
			Birthdate: strPtr("not-a-date"),
		})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("missing user yields typed not-found", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, models.UserUpdateInput{FirstName: strPtr("x")})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := newUserService(db)
	tagRepo := repository.NewTagRepository(db)
	postSvc := NewPostService(
		repository.NewPostRepository(db),
		repository.NewUserRepository(db),
		tagRepo,
	)
	ctx := context.Background()

	t.Run("cascades through posts to join rows", func(t *testing.T) {
		user := createTestUser(t, svc, 20)
		tag := &models.Tag{Title: "cascade-tag"}
		require.NoError(t, tagRepo.Create(ctx, tag))

		post, err := postSvc.Create(ctx, user.ID, models.PostCreateInput{
			Title:   "Doomed",
			Content: "body",
			TagIDs:  []uint{tag.ID},
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, user.ID))

		var postCount int64
		db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&postCount)
		assert.Zero(t, postCount, "posts must go with their author")

		var joinCount int64
		db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&joinCount)
		assert.Zero(t, joinCount, "join rows must go with the post")

		// The tag itself survives.
		_, err = tagRepo.GetByID(ctx, tag.ID, false)
		assert.NoError(t, err)
	})

	t.Run("missing user yields typed not-found", func(t *testing.T) {
		err := svc.Delete(ctx, 9999)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}
