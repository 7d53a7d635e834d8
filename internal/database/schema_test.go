package database

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSqlite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, Setup(db))
	require.NoError(t, Migrate(db))
	return db
}

func TestReset(t *testing.T) {
	t.Parallel()
	db := setupSqlite(t)
	ctx := context.Background()

	// Pre-existing rows must not survive a reset.
	stale := &models.User{
		FirstName: "Stale",
		LastName:  "Row",
		Nickname:  "stale",
		Password:  "pw",
		Email:     "stale@example.com",
		Birthdate: models.NewDate(time.Now()),
	}
	require.NoError(t, db.Create(stale).Error)

	require.NoError(t, Reset(ctx, db))

	var users, tags, posts, joins int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Tag{}).Count(&tags)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.PostTag{}).Count(&joins)

	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, 4, tags)
	assert.EqualValues(t, 3, posts)
	assert.EqualValues(t, 4, joins)

	var gone int64
	db.Model(&models.User{}).Where("nickname = ?", "stale").Count(&gone)
	assert.Zero(t, gone)

	// Relations from the sample data hold together.
	var post models.Post
	require.NoError(t, db.Preload("Tags").Preload("Author").First(&post, 1).Error)
	require.NotNil(t, post.Author)
	assert.Equal(t, "ada", post.Author.Nickname)
	assert.Len(t, post.Tags, 2)

	t.Run("reset is repeatable", func(t *testing.T) {
		require.NoError(t, Reset(ctx, db))
		var again int64
		db.Model(&models.User{}).Count(&again)
		assert.EqualValues(t, 3, again)
	})
}

func TestSetupJoinTableTimestamps(t *testing.T) {
	t.Parallel()
	db := setupSqlite(t)

	user := &models.User{
		FirstName: "A", LastName: "B", Nickname: "joiner",
		Password: "pw", Email: "joiner@example.com",
	}
	require.NoError(t, db.Create(user).Error)

	tag := &models.Tag{Title: "joined"}
	require.NoError(t, db.Create(tag).Error)

	post := &models.Post{
		AuthorID: user.ID, Title: "t", Content: "c", IsPublished: true,
		Tags: []models.Tag{*tag},
	}
	require.NoError(t, db.Create(post).Error)

	var join models.PostTag
	require.NoError(t, db.First(&join, "post_id = ? AND tag_id = ?", post.ID, tag.ID).Error)
	assert.False(t, join.CreatedAt.IsZero(), "join rows carry their creation time")
}
