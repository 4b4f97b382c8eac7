package adapters

import (
	"context"
	"fmt"
	"testing"

	"vidshare_backend/internal/feature/engagement/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupCommentTestDB prepares an in-memory SQLite database for comment testing.
func setupCommentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CommentModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestCommentMySQL_Create(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentMySQL(db)

	comment := &entity.Comment{
		ID:      "11111111-1111-1111-1111-111111111111",
		VideoID: "video-1",
		UserID:  "user-1",
		Text:    "  nice video  ",
	}

	err := repo.Create(context.Background(), comment)

	require.NoError(t, err)
	assert.False(t, comment.CreatedAt.IsZero(), "CreatedAt should be server-assigned")

	comments, err := repo.ListByVideo(context.Background(), "video-1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "  nice video  ", comments[0].Text, "original whitespace must be preserved")
}

func TestCommentMySQL_ListByVideo(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		db := setupCommentTestDB(t)
		repo := NewCommentMySQL(db)

		for i := 0; i < 3; i++ {
			comment := &entity.Comment{
				ID:      fmt.Sprintf("comment-%d", i),
				VideoID: "video-1",
				UserID:  "user-1",
				Text:    fmt.Sprintf("comment number %d", i),
			}
			require.NoError(t, repo.Create(context.Background(), comment))
		}

		comments, err := repo.ListByVideo(context.Background(), "video-1")

		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "comment-2", comments[0].ID, "latest comment should come first")
		assert.Equal(t, "comment-0", comments[2].ID)
	})

	t.Run("timestamp ties keep insertion order, newest first", func(t *testing.T) {
		db := setupCommentTestDB(t)
		repo := NewCommentMySQL(db)

		// Sub-second inserts routinely land on identical timestamps; the
		// sequence column must keep the order deterministic.
		for i := 0; i < 10; i++ {
			comment := &entity.Comment{
				ID:      fmt.Sprintf("burst-%d", i),
				VideoID: "video-1",
				UserID:  "user-1",
				Text:    "burst",
			}
			require.NoError(t, repo.Create(context.Background(), comment))
		}

		first, err := repo.ListByVideo(context.Background(), "video-1")
		require.NoError(t, err)
		second, err := repo.ListByVideo(context.Background(), "video-1")
		require.NoError(t, err)

		require.Len(t, first, 10)
		assert.Equal(t, "burst-9", first[0].ID, "last inserted should come first")
		assert.Equal(t, first, second, "ordering must be stable across calls")
	})

	t.Run("comments are scoped per video", func(t *testing.T) {
		db := setupCommentTestDB(t)
		repo := NewCommentMySQL(db)

		require.NoError(t, repo.Create(context.Background(), &entity.Comment{
			ID: "c1", VideoID: "video-1", UserID: "user-1", Text: "on one",
		}))
		require.NoError(t, repo.Create(context.Background(), &entity.Comment{
			ID: "c2", VideoID: "video-2", UserID: "user-1", Text: "on two",
		}))

		comments, err := repo.ListByVideo(context.Background(), "video-1")

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "c1", comments[0].ID)
	})

	t.Run("no comments yields an empty slice", func(t *testing.T) {
		db := setupCommentTestDB(t)
		repo := NewCommentMySQL(db)

		comments, err := repo.ListByVideo(context.Background(), "silent-video")

		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
