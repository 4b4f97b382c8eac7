package adapters

import (
	"context"
	"time"

	"vidshare_backend/internal/feature/engagement/domain/entity"
	"vidshare_backend/internal/feature/engagement/usecase"

	"gorm.io/gorm"
)

// commentMySQL is a MySQL implementation of the CommentRepository interface.
type commentMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure commentMySQL implements CommentRepository.
var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentMySQL creates a new instance of commentMySQL.
func NewCommentMySQL(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// CommentModel is the GORM model for the comments table. Seq is an
// auto-increment primary key used only as the tie-breaker for comments
// created within the same timestamp; ID is the public identity.
type CommentModel struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"uniqueIndex;size:36;not null"`
	VideoID   string    `gorm:"index;size:36;not null"`
	UserID    string    `gorm:"size:36;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

// Create appends a comment with a server-assigned timestamp.
func (r *commentMySQL) Create(ctx context.Context, comment *entity.Comment) error {
	model := &CommentModel{
		ID:      comment.ID,
		VideoID: comment.VideoID,
		UserID:  comment.UserID,
		Text:    comment.Text,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	comment.CreatedAt = model.CreatedAt
	return nil
}

// ListByVideo returns the comments for a video, newest first. Seq breaks
// timestamp ties so the order is stable across calls.
func (r *commentMySQL) ListByVideo(ctx context.Context, videoID string) ([]entity.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, *m.ToEntity())
	}
	return comments, nil
}
