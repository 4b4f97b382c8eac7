// Package adapters provides repository implementations for the videos feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"vidshare_backend/internal/feature/videos/domain/entity"
	"vidshare_backend/internal/feature/videos/usecase"

	"gorm.io/gorm"
)

// videoMySQL is a MySQL implementation of the VideoRepository interface.
type videoMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure videoMySQL implements VideoRepository.
var _ usecase.VideoRepository = (*videoMySQL)(nil)

// NewVideoMySQL creates a new instance of videoMySQL.
func NewVideoMySQL(db *gorm.DB) *videoMySQL {
	return &videoMySQL{db: db}
}

// VideoModel is the GORM model for the videos table.
type VideoModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	OwnerID     string    `gorm:"index;size:36;not null"`
	Filename    string    `gorm:"size:512;not null"`
	Private     bool      `gorm:"not null;default:false"`
	Views       int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// ToEntity converts the GORM model to a domain entity.
func (m *VideoModel) ToEntity() *entity.Video {
	return &entity.Video{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		Filename:    m.Filename,
		Private:     m.Private,
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
	}
}

// VideoModelFromEntity converts a domain entity to a GORM model.
func VideoModelFromEntity(v *entity.Video) *VideoModel {
	return &VideoModel{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		OwnerID:     v.OwnerID,
		Filename:    v.Filename,
		Private:     v.Private,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt,
	}
}

// Create persists a new video row.
func (r *videoMySQL) Create(ctx context.Context, video *entity.Video) error {
	model := VideoModelFromEntity(video)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	video.CreatedAt = model.CreatedAt
	return nil
}

// FindByID retrieves a video by ID.
func (r *videoMySQL) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	var model VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVideoNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// ListPublic returns all public videos, newest first.
func (r *videoMySQL) ListPublic(ctx context.Context) ([]entity.Video, error) {
	var models []VideoModel
	if err := r.db.WithContext(ctx).
		Where("private = ?", false).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	videos := make([]entity.Video, 0, len(models))
	for _, m := range models {
		videos = append(videos, *m.ToEntity())
	}
	return videos, nil
}

// IncrementViews bumps the view counter by exactly one and returns the
// updated value. The increment is a single UPDATE against the row, so
// concurrent increments serialize per video and none are lost. The follow-up
// read may observe a later value; only the write needs to be linearizable.
func (r *videoMySQL) IncrementViews(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, usecase.ErrVideoNotFound
	}

	var views int64
	if err := r.db.WithContext(ctx).
		Model(&VideoModel{}).
		Where("id = ?", id).
		Pluck("views", &views).Error; err != nil {
		return 0, err
	}
	return views, nil
}
