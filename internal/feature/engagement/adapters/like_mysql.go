// Package adapters provides repository implementations for the engagement feature.
package adapters

import (
	"context"

	"vidshare_backend/internal/feature/engagement/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeMySQL is a MySQL implementation of the LikeRepository interface.
type likeMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure likeMySQL implements LikeRepository.
var _ usecase.LikeRepository = (*likeMySQL)(nil)

// NewLikeMySQL creates a new instance of likeMySQL.
func NewLikeMySQL(db *gorm.DB) *likeMySQL {
	return &likeMySQL{db: db}
}

// LikeModel is the GORM model for the likes table. The composite primary key
// is the membership invariant: a (video, user) pair either exists once or
// not at all.
type LikeModel struct {
	VideoID string `gorm:"primaryKey;size:36"`
	UserID  string `gorm:"primaryKey;size:36"`
}

// TableName returns the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// Toggle flips the (videoID, userID) membership atomically. The flip is a
// unique-constraint-backed insert: ON CONFLICT DO NOTHING either creates the
// pair or affects zero rows, and the zero-row case deletes it, all inside one
// transaction. This replaces a check-then-act select with a single
// compare-and-swap on the membership key, so concurrent toggles on the same
// pair serialize instead of racing.
func (r *likeMySQL) Toggle(ctx context.Context, videoID, userID string) (bool, int64, error) {
	var (
		liked bool
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&LikeModel{VideoID: videoID, UserID: userID})
		if insert.Error != nil {
			return insert.Error
		}

		if insert.RowsAffected > 0 {
			liked = true
		} else {
			// Pair already existed: this toggle removes it.
			if err := tx.Where("video_id = ? AND user_id = ?", videoID, userID).
				Delete(&LikeModel{}).Error; err != nil {
				return err
			}
			liked = false
		}

		return tx.Model(&LikeModel{}).
			Where("video_id = ?", videoID).
			Count(&total).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, total, nil
}

// CountByVideo returns the current like total for a video.
func (r *likeMySQL) CountByVideo(ctx context.Context, videoID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&LikeModel{}).
		Where("video_id = ?", videoID).
		Count(&total).Error
	return total, err
}
