package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-relation operations.
type FollowRepository interface {
	// Toggle flips the follow relation for the ordered pair and adjusts
	// both users' cached counters in the same transaction. It returns
	// the resulting state: true when the caller is now following.
	Toggle(ctx context.Context, followerID, followingID uint) (bool, error)
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
}

// followRepository implements FollowRepository.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	var following bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			following = false
			return adjustFollowCounters(tx, followerID, followingID, -1)
		}

		if err := tx.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent identical toggle won the insert; the
				// relation exists, so leave the counters to the winner.
				following = true
				return nil
			}
			return err
		}

		following = true
		return adjustFollowCounters(tx, followerID, followingID, 1)
	})
	if err != nil {
		return false, models.NewUnavailableError(err)
	}

	return following, nil
}

func adjustFollowCounters(tx *gorm.DB, followerID, followingID uint, delta int) error {
	if err := tx.Model(&models.User{}).Where("id = ?", followerID).
		UpdateColumn("following_count", gorm.Expr("following_count + ?", delta)).Error; err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", followingID).
		UpdateColumn("followers_count", gorm.Expr("followers_count + ?", delta)).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewUnavailableError(err)
	}
	return count > 0, nil
}
