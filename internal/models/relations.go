package models

import (
	"time"
)

// Follow marks that FollowerID follows FollowingID.
// The combination of FollowerID and FollowingID must be unique; the
// unique index is the concurrency guard for the follow toggle.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_following;index" json:"followerId"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_following;index" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Star marks that a user starred a project.
// The combination of UserID and ProjectID must be unique; existence of
// the row is the sole source of truth for the starred state.
type Star struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_project" json:"userId"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_user_project;index" json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}
