// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered developer account.
//
// FollowersCount, FollowingCount and ProjectsCount are denormalized
// caches of the corresponding relation counts. They are adjusted in the
// same transaction as the relation writes; the relations themselves
// remain authoritative.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	Skills       []string  `gorm:"serializer:json;type:text" json:"skills"`
	GithubURL    string    `json:"githubUrl"`
	LinkedinURL  string    `json:"linkedinUrl"`
	PortfolioURL string    `json:"portfolioUrl"`
	Location     string    `json:"location"`

	FollowersCount int64 `gorm:"not null;default:0" json:"followers"`
	FollowingCount int64 `gorm:"not null;default:0" json:"following"`
	ProjectsCount  int64 `gorm:"not null;default:0" json:"projects"`

	JoinedAt  time.Time `json:"joinDate"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
