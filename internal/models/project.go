package models

import (
	"time"
)

// ProjectAuthor is a write-time snapshot of the author's public fields.
// It is captured when the project is created and is deliberately not
// kept in sync with later profile edits.
type ProjectAuthor struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Project represents a showcased project.
//
// Stars is a cached count of Star relations for this project and is
// only ever mutated through star toggles. Views is incremented on every
// fetch-by-id, with no dedup by viewer.
type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Image       string        `json:"image"`
	Tags        []string      `gorm:"serializer:json;type:text" json:"tags"`
	AuthorID    uint          `gorm:"not null;index" json:"authorId"`
	Author      ProjectAuthor `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	DemoURL     string        `json:"demoUrl"`
	GithubURL   string        `json:"githubUrl"`
	Stars       int64         `gorm:"not null;default:0" json:"stars"`
	Views       int64         `gorm:"not null;default:0" json:"views"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
