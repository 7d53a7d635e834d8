package models

import (
	"time"
)

// Post represents an article authored by exactly one user and linked to any
// number of tags through the posts_tags join table.
//
// UpdatedAt is additionally refreshed by a storage trigger on Postgres so the
// timestamp moves even for raw SQL mutations that bypass GORM.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Rating      int       `gorm:"not null" json:"rating"`
	Views       int       `gorm:"not null" json:"views"`
	IsPublished bool      `gorm:"not null" json:"is_published"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []Tag     `gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

// PostTag is the join row linking posts and tags. It is declared explicitly
// (instead of letting GORM derive an implicit join table) so the association
// carries its own creation timestamp.
type PostTag struct {
	PostID    uint      `gorm:"primaryKey" json:"post_id"`
	TagID     uint      `gorm:"primaryKey" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name.
func (PostTag) TableName() string {
	return "posts_tags"
}
