package models

import (
	"time"
)

// Tag categorizes posts. Titles are unique; the uniqueness is enforced by
// the storage layer only, a duplicate insert surfaces as a generic failure.
type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:50;uniqueIndex;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Posts       []Post    `gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}
