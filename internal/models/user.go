// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered author account.
//
// Rows are hard-deleted: removing a user cascades to their posts through the
// foreign key, which a soft-delete column would silently break.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Nickname  string    `gorm:"size:30;uniqueIndex;not null" json:"nickname"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Birthdate Date      `gorm:"not null" json:"birthdate"`
	Location  *string   `gorm:"size:100" json:"location"`
	Gender    *string   `gorm:"size:20" json:"gender"`
	JobTitle  *string   `gorm:"size:100" json:"job_title"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}
