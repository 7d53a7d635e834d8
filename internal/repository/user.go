// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint, includePosts bool) (*models.User, error)
	Search(ctx context.Context, in models.UserSearchInput) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint, includePosts bool) (*models.User, error) {
	var user models.User
	tx := r.db.WithContext(ctx)
	if includePosts {
		tx = tx.Preload("Posts")
	}
	if err := tx.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Search(ctx context.Context, in models.UserSearchInput) ([]*models.User, error) {
	tx := r.db.WithContext(ctx)
	if in.IncludePosts {
		tx = tx.Preload("Posts")
	}

	// Filters combine with OR: any match qualifies a row. No explicit sort
	// key, rows come back in storage order.
	var conds []string
	var args []interface{}
	addFilter := func(col string, filter *string) {
		if filter != nil && *filter != "" {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, likePattern(*filter))
		}
	}
	addFilter("nickname", in.Nickname)
	addFilter("email", in.Email)
	addFilter("location", in.Location)
	addFilter("job_title", in.JobTitle)
	if len(conds) > 0 {
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var users []*models.User
	err := tx.Offset(in.Skip).Limit(in.Limit).Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	// Save the loaded row only; associations are never written through here.
	return r.db.WithContext(ctx).Omit("Posts").Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	// Owned posts and their tag associations go with the row via FK cascades.
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// likePattern builds a case-insensitive substring pattern. LOWER(...) LIKE is
// used instead of ILIKE so the same query runs on Postgres and the sqlite
// test driver.
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
