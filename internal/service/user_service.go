// Package service implements the access layer: each operation translates a
// validated request shape into storage queries and relationship attachments.
package service

import (
	"context"
	"errors"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"gorm.io/gorm"
)

// UserService provides user CRUD and search operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create persists a new user from validated input. Nickname and email
// uniqueness is not pre-checked; a storage constraint violation surfaces to
// the caller as-is.
func (s *UserService) Create(ctx context.Context, in models.UserCreateInput) (*models.User, error) {
	birthdate, err := models.ParseDate(in.Birthdate)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Nickname:  in.Nickname,
		Password:  in.Password,
		Email:     in.Email,
		Birthdate: birthdate,
		Location:  in.Location,
		Gender:    in.Gender,
		JobTitle:  in.JobTitle,
		Phone:     in.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("user", "create").Inc()
	return user, nil
}

// Get fetches a user by id, optionally with their posts attached.
func (s *UserService) Get(ctx context.Context, id uint, includePosts bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id, includePosts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, err
	}
	return user, nil
}

// Search returns users matching any of the supplied filters (OR semantics),
// paginated by skip/limit.
func (s *UserService) Search(ctx context.Context, in models.UserSearchInput) ([]*models.User, error) {
	if in.Limit == 0 {
		in.Limit = validation.DefaultLimit
	}
	return s.userRepo.Search(ctx, in)
}

// Update applies a sparse patch: only fields present in the input are
// written, absent fields keep their stored values.
func (s *UserService) Update(ctx context.Context, id uint, in models.UserUpdateInput) (*models.User, error) {
	user, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Nickname != nil {
		user.Nickname = *in.Nickname
	}
	if in.Password != nil {
		user.Password = *in.Password
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Birthdate != nil {
		birthdate, err := models.ParseDate(*in.Birthdate)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Birthdate = birthdate
	}
	// Nullable columns: an explicit null clears, an absent key leaves alone.
	if in.Location.Set {
		user.Location = in.Location.Value
	}
	if in.Gender.Set {
		user.Gender = in.Gender.Value
	}
	if in.JobTitle.Set {
		user.JobTitle = in.JobTitle.Value
	}
	if in.Phone.Set {
		user.Phone = in.Phone.Value
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("user", "update").Inc()
	return user, nil
}

// Delete removes a user; their posts and those posts' tag associations go
// with them through the storage cascades.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id, false); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	middleware.EntityWrites.WithLabelValues("user", "delete").Inc()
	return nil
}
