package service

import (
	"context"
	"errors"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// TagService provides tag CRUD operations.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// Create persists a new tag. Title uniqueness is enforced by storage only; a
// duplicate surfaces as a generic failure.
func (s *TagService) Create(ctx context.Context, in models.TagCreateInput) (*models.Tag, error) {
	tag := &models.Tag{
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("tag", "create").Inc()
	return tag, nil
}

// GetAll returns every tag, optionally with attached posts. Unpaginated.
func (s *TagService) GetAll(ctx context.Context, includePosts bool) ([]*models.Tag, error) {
	return s.tagRepo.GetAll(ctx, includePosts)
}

// Get fetches a tag by id, optionally with attached posts.
func (s *TagService) Get(ctx context.Context, id uint, includePosts bool) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id, includePosts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, err
	}
	return tag, nil
}

// Update applies a sparse patch on title and description.
func (s *TagService) Update(ctx context.Context, id uint, in models.TagUpdateInput) (*models.Tag, error) {
	tag, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		tag.Title = *in.Title
	}
	if in.Description.Set {
		tag.Description = in.Description.Value
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("tag", "update").Inc()
	return tag, nil
}

// Delete removes a tag; its post associations cascade-delete in storage.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id, false); err != nil {
		return err
	}
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return err
	}
	middleware.EntityWrites.WithLabelValues("tag", "delete").Inc()
	return nil
}
