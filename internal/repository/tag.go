package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetAll(ctx context.Context, includePosts bool) ([]*models.Tag, error)
	GetByID(ctx context.Context, id uint, includePosts bool) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
}

// tagRepository implements TagRepository
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// GetAll returns every tag. Deliberately unpaginated, matching the API
// contract for the tag listing.
func (r *tagRepository) GetAll(ctx context.Context, includePosts bool) ([]*models.Tag, error) {
	tx := r.db.WithContext(ctx)
	if includePosts {
		tx = tx.Preload("Posts")
	}
	var tags []*models.Tag
	err := tx.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetByID(ctx context.Context, id uint, includePosts bool) (*models.Tag, error) {
	var tag models.Tag
	tx := r.db.WithContext(ctx)
	if includePosts {
		tx = tx.Preload("Posts")
	}
	if err := tx.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Omit("Posts").Save(tag).Error
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Tag{}, id).Error
}
