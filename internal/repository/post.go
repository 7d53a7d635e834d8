package repository

import (
	"context"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, includeAuthor, includeTags bool) (*models.Post, error)
	Search(ctx context.Context, in models.PostSearchInput) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error
	ClearTags(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists the post and any tags already attached to it in one save;
// join rows are inserted alongside the post row.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, includeAuthor, includeTags bool) (*models.Post, error) {
	var post models.Post
	tx := r.db.WithContext(ctx)
	if includeAuthor {
		tx = tx.Preload("Author")
	}
	if includeTags {
		tx = tx.Preload("Tags")
	}
	if err := tx.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Search(ctx context.Context, in models.PostSearchInput) ([]*models.Post, error) {
	tx := r.db.WithContext(ctx)
	if in.IncludeAuthor {
		tx = tx.Preload("Author")
	}
	if in.IncludeTags {
		tx = tx.Preload("Tags")
	}

	var conds []string
	var args []interface{}
	if in.Title != nil && *in.Title != "" {
		conds = append(conds, "LOWER(title) LIKE ?")
		args = append(args, likePattern(*in.Title))
	}
	if in.Content != nil && *in.Content != "" {
		conds = append(conds, "LOWER(content) LIKE ?")
		args = append(args, likePattern(*in.Content))
	}
	if len(conds) > 0 {
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var posts []*models.Post
	err := tx.Offset(in.Skip).Limit(in.Limit).Find(&posts).Error
	return posts, err
}

// Update saves the scalar columns of an already-loaded post. Associations are
// omitted so a preloaded tag set is never written back as a side effect;
// ReplaceTags and ClearTags own that.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

func (r *postRepository) ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(post).Association("Tags").Replace(tags)
}

func (r *postRepository) ClearTags(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Model(post).Association("Tags").Clear()
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	// Association rows cascade-delete in storage.
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
