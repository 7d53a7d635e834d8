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

// PostService provides post CRUD, search and tag association management.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tagRepo  repository.TagRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, tagRepo repository.TagRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, tagRepo: tagRepo}
}

// Create persists a post for the given author. The author must exist, and
// any requested tag ids must resolve completely: if even one is missing, the
// whole operation fails with a typed error naming the missing ids and
// nothing is persisted.
//
// The author check and the insert run as separate statements with no
// wrapping transaction; a concurrent author delete between the two surfaces
// as a storage FK failure instead of the typed NotFound. Known gap, kept to
// match the source system.
func (s *PostService) Create(ctx context.Context, authorID uint, in models.PostCreateInput) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Author", authorID)
		}
		return nil, err
	}

	isPublished := true
	if in.IsPublished != nil {
		isPublished = *in.IsPublished
	}
	post := &models.Post{
		AuthorID:    authorID,
		Title:       in.Title,
		Content:     in.Content,
		IsPublished: isPublished,
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.resolveTags(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	middleware.EntityWrites.WithLabelValues("post", "create").Inc()
	return post, nil
}

// Get fetches a post by id with relation toggles.
func (s *PostService) Get(ctx context.Context, id uint, includeAuthor, includeTags bool) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id, includeAuthor, includeTags)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}

// Search returns posts matching any of the supplied filters (OR semantics),
// paginated by skip/limit.
func (s *PostService) Search(ctx context.Context, in models.PostSearchInput) ([]*models.Post, error) {
	if in.Limit == 0 {
		in.Limit = validation.DefaultLimit
	}
	return s.postRepo.Search(ctx, in)
}

// Update applies a sparse patch. TagIDs semantics: absent leaves the tag set
// untouched, an empty list clears it, a non-empty list replaces it after
// all-or-nothing resolution. Missing tag ids reject the whole patch before
// anything is written.
func (s *PostService) Update(ctx context.Context, id uint, in models.PostUpdateInput) (*models.Post, error) {
	// Tags are preloaded because a replacement needs the current relation
	// context.
	post, err := s.Get(ctx, id, false, true)
	if err != nil {
		return nil, err
	}

	var newTags []models.Tag
	replaceTags := in.TagIDs != nil && len(*in.TagIDs) > 0
	clearTags := in.TagIDs != nil && len(*in.TagIDs) == 0
	if replaceTags {
		newTags, err = s.resolveTags(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	switch {
	case clearTags:
		if err := s.postRepo.ClearTags(ctx, post); err != nil {
			return nil, err
		}
		post.Tags = []models.Tag{}
	case replaceTags:
		if err := s.postRepo.ReplaceTags(ctx, post, newTags); err != nil {
			return nil, err
		}
		post.Tags = newTags
	}

	middleware.EntityWrites.WithLabelValues("post", "update").Inc()
	return post, nil
}

// Delete removes a post; association rows cascade-delete in storage.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id, false, false); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	middleware.EntityWrites.WithLabelValues("post", "delete").Inc()
	return nil
}

// resolveTags loads the requested tags and fails with the exact missing ids
// when resolution is partial. Duplicate requested ids are tolerated.
func (s *PostService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uint]struct{}, len(tags))
	for _, t := range tags {
		found[t.ID] = struct{}{}
	}
	var missing []uint
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, models.NewTagsNotFoundError(missing)
	}
	return tags, nil
}
