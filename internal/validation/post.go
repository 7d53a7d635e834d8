package validation

import (
	"inkwell/internal/models"
)

const maxPostTitleLen = 200

// ValidatePostCreate checks a post creation payload.
func ValidatePostCreate(in models.PostCreateInput) Violations {
	var v Violations
	v.required("title", in.Title)
	v.maxLen("title", in.Title, maxPostTitleLen)
	v.required("content", in.Content)
	return v
}

// ValidatePostUpdate checks a sparse post patch.
func ValidatePostUpdate(in models.PostUpdateInput) Violations {
	var v Violations
	if in.Title != nil {
		v.required("title", *in.Title)
		v.maxLen("title", *in.Title, maxPostTitleLen)
	}
	if in.Content != nil {
		v.required("content", *in.Content)
	}
	return v
}

// ValidatePostSearch checks post search filters and pagination.
func ValidatePostSearch(in models.PostSearchInput) Violations {
	var v Violations
	v.pagination(in.Skip, in.Limit)
	return v
}
