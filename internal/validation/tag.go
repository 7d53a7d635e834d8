package validation

import (
	"inkwell/internal/models"
)

const maxTagTitleLen = 50

// ValidateTagCreate checks a tag creation payload. Title uniqueness is not
// pre-checked; the storage constraint is the only guard.
func ValidateTagCreate(in models.TagCreateInput) Violations {
	var v Violations
	v.required("title", in.Title)
	v.maxLen("title", in.Title, maxTagTitleLen)
	return v
}

// ValidateTagUpdate checks a sparse tag patch.
func ValidateTagUpdate(in models.TagUpdateInput) Violations {
	var v Violations
	if in.Title != nil {
		v.required("title", *in.Title)
		v.maxLen("title", *in.Title, maxTagTitleLen)
	}
	return v
}
