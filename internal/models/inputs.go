package models

import (
	"encoding/json"
)

// Optional distinguishes a JSON field that was absent from one explicitly set
// to null. The zero value means the field was not supplied; Set with a nil
// Value means an explicit null. Updates use it for nullable columns so a
// sparse patch can clear them without touching absent fields.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the absent/null distinction observable.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON renders the held value, or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// UserCreateInput carries the fields for creating a user. Birthdate is ISO
// date text and is parsed after validation.
type UserCreateInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Nickname  string  `json:"nickname"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Birthdate string  `json:"birthdate"`
	Location  *string `json:"location"`
	Gender    *string `json:"gender"`
	JobTitle  *string `json:"job_title"`
	Phone     *string `json:"phone"`
}

// UserUpdateInput is a sparse patch: nil / unset fields are left untouched.
type UserUpdateInput struct {
	FirstName *string          `json:"first_name"`
	LastName  *string          `json:"last_name"`
	Nickname  *string          `json:"nickname"`
	Email     *string          `json:"email"`
	Password  *string          `json:"password"`
	Birthdate *string          `json:"birthdate"`
	Location  Optional[string] `json:"location"`
	Gender    Optional[string] `json:"gender"`
	JobTitle  Optional[string] `json:"job_title"`
	Phone     Optional[string] `json:"phone"`
}

// UserSearchInput holds user search filters. Filters combine with OR
// semantics: a row qualifies when any one of them matches.
type UserSearchInput struct {
	Nickname     *string `json:"nickname"`
	Email        *string `json:"email"`
	Location     *string `json:"location"`
	JobTitle     *string `json:"job_title"`
	IncludePosts bool    `json:"include_posts"`
	Skip         int     `json:"skip"`
	Limit        int     `json:"limit"`
}

// PostCreateInput carries the fields for creating a post. A nil IsPublished
// defaults to true. TagIDs, when supplied, must resolve completely.
type PostCreateInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"is_published"`
	TagIDs      []uint `json:"tag_ids"`
}

// PostUpdateInput is a sparse patch. TagIDs semantics: absent (or null)
// leaves associations untouched, an empty list clears them, a non-empty list
// replaces the whole set.
type PostUpdateInput struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"is_published"`
	TagIDs      *[]uint `json:"tag_ids"`
}

// PostSearchInput holds post search filters, OR-combined like user search.
type PostSearchInput struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	IncludeAuthor bool    `json:"include_author"`
	IncludeTags   bool    `json:"include_tags"`
	Skip          int     `json:"skip"`
	Limit         int     `json:"limit"`
}

// TagCreateInput carries the fields for creating a tag.
type TagCreateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// TagUpdateInput is a sparse patch on title and description.
type TagUpdateInput struct {
	Title       *string          `json:"title"`
	Description Optional[string] `json:"description"`
}
