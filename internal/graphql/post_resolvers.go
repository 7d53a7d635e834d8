package graphql

import (
	"github.com/graphql-go/graphql"

	"inkwell/internal/models"
	"inkwell/internal/validation"
)

func (r *Resolver) postQueryField() *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"postId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"includeAuthor": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
			"includeTags":   &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "postId")
			if !ok {
				return nil, models.NewValidationError("Invalid post ID")
			}
			return r.postService.Get(p.Context, id,
				argBoolDefault(p.Args, "includeAuthor", true),
				argBoolDefault(p.Args, "includeTags", true))
		},
	}
}

func (r *Resolver) postsQueryField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(postType)),
		Args: graphql.FieldConfigArgument{
			"searchParams": &graphql.ArgumentConfig{Type: postSearchParamsInput},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			params := objectArg(p.Args, "searchParams")
			in := models.PostSearchInput{
				Title:         argStringPtr(params, "title"),
				Content:       argStringPtr(params, "content"),
				IncludeAuthor: argBoolDefault(params, "includeAuthor", true),
				IncludeTags:   argBoolDefault(params, "includeTags", false),
				Skip:          argIntDefault(params, "skip", 0),
				Limit:         argIntDefault(params, "limit", validation.DefaultLimit),
			}
			if err := validation.ValidatePostSearch(in).OrNil(); err != nil {
				return nil, err
			}
			return r.postService.Search(p.Context, in)
		},
	}
}

func (r *Resolver) createPostField() *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"authorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"postData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postCreateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			authorID, ok := argUint(p.Args, "authorId")
			if !ok {
				return nil, models.NewValidationError("Invalid author ID")
			}
			data := objectArg(p.Args, "postData")
			tagIDs, _ := argUintSlice(data, "tagIds")
			in := models.PostCreateInput{
				Title:       argString(data, "title"),
				Content:     argString(data, "content"),
				IsPublished: argBoolPtr(data, "isPublished"),
				TagIDs:      tagIDs,
			}
			if err := validation.ValidatePostCreate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.postService.Create(p.Context, authorID, in)
		},
	}
}

func (r *Resolver) updatePostField() *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"postId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"postData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postUpdateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "postId")
			if !ok {
				return nil, models.NewValidationError("Invalid post ID")
			}
			data := objectArg(p.Args, "postData")
			in := models.PostUpdateInput{
				Title:       argStringPtr(data, "title"),
				Content:     argStringPtr(data, "content"),
				IsPublished: argBoolPtr(data, "isPublished"),
			}
			// tagIds keeps the REST contract: absent leaves the set alone,
			// [] clears, a non-empty list replaces.
			if ids, present := argUintSlice(data, "tagIds"); present {
				in.TagIDs = &ids
			}
			if err := validation.ValidatePostUpdate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.postService.Update(p.Context, id, in)
		},
	}
}

func (r *Resolver) deletePostField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.Boolean),
		Args: graphql.FieldConfigArgument{
			"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "postId")
			if !ok {
				return nil, models.NewValidationError("Invalid post ID")
			}
			if err := r.postService.Delete(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	}
}
