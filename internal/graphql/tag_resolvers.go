package graphql

import (
	"github.com/graphql-go/graphql"

	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/validation"
)

func (r *Resolver) tagQueryField() *graphql.Field {
	return &graphql.Field{
		Type: tagType,
		Args: graphql.FieldConfigArgument{
			"tagId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "tagId")
			if !ok {
				return nil, models.NewValidationError("Invalid tag ID")
			}
			return r.tagService.Get(p.Context, id, argBoolDefault(p.Args, "includePosts", true))
		},
	}
}

func (r *Resolver) tagsQueryField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(tagType)),
		Args: graphql.FieldConfigArgument{
			"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return r.tagService.GetAll(p.Context, argBoolDefault(p.Args, "includePosts", false))
		},
	}
}

func (r *Resolver) createTagField() *graphql.Field {
	return &graphql.Field{
		Type: tagType,
		Args: graphql.FieldConfigArgument{
			"tagData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(tagCreateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			data := objectArg(p.Args, "tagData")
			in := models.TagCreateInput{
				Title:       argString(data, "title"),
				Description: argStringPtr(data, "description"),
			}
			if err := validation.ValidateTagCreate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.tagService.Create(p.Context, in)
		},
	}
}

func (r *Resolver) updateTagField() *graphql.Field {
	return &graphql.Field{
		Type: tagType,
		Args: graphql.FieldConfigArgument{
			"tagId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"tagData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(tagUpdateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "tagId")
			if !ok {
				return nil, models.NewValidationError("Invalid tag ID")
			}
			data := objectArg(p.Args, "tagData")
			in := models.TagUpdateInput{
				Title:       argStringPtr(data, "title"),
				Description: argOptionalString(data, "description"),
			}
			if err := validation.ValidateTagUpdate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.tagService.Update(p.Context, id, in)
		},
	}
}

func (r *Resolver) deleteTagField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.Boolean),
		Args: graphql.FieldConfigArgument{
			"tagId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "tagId")
			if !ok {
				return nil, models.NewValidationError("Invalid tag ID")
			}
			if err := r.tagService.Delete(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	}
}

func (r *Resolver) resetDatabaseField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.Boolean),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := database.Reset(p.Context, r.db); err != nil {
				return nil, models.NewInternalError(err)
			}
			return true, nil
		},
	}
}
