package graphql

import (
	"github.com/graphql-go/graphql"

	"inkwell/internal/models"
	"inkwell/internal/validation"
)

func (r *Resolver) userQueryField() *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"includePosts": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "userId")
			if !ok {
				return nil, models.NewValidationError("Invalid user ID")
			}
			return r.userService.Get(p.Context, id, argBoolDefault(p.Args, "includePosts", true))
		},
	}
}

func (r *Resolver) usersQueryField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(userType)),
		Args: graphql.FieldConfigArgument{
			"searchParams": &graphql.ArgumentConfig{Type: userSearchParamsInput},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			params := objectArg(p.Args, "searchParams")
			in := models.UserSearchInput{
				Nickname:     argStringPtr(params, "nickname"),
				Email:        argStringPtr(params, "email"),
				Location:     argStringPtr(params, "location"),
				JobTitle:     argStringPtr(params, "jobTitle"),
				IncludePosts: argBoolDefault(params, "includePosts", false),
				Skip:         argIntDefault(params, "skip", 0),
				Limit:        argIntDefault(params, "limit", validation.DefaultLimit),
			}
			if err := validation.ValidateUserSearch(in).OrNil(); err != nil {
				return nil, err
			}
			return r.userService.Search(p.Context, in)
		},
	}
}

func (r *Resolver) createUserField() *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"userData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userCreateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			data := objectArg(p.Args, "userData")
			in := models.UserCreateInput{
				FirstName: argString(data, "firstName"),
				LastName:  argString(data, "lastName"),
				Nickname:  argString(data, "nickname"),
				Email:     argString(data, "email"),
				Password:  argString(data, "password"),
				Birthdate: argString(data, "birthdate"),
				Location:  argStringPtr(data, "location"),
				Gender:    argStringPtr(data, "gender"),
				JobTitle:  argStringPtr(data, "jobTitle"),
				Phone:     argStringPtr(data, "phone"),
			}
			if err := validation.ValidateUserCreate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.userService.Create(p.Context, in)
		},
	}
}

func (r *Resolver) updateUserField() *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"userData": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userUpdateInput)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "userId")
			if !ok {
				return nil, models.NewValidationError("Invalid user ID")
			}
			data := objectArg(p.Args, "userData")
			in := models.UserUpdateInput{
				FirstName: argStringPtr(data, "firstName"),
				LastName:  argStringPtr(data, "lastName"),
				Nickname:  argStringPtr(data, "nickname"),
				Email:     argStringPtr(data, "email"),
				Password:  argStringPtr(data, "password"),
				Birthdate: argStringPtr(data, "birthdate"),
				Location:  argOptionalString(data, "location"),
				Gender:    argOptionalString(data, "gender"),
				JobTitle:  argOptionalString(data, "jobTitle"),
				Phone:     argOptionalString(data, "phone"),
			}
			if err := validation.ValidateUserUpdate(in).OrNil(); err != nil {
				return nil, err
			}
			return r.userService.Update(p.Context, id, in)
		},
	}
}

func (r *Resolver) deleteUserField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.Boolean),
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := argUint(p.Args, "userId")
			if !ok {
				return nil, models.NewValidationError("Invalid user ID")
			}
			if err := r.userService.Delete(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	}
}
