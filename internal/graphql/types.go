package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"inkwell/internal/models"
)

// dateScalar maps the date-only column type to ISO "YYYY-MM-DD" text.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date in YYYY-MM-DD form",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case models.Date:
			return v.String()
		case *models.Date:
			if v == nil {
				return nil
			}
			return v.String()
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		d, err := models.ParseDate(s)
		if err != nil {
			return nil
		}
		return d
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		lit, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		d, err := models.ParseDate(lit.Value)
		if err != nil {
			return nil
		}
		return d
	},
})

// userSource normalizes the resolver source to a user pointer.
func userSource(p graphql.ResolveParams) *models.User {
	switch v := p.Source.(type) {
	case *models.User:
		return v
	case models.User:
		return &v
	}
	return nil
}

func postSource(p graphql.ResolveParams) *models.Post {
	switch v := p.Source.(type) {
	case *models.Post:
		return v
	case models.Post:
		return &v
	}
	return nil
}

func tagSource(p graphql.ResolveParams) *models.Tag {
	switch v := p.Source.(type) {
	case *models.Tag:
		return v
	case models.Tag:
		return &v
	}
	return nil
}

// authorMinimalType is the nested author shape: identity fields only, no
// relations, so nesting cannot recurse.
var authorMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Author",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).ID, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).FirstName, nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).LastName, nil
			},
		},
		"nickname": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Nickname, nil
			},
		},
	},
})

// postMinimalType is the nested post shape: scalar columns only.
var postMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostSummary",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).ID, nil
			},
		},
		"authorId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).AuthorID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Title, nil
			},
		},
		"content": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Content, nil
			},
		},
		"rating": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Rating, nil
			},
		},
		"views": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Views, nil
			},
		},
		"isPublished": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).IsPublished, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).UpdatedAt, nil
			},
		},
	},
})

// tagMinimalType is the nested tag shape.
var tagMinimalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TagSummary",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).ID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).Title, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).Description, nil
			},
		},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).ID, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).FirstName, nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).LastName, nil
			},
		},
		"nickname": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Nickname, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Email, nil
			},
		},
		"birthdate": &graphql.Field{
			Type: graphql.NewNonNull(dateScalar),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Birthdate, nil
			},
		},
		"location": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Location, nil
			},
		},
		"gender": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Gender, nil
			},
		},
		"jobTitle": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).JobTitle, nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Phone, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).CreatedAt, nil
			},
		},
		"posts": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(postMinimalType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return userSource(p).Posts, nil
			},
		},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).ID, nil
			},
		},
		"authorId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).AuthorID, nil
			},
		},
		"author": &graphql.Field{
			Type: authorMinimalType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Author, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Title, nil
			},
		},
		"content": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Content, nil
			},
		},
		"rating": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Rating, nil
			},
		},
		"views": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Views, nil
			},
		},
		"isPublished": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).IsPublished, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).UpdatedAt, nil
			},
		},
		"tags": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(tagMinimalType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return postSource(p).Tags, nil
			},
		},
	},
})

var tagType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tag",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).ID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).Title, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).Description, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).CreatedAt, nil
			},
		},
		"posts": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(postMinimalType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return tagSource(p).Posts, nil
			},
		},
	},
})

var userSearchParamsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserSearchParams",
	Fields: graphql.InputObjectConfigFieldMap{
		"nickname":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"location":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"includePosts": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"skip":         &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"limit":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var postSearchParamsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostSearchParams",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"includeAuthor": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"includeTags":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"skip":          &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"limit":         &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var userCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserCreateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"nickname":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"birthdate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"location":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var userUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"nickname":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthdate": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"location":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"jobTitle":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var postCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostCreateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"isPublished": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"tagIds":      &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.Int))},
	},
})

var postUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostUpdateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isPublished": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"tagIds":      &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.Int))},
	},
})

var tagCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TagCreateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var tagUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TagUpdateData",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
