// Package graphql exposes the GraphQL mirror of the REST surface. Every
// resolver delegates to the same service call as its REST counterpart, so
// both presentations share one set of semantics.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"gorm.io/gorm"

	"inkwell/internal/service"
)

// Resolver carries the services the root fields delegate to.
type Resolver struct {
	userService *service.UserService
	postService *service.PostService
	tagService  *service.TagService
	db          *gorm.DB
}

// NewResolver creates a resolver bound to the given services. The db handle
// backs the resetDatabase mutation only.
func NewResolver(userService *service.UserService, postService *service.PostService, tagService *service.TagService, db *gorm.DB) *Resolver {
	return &Resolver{
		userService: userService,
		postService: postService,
		tagService:  tagService,
		db:          db,
	}
}

// NewSchema builds the executable schema from the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user":  r.userQueryField(),
			"users": r.usersQueryField(),
			"post":  r.postQueryField(),
			"posts": r.postsQueryField(),
			"tag":   r.tagQueryField(),
			"tags":  r.tagsQueryField(),
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser":    r.createUserField(),
			"updateUser":    r.updateUserField(),
			"deleteUser":    r.deleteUserField(),
			"createPost":    r.createPostField(),
			"updatePost":    r.updatePostField(),
			"deletePost":    r.deletePostField(),
			"createTag":     r.createTagField(),
			"updateTag":     r.updateTagField(),
			"deleteTag":     r.deleteTagField(),
			"resetDatabase": r.resetDatabaseField(),
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// NewHandler builds the net/http handler serving the schema, with GraphiQL
// enabled for browser exploration.
func NewHandler(r *Resolver) (*handler.Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}
