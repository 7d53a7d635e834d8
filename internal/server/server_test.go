package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/graphql"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires a Server over a fresh in-memory sqlite database and
// returns the Fiber app with the real routes mounted. The Prometheus
// middleware is left out so repeated app construction cannot collide on
// collector registration.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Setup(db))
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	s := &Server{
		config:   &config.Config{Port: "0"},
		db:       db,
		userRepo: userRepo,
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo, userRepo, tagRepo)
	s.tagService = service.NewTagService(tagRepo)

	gqlHandler, err := graphql.NewHandler(
		graphql.NewResolver(s.userService, s.postService, s.tagService, db))
	require.NoError(t, err)
	s.graphqlHandler = adaptor.HTTPHandler(gqlHandler)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "API is running", body["message"])
}

func TestResetDatabase(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reset", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The bundled sample data is in place afterwards.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/users/1?includePosts=false", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user map[string]interface{}
	decodeBody(t, resp, &user)
	require.Equal(t, "ada", user["nickname"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tags", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tags []map[string]interface{}
	decodeBody(t, resp, &tags)
	require.Len(t, tags, 4)
}
