// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data the factory generates.
type Options struct {
	Users int
	Posts int
	Tags  int
	// Clean drops existing rows before seeding.
	Clean bool
}

// DefaultOptions yields a small but interconnected data set.
func DefaultOptions() Options {
	return Options{Users: 10, Posts: 40, Tags: 8}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run generates the full data set per the options.
func (f *Factory) Run(opts Options) error {
	if opts.Clean {
		// Join rows go first; the rest follows the FK order.
		for _, model := range []interface{}{&models.PostTag{}, &models.Post{}, &models.Tag{}, &models.User{}} {
			if err := f.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clean existing rows: %w", err)
			}
		}
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	tags := make([]*models.Tag, 0, opts.Tags)
	for i := 0; i < opts.Tags; i++ {
		tag, err := f.CreateTag()
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	for i := 0; i < opts.Posts; i++ {
		author := users[f.rand.Intn(len(users))]
		if _, err := f.CreatePost(author, tags); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d users, %d tags, %d posts", opts.Users, opts.Tags, opts.Posts)
	return nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	location := gofakeit.City()
	gender := gofakeit.Gender()
	jobTitle := gofakeit.JobTitle()
	phone := gofakeit.Phone()

	user := &models.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Nickname:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Password:  "password123",
		Email:     gofakeit.Email(),
		Birthdate: models.NewDate(gofakeit.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))),
		Location: &location,
		Gender:   &gender,
		JobTitle: &jobTitle,
		Phone:    &phone,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}
	return user, nil
}

// CreateTag constructs and persists a sample tag with a unique title.
func (f *Factory) CreateTag(overrides ...func(*models.Tag)) (*models.Tag, error) {
	description := gofakeit.Sentence(8)
	tag := &models.Tag{
		Title:       fmt.Sprintf("%s-%d", strings.ToLower(gofakeit.BuzzWord()), gofakeit.Number(10, 99)),
		Description: &description,
	}

	for _, override := range overrides {
		override(tag)
	}

	if err := f.db.Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to seed tag: %w", err)
	}
	return tag, nil
}

// CreatePost constructs and persists a sample post for the given author,
// attaching a random subset of the available tags.
func (f *Factory) CreatePost(author *models.User, tags []*models.Tag, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		AuthorID:    author.ID,
		Title:       gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(2, 4, 8, "\n"),
		Rating:      f.rand.Intn(6),
		Views:       f.rand.Intn(5000),
		IsPublished: f.rand.Intn(10) > 1,
	}

	if len(tags) > 0 {
		count := f.rand.Intn(4)
		picked := f.rand.Perm(len(tags))
		for _, idx := range picked[:min(count, len(tags))] {
			post.Tags = append(post.Tags, *tags[idx])
		}
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to seed post: %w", err)
	}
	return post, nil
}
