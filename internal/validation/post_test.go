package validation

import (
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePostCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid payload passes", func(t *testing.T) {
		assert.Empty(t, ValidatePostCreate(models.PostCreateInput{
			Title:   "Hello",
			Content: "world",
		}))
	})

	t.Run("title and content required", func(t *testing.T) {
		v := ValidatePostCreate(models.PostCreateInput{})
		assert.ElementsMatch(t, []string{"title", "content"}, fields(v))
	})

	t.Run("title length limit", func(t *testing.T) {
		v := ValidatePostCreate(models.PostCreateInput{
			Title:   strings.Repeat("x", 201),
			Content: "body",
		})
		require.Len(t, v, 1)
		assert.Equal(t, "title", v[0].Field)
	})
}

func TestValidatePostUpdate(t *testing.T) {
	t.Parallel()

	t.Run("empty patch passes", func(t *testing.T) {
		assert.Empty(t, ValidatePostUpdate(models.PostUpdateInput{}))
	})

	t.Run("supplied title must not be blank", func(t *testing.T) {
		v := ValidatePostUpdate(models.PostUpdateInput{Title: strPtr("  ")})
		require.Len(t, v, 1)
		assert.Equal(t, "title", v[0].Field)
	})

	t.Run("tag id list is not a validator concern", func(t *testing.T) {
		ids := []uint{1, 2, 3}
		assert.Empty(t, ValidatePostUpdate(models.PostUpdateInput{TagIDs: &ids}))
	})
}

func TestValidateTagCreate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateTagCreate(models.TagCreateInput{Title: "go"}))

	v := ValidateTagCreate(models.TagCreateInput{})
	require.Len(t, v, 1)
	assert.Equal(t, "title", v[0].Field)

	v = ValidateTagCreate(models.TagCreateInput{Title: strings.Repeat("x", 51)})
	require.Len(t, v, 1)
	assert.Equal(t, "title", v[0].Field)
}

func TestViolationsError(t *testing.T) {
	t.Parallel()

	var v Violations
	assert.NoError(t, v.OrNil())

	v.add("title", "is required")
	v.add("limit", "must be between 1 and 1000")
	err := v.OrNil()
	require.Error(t, err)
	assert.Equal(t, "title: is required; limit: must be between 1 and 1000", err.Error())
}
