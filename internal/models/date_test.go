package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("1990-12-10")
	require.NoError(t, err)
	assert.Equal(t, "1990-12-10", d.String())

	for _, bad := range []string{"", "12/10/1990", "1990-13-01", "1990-12-10T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewDateTruncates(t *testing.T) {
	t.Parallel()

	d := NewDate(time.Date(2024, 6, 15, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, "2024-06-15", d.String())
	assert.Zero(t, d.Hour())
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-06-15")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-15"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-15"`), &back))
	assert.Equal(t, d.String(), back.String())

	assert.Error(t, json.Unmarshal([]byte(`"15.06.2024"`), &back))
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-15", d.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2024-06-15"))
	assert.Equal(t, "2024-06-15", fromString.String())

	var fromTimestamp Date
	require.NoError(t, fromTimestamp.Scan("2024-06-15 10:30:00"))
	assert.Equal(t, "2024-06-15", fromTimestamp.String())

	var bad Date
	assert.Error(t, bad.Scan(42))
}

func TestOptionalUnmarshal(t *testing.T) {
	t.Parallel()

	type payload struct {
		Location Optional[string] `json:"location"`
	}

	t.Run("absent key stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Location.Set)
	})

	t.Run("explicit null is set with nil value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"location": null}`), &p))
		assert.True(t, p.Location.Set)
		assert.Nil(t, p.Location.Value)
	})

	t.Run("value is set and carried", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"location": "Berlin"}`), &p))
		assert.True(t, p.Location.Set)
		require.NotNil(t, p.Location.Value)
		assert.Equal(t, "Berlin", *p.Location.Value)
	})
}

func TestAppErrorTaxonomy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NewNotFoundError("User", 7), "NOT_FOUND", 404},
		{NewValidationError("bad input"), "VALIDATION_ERROR", 400},
		{NewTagsNotFoundError([]uint{3, 9}), "TAGS_NOT_FOUND", 400},
		{NewInternalError(assert.AnError), "INTERNAL_ERROR", 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, StatusForError(tc.err))
	}

	assert.Equal(t, "User with ID 7 not found", NewNotFoundError("User", 7).Message)
	assert.Equal(t, "Tags not found: [3 9]", NewTagsNotFoundError([]uint{3, 9}).Message)
	assert.Equal(t, []uint{3, 9}, NewTagsNotFoundError([]uint{3, 9}).MissingTagIDs)

	// Untyped errors fall through to 500.
	assert.Equal(t, 500, StatusForError(assert.AnError))
}
