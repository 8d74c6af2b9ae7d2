package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLumberFilterEmpty(t *testing.T) {
	f := NewLumberFilter(LumberSearchParams{})
	assert.True(t, f.IsEmpty())
}

func TestNewLumberFilterParsesEveryParameter(t *testing.T) {
	f := NewLumberFilter(LumberSearchParams{
		Species:   "oak",
		Location:  "3",
		Planed:    "true",
		Tag:       " 7 ",
		MinLength: "12.5",
		MaxLength: "96",
	})

	assert.False(t, f.IsEmpty())
	assert.Equal(t, "oak", f.Species)
	require.NotNil(t, f.LocationID)
	assert.Equal(t, int64(3), *f.LocationID)
	require.NotNil(t, f.Planed)
	assert.True(t, *f.Planed)
	require.NotNil(t, f.TagID)
	assert.Equal(t, int64(7), *f.TagID)
	require.NotNil(t, f.MinLength)
	assert.Equal(t, 12.5, *f.MinLength)
	require.NotNil(t, f.MaxLength)
	assert.Equal(t, 96.0, *f.MaxLength)
}

func TestNewLumberFilterIgnoresMalformedNumbers(t *testing.T) {
	f := NewLumberFilter(LumberSearchParams{
		Location:  "shed",
		Tag:       "1.5",
		MinLength: "long",
		MaxLength: "NaN",
	})

	assert.Nil(t, f.LocationID)
	assert.Nil(t, f.TagID)
	assert.Nil(t, f.MinLength)
	assert.Nil(t, f.MaxLength)
	assert.True(t, f.IsEmpty())
}

func TestNewLumberFilterPlanedOnlyTrueLiteral(t *testing.T) {
	for raw, want := range map[string]bool{
		"true":  true,
		"false": false,
		"True":  false,
		"yes":   false,
		"1":     false,
	} {
		f := NewLumberFilter(LumberSearchParams{Planed: raw})
		require.NotNil(t, f.Planed, raw)
		assert.Equal(t, want, *f.Planed, raw)
	}
}
