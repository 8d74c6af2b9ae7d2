package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLumberForm(t *testing.T) {
	values := url.Values{
		"species":      {" Walnut "},
		"length":       {"48 1/2"},
		"width":        {"6"},
		"thickness":    {"3/4"},
		"planed":       {"y"},
		"location":     {"2"},
		"new_location": {"Shed A"},
		"tags":         {"1", "3"},
		"new_tags":     {"Oak, 2x4"},
	}

	form, errs := ParseLumberForm(values)

	assert.Empty(t, errs)
	assert.Equal(t, "Walnut", form.Species)
	assert.Equal(t, "48 1/2", form.Length)
	assert.True(t, form.Planed)
	assert.Equal(t, uint(2), form.LocationID)
	assert.Equal(t, []uint{1, 3}, form.TagIDs)
	assert.Equal(t, []string{"Oak", "2x4"}, form.NewTagNames())
	assert.True(t, form.HasTag(3))
	assert.False(t, form.HasTag(2))
}

func TestParseLumberFormReportsBadChoices(t *testing.T) {
	form, errs := ParseLumberForm(url.Values{
		"location": {"shed"},
		"tags":     {"1", "x"},
	})

	assert.Contains(t, errs, "location")
	assert.Contains(t, errs, "tags")
	assert.Equal(t, uint(0), form.LocationID)
	assert.Equal(t, []uint{1}, form.TagIDs)
	assert.False(t, form.Planed)
}

func TestNewTagNamesSkipsBlanks(t *testing.T) {
	form := LumberForm{NewTags: " , Oak,,  Rough ,"}
	assert.Equal(t, []string{"Oak", "Rough"}, form.NewTagNames())
	assert.Nil(t, LumberForm{}.NewTagNames())
}

func TestLumberFormFromLumber(t *testing.T) {
	loc := uint(4)
	l := &Lumber{
		Species:    "Cherry",
		Length:     48.5,
		Width:      5.5,
		Thickness:  0.75,
		LocationID: &loc,
		Tags:       []Tag{{ID: 2, Name: "b"}, {ID: 9, Name: "a"}},
	}

	form := LumberFormFromLumber(l)

	assert.Equal(t, "48 1/2", form.Length)
	assert.Equal(t, "5 1/2", form.Width)
	assert.Equal(t, "3/4", form.Thickness)
	assert.Equal(t, uint(4), form.LocationID)
	assert.Equal(t, []uint{2, 9}, form.TagIDs)
	assert.Equal(t, []string{"a", "b"}, l.TagNames())
	assert.Equal(t, "48 1/2 x 5 1/2 x 3/4", l.Dimensions())
}

func TestSearchParamsEncode(t *testing.T) {
	q := url.Values{"species": {"oak"}, "min_length": {"50"}, "tag": {""}}
	p := SearchParamsFromQuery(q)
	assert.Equal(t, "min_length=50&species=oak", p.Encode())
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, NameKey("oak shelf"), NameKey("  Oak Shelf "))
	assert.NotEqual(t, NameKey("Oak"), NameKey("Oak Shelf"))
}
