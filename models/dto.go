package models

import (
	"net/url"
	"strconv"
	"strings"

	"lumber-inventory/fraction"
)

// LumberForm is the add/edit request for a lumber record. Dimensions are kept
// as entered ("48 1/2") and converted by the service.
type LumberForm struct {
	Species     string `json:"species" label:"Species" validate:"required,max=100"`
	Length      string `json:"length" label:"Length" validate:"required,fraction,min_inches=0.1,max_inches=10000"`
	Width       string `json:"width" label:"Width" validate:"required,fraction,min_inches=0.1,max_inches=10000"`
	Thickness   string `json:"thickness" label:"Thickness" validate:"required,fraction,min_inches=0.1,max_inches=10000"`
	Planed      bool   `json:"planed"`
	LocationID  uint   `json:"location"`
	NewLocation string `json:"new_location" label:"New location" validate:"max=100"`
	TagIDs      []uint `json:"tags"`
	NewTags     string `json:"new_tags" label:"New tags" validate:"max=200"`
}

// ParseLumberForm reads a submitted form. Values that cannot be coerced
// (a non-numeric location or tag id) are reported by field name.
func ParseLumberForm(values url.Values) (LumberForm, map[string]string) {
	errs := map[string]string{}
	form := LumberForm{
		Species:     strings.TrimSpace(values.Get("species")),
		Length:      strings.TrimSpace(values.Get("length")),
		Width:       strings.TrimSpace(values.Get("width")),
		Thickness:   strings.TrimSpace(values.Get("thickness")),
		Planed:      checkboxValue(values.Get("planed")),
		NewLocation: values.Get("new_location"),
		NewTags:     values.Get("new_tags"),
	}

	if raw := strings.TrimSpace(values.Get("location")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs["location"] = "Not a valid choice"
		} else {
			form.LocationID = uint(id)
		}
	}

	for _, raw := range values["tags"] {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			errs["tags"] = "'" + raw + "' is not a valid choice"
			continue
		}
		form.TagIDs = append(form.TagIDs, uint(id))
	}

	return form, errs
}

func checkboxValue(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// LumberFormFromLumber pre-populates the edit form from a stored record.
func LumberFormFromLumber(l *Lumber) LumberForm {
	form := LumberForm{
		Species:   l.Species,
		Length:    fraction.Format(l.Length),
		Width:     fraction.Format(l.Width),
		Thickness: fraction.Format(l.Thickness),
		Planed:    l.Planed,
	}
	if l.LocationID != nil {
		form.LocationID = *l.LocationID
	}
	for _, t := range l.Tags {
		form.TagIDs = append(form.TagIDs, t.ID)
	}
	return form
}

// HasTag reports whether the tag id is selected.
func (f LumberForm) HasTag(id uint) bool {
	for _, t := range f.TagIDs {
		if t == id {
			return true
		}
	}
	return false
}

// NewTagNames splits the comma-separated new tag list, dropping blanks.
func (f LumberForm) NewTagNames() []string {
	var names []string
	for _, part := range strings.Split(f.NewTags, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// LumberSearchParams holds the raw search query, one string per parameter.
type LumberSearchParams struct {
	Species   string
	Location  string
	Planed    string
	Tag       string
	MinLength string
	MaxLength string
}

func SearchParamsFromQuery(q url.Values) LumberSearchParams {
	return LumberSearchParams{
		Species:   q.Get("species"),
		Location:  q.Get("location"),
		Planed:    q.Get("planed"),
		Tag:       q.Get("tag"),
		MinLength: q.Get("min_length"),
		MaxLength: q.Get("max_length"),
	}
}

// Encode renders the parameters back into a query string, omitting blanks.
func (p LumberSearchParams) Encode() string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("species", p.Species)
	set("location", p.Location)
	set("planed", p.Planed)
	set("tag", p.Tag)
	set("min_length", p.MinLength)
	set("max_length", p.MaxLength)
	return q.Encode()
}
