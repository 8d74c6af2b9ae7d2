package models

import (
	"math"
	"strconv"
	"strings"
)

// LumberFilter is the typed form of a search. Nil fields are unconstrained.
type LumberFilter struct {
	Species    string
	LocationID *int64
	Planed     *bool
	TagID      *int64
	MinLength  *float64
	MaxLength  *float64
}

// NewLumberFilter converts raw search parameters into constraints. Malformed
// numeric values are dropped rather than reported so a partly garbled search
// still returns results.
func NewLumberFilter(p LumberSearchParams) LumberFilter {
	f := LumberFilter{Species: p.Species}

	if p.Location != "" {
		f.LocationID = parseID(p.Location)
	}
	if p.Planed != "" {
		planed := p.Planed == "true"
		f.Planed = &planed
	}
	if p.Tag != "" {
		f.TagID = parseID(p.Tag)
	}
	if p.MinLength != "" {
		f.MinLength = parseLength(p.MinLength)
	}
	if p.MaxLength != "" {
		f.MaxLength = parseLength(p.MaxLength)
	}
	return f
}

// IsEmpty reports whether no constraint is active.
func (f LumberFilter) IsEmpty() bool {
	return f.Species == "" && f.LocationID == nil && f.Planed == nil &&
		f.TagID == nil && f.MinLength == nil && f.MaxLength == nil
}

func parseID(raw string) *int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func parseLength(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
