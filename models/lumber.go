package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"lumber-inventory/fraction"

	"gorm.io/gorm"
)

// Accepted range for length, width and thickness, in inches.
const (
	MinDimension = 0.1
	MaxDimension = 10000
)

type Lumber struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Species    string    `json:"species" gorm:"size:100;not null"`
	Length     float64   `json:"length" gorm:"not null"`
	Width      float64   `json:"width" gorm:"not null"`
	Thickness  float64   `json:"thickness" gorm:"not null"`
	Planed     bool      `json:"planed" gorm:"not null;default:false"`
	LocationID *uint     `json:"location_id"`
	Location   *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	DateAdded  time.Time `json:"date_added" gorm:"not null;index"`
	Tags       []Tag     `json:"tags" gorm:"many2many:lumber_tags;"`
}

func (Lumber) TableName() string {
	return "lumber"
}

func (l *Lumber) BeforeCreate(tx *gorm.DB) error {
	if l.DateAdded.IsZero() {
		l.DateAdded = time.Now().UTC()
	}
	return nil
}

// LocationName returns the location's name, or "" when unassigned.
func (l *Lumber) LocationName() string {
	if l.Location == nil {
		return ""
	}
	return l.Location.Name
}

// TagNames returns the tag names sorted alphabetically, ignoring case.
func (l *Lumber) TagNames() []string {
	names := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		names = append(names, t.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Dimensions renders "L x W x T" using fraction display.
func (l *Lumber) Dimensions() string {
	return fmt.Sprintf("%s x %s x %s",
		fraction.Format(l.Length), fraction.Format(l.Width), fraction.Format(l.Thickness))
}

func (l *Lumber) String() string {
	return fmt.Sprintf("<Lumber %d: %s %vx%vx%v>", l.ID, l.Species, l.Length, l.Width, l.Thickness)
}

// LumberResponse is the JSON shape of a lumber record.
type LumberResponse struct {
	ID         uint     `json:"id"`
	Species    string   `json:"species"`
	Length     float64  `json:"length"`
	Width      float64  `json:"width"`
	Thickness  float64  `json:"thickness"`
	Dimensions string   `json:"dimensions"`
	Planed     bool     `json:"planed"`
	Location   *string  `json:"location"`
	LocationID *uint    `json:"location_id"`
	DateAdded  string   `json:"date_added"`
	Tags       []string `json:"tags"`
}

func (l *Lumber) ToResponse() LumberResponse {
	var location *string
	if l.Location != nil {
		name := l.Location.Name
		location = &name
	}
	return LumberResponse{
		ID:         l.ID,
		Species:    l.Species,
		Length:     l.Length,
		Width:      l.Width,
		Thickness:  l.Thickness,
		Dimensions: l.Dimensions(),
		Planed:     l.Planed,
		Location:   location,
		LocationID: l.LocationID,
		DateAdded:  l.DateAdded.Format(time.RFC3339),
		Tags:       l.TagNames(),
	}
}
