package models

import (
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// MaxTagNameLength bounds a single tag name, in characters.
const MaxTagNameLength = 50

type Tag struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Name    string `json:"name" gorm:"size:50;not null"`
	NameKey string `json:"-" gorm:"size:50;uniqueIndex;not null"`
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	t.NameKey = NameKey(t.Name)
	return nil
}

// NameKey is the lookup key for location and tag names: trimmed and
// Unicode case-folded, so "Oak Shelf" and "oak shelf" collide.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
