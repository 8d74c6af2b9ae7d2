package models

import "gorm.io/gorm"

type Location struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Name    string `json:"name" gorm:"size:100;not null"`
	NameKey string `json:"-" gorm:"size:100;uniqueIndex;not null"`
}

func (l *Location) BeforeSave(tx *gorm.DB) error {
	l.NameKey = NameKey(l.Name)
	return nil
}
