package repositories

import "gorm.io/gorm"

// Repositories bundles the inventory repositories over one connection or
// transaction.
type Repositories struct {
	Lumber   LumberRepository
	Location LocationRepository
	Tag      TagRepository

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Lumber:   NewLumberRepository(db),
		Location: NewLocationRepository(db),
		Tag:      NewTagRepository(db),
		db:       db,
	}
}

// Transaction runs fn with repositories bound to a single transaction,
// committing when fn returns nil.
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
