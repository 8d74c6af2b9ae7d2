package repositories

import (
	"errors"
	"strings"

	"lumber-inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	GetByID(id uint) (*models.Tag, error)
	GetByIDs(ids []uint) ([]models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	GetOrCreate(name string) (*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Order("name_key").Find(&tags).Error
	return tags, err
}

// GetByName matches the whole name, ignoring case and surrounding space.
func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name_key = ?", models.NameKey(name)).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name_key").Find(&tags).Error
	return tags, err
}

// GetOrCreate returns the tag named name, creating it with the caller's
// casing when absent. A blank name yields nil. Concurrent creators of the same
// name converge on one row through the unique name_key index.
func (r *tagRepository) GetOrCreate(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	tag, err := r.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = &models.Tag{Name: name}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoNothing: true,
	}).Create(tag)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.GetByName(name)
	}
	return tag, nil
}
