package repositories

import (
	"errors"
	"strings"

	"lumber-inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository interface {
	GetByID(id uint) (*models.Location, error)
	GetByName(name string) (*models.Location, error)
	GetAll() ([]models.Location, error)
	GetOrCreate(name string) (*models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, id).Error
	return &location, err
}

func (r *locationRepository) GetByName(name string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("name_key = ?", models.NameKey(name)).First(&location).Error
	return &location, err
}

func (r *locationRepository) GetAll() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("name_key").Find(&locations).Error
	return locations, err
}

// GetOrCreate behaves like TagRepository.GetOrCreate.
func (r *locationRepository) GetOrCreate(name string) (*models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	location, err := r.GetByName(name)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	location = &models.Location{Name: name}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoNothing: true,
	}).Create(location)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.GetByName(name)
	}
	return location, nil
}
