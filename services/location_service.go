package services

import (
	"lumber-inventory/models"
	"lumber-inventory/repositories"
)

type LocationService interface {
	GetLocations() ([]models.Location, error)
}

type locationService struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) GetLocations() ([]models.Location, error) {
	return s.locationRepo.GetAll()
}
