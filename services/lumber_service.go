package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lumber-inventory/fraction"
	"lumber-inventory/models"
	"lumber-inventory/repositories"

	"gorm.io/gorm"
)

type LumberService interface {
	GetLumberList(params models.LumberSearchParams) ([]models.Lumber, error)
	GetLumber(id uint) (*models.Lumber, error)
	CreateLumber(form models.LumberForm) (*models.Lumber, error)
	UpdateLumber(id uint, form models.LumberForm) (*models.Lumber, error)
	DeleteLumber(id uint) error
}

type lumberService struct {
	repos *repositories.Repositories
}

func NewLumberService(repos *repositories.Repositories) LumberService {
	return &lumberService{repos: repos}
}

func (s *lumberService) GetLumberList(params models.LumberSearchParams) ([]models.Lumber, error) {
	return s.repos.Lumber.GetList(models.NewLumberFilter(params))
}

func (s *lumberService) GetLumber(id uint) (*models.Lumber, error) {
	lumber, err := s.repos.Lumber.GetByID(id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return lumber, nil
}

func (s *lumberService) CreateLumber(form models.LumberForm) (*models.Lumber, error) {
	lumber := &models.Lumber{}
	if err := applyFormFields(lumber, form); err != nil {
		return nil, err
	}

	err := s.repos.Transaction(func(tx *repositories.Repositories) error {
		if err := s.applyRelations(tx, lumber, form); err != nil {
			return err
		}
		return tx.Lumber.Create(lumber)
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Lumber.GetByID(lumber.ID)
}

func (s *lumberService) UpdateLumber(id uint, form models.LumberForm) (*models.Lumber, error) {
	err := s.repos.Transaction(func(tx *repositories.Repositories) error {
		lumber, err := tx.Lumber.GetByID(id)
		if err != nil {
			return notFound(err, id)
		}
		if err := applyFormFields(lumber, form); err != nil {
			return err
		}
		if err := s.applyRelations(tx, lumber, form); err != nil {
			return err
		}
		return tx.Lumber.Update(lumber)
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Lumber.GetByID(id)
}

func (s *lumberService) DeleteLumber(id uint) error {
	return s.repos.Transaction(func(tx *repositories.Repositories) error {
		lumber, err := tx.Lumber.GetByID(id)
		if err != nil {
			return notFound(err, id)
		}
		return tx.Lumber.Delete(lumber)
	})
}

func applyFormFields(lumber *models.Lumber, form models.LumberForm) error {
	fields := map[string]string{}
	parse := func(name, raw string) float64 {
		v, err := fraction.Parse(raw)
		if err != nil {
			fields[name] = "Invalid format. Use decimal (48.5), fraction (3/4), or mixed (48 1/2)"
			return 0
		}
		switch {
		case v < models.MinDimension:
			fields[name] = fmt.Sprintf("Must be at least %v inch", models.MinDimension)
		case v > models.MaxDimension:
			fields[name] = fmt.Sprintf("Must be at most %v inches", models.MaxDimension)
		}
		return v
	}

	lumber.Length = parse("length", form.Length)
	lumber.Width = parse("width", form.Width)
	lumber.Thickness = parse("thickness", form.Thickness)
	lumber.Species = strings.TrimSpace(form.Species)
	lumber.Planed = form.Planed
	if lumber.Species == "" {
		fields["species"] = "This field is required"
	}
	for _, name := range form.NewTagNames() {
		if utf8.RuneCountInString(name) > models.MaxTagNameLength {
			fields["new_tags"] = fmt.Sprintf("Tag %q is longer than %d characters", name, models.MaxTagNameLength)
			break
		}
	}

	if len(fields) > 0 {
		return models.ErrorValidation{Fields: fields}
	}
	return nil
}

// applyRelations resolves the location and tag set. A non-blank new location
// wins over the selected one; tags are the selected ids plus the new names,
// without duplicates.
func (s *lumberService) applyRelations(tx *repositories.Repositories, lumber *models.Lumber, form models.LumberForm) error {
	lumber.Location = nil
	lumber.LocationID = nil

	if strings.TrimSpace(form.NewLocation) != "" {
		location, err := tx.Location.GetOrCreate(form.NewLocation)
		if err != nil {
			return err
		}
		lumber.LocationID = &location.ID
	} else if form.LocationID != 0 {
		location, err := tx.Location.GetByID(form.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorValidation{Fields: map[string]string{"location": "Not a valid choice"}}
			}
			return err
		}
		lumber.LocationID = &location.ID
	}

	tags, err := tx.Tag.GetByIDs(form.TagIDs)
	if err != nil {
		return err
	}

	seen := make(map[uint]bool, len(tags))
	for _, t := range tags {
		seen[t.ID] = true
	}
	for _, name := range form.NewTagNames() {
		tag, err := tx.Tag.GetOrCreate(name)
		if err != nil {
			return err
		}
		if tag == nil || seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		tags = append(tags, *tag)
	}

	lumber.Tags = tags
	return nil
}

func notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: "lumber", ID: id}
	}
	return err
}
