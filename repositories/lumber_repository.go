package repositories

import (
	"strings"

	"lumber-inventory/models"

	"gorm.io/gorm"
)

type LumberRepository interface {
	Create(lumber *models.Lumber) error
	GetByID(id uint) (*models.Lumber, error)
	GetList(filter models.LumberFilter) ([]models.Lumber, error)
	Update(lumber *models.Lumber) error
	Delete(lumber *models.Lumber) error
}

type lumberRepository struct {
	db *gorm.DB
}

func NewLumberRepository(db *gorm.DB) LumberRepository {
	return &lumberRepository{db: db}
}

func (r *lumberRepository) preload(query *gorm.DB) *gorm.DB {
	return query.Preload("Location").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name_key")
		})
}

// Create inserts the record and its tag links. Tags and location must
// already exist.
func (r *lumberRepository) Create(lumber *models.Lumber) error {
	return r.db.Omit("Location", "Tags.*").Create(lumber).Error
}

func (r *lumberRepository) GetByID(id uint) (*models.Lumber, error) {
	var lumber models.Lumber
	err := r.preload(r.db).First(&lumber, id).Error
	return &lumber, err
}

// GetList returns the records matching every constraint in filter, newest first.
func (r *lumberRepository) GetList(filter models.LumberFilter) ([]models.Lumber, error) {
	var items []models.Lumber

	query := r.preload(r.db.Model(&models.Lumber{}))

	if filter.Species != "" {
		query = query.Where("LOWER(lumber.species) LIKE ? ESCAPE '\\'",
			"%"+escapeLike(strings.ToLower(filter.Species))+"%")
	}

	if filter.LocationID != nil {
		query = query.Where("lumber.location_id = ?", *filter.LocationID)
	}

	if filter.Planed != nil {
		query = query.Where("lumber.planed = ?", *filter.Planed)
	}

	if filter.TagID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM lumber_tags WHERE lumber_tags.lumber_id = lumber.id AND lumber_tags.tag_id = ?)",
			*filter.TagID)
	}

	if filter.MinLength != nil {
		query = query.Where("lumber.length >= ?", *filter.MinLength)
	}

	if filter.MaxLength != nil {
		query = query.Where("lumber.length <= ?", *filter.MaxLength)
	}

	err := query.Order("lumber.date_added desc").Order("lumber.id desc").Find(&items).Error
	return items, err
}

// Update replaces the editable columns and the tag set.
func (r *lumberRepository) Update(lumber *models.Lumber) error {
	err := r.db.Model(lumber).
		Select("Species", "Length", "Width", "Thickness", "Planed", "LocationID").
		Updates(lumber).Error
	if err != nil {
		return err
	}

	tags := r.db.Model(lumber).Association("Tags")
	if len(lumber.Tags) == 0 {
		return tags.Clear()
	}
	return tags.Replace(lumber.Tags)
}

func (r *lumberRepository) Delete(lumber *models.Lumber) error {
	if err := r.db.Model(lumber).Association("Tags").Clear(); err != nil {
		return err
	}
	return r.db.Delete(lumber).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
