package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lunch_manager/internal/models"
)

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uuid.UUID) (*models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	GetActive() ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uuid.UUID) error
	GetServeDates() ([]string, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuItemRepository) GetByID(id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("serve_date").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetActive() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_active = ?", true).Order("serve_date").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MenuItem{}, "id = ?", id).Error
}

func (r *menuItemRepository) GetServeDates() ([]string, error) {
	var dates []string
	err := r.db.Model(&models.MenuItem{}).
		Where("is_active = ? AND serve_date IS NOT NULL", true).
		Distinct().
		Order("serve_date").
		Pluck("serve_date", &dates).Error
	return dates, err
}
