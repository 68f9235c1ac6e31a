package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lunch_manager/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetByUser(userID uuid.UUID) ([]models.Order, error)
	GetByUserAndItem(userID, menuItemID uuid.UUID) (*models.Order, error)
	GetAllWithJoins() ([]models.Order, error)
	GetByServeDate(serveDate string) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uuid.UUID) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("MenuItem").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GetByUserAndItem returns nil without error when no order exists yet,
// so the service can decide between create and update.
func (r *orderRepository) GetByUserAndItem(userID, menuItemID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAllWithJoins() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("MenuItem").Preload("Profile").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByServeDate(serveDate string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("MenuItem").Preload("Profile").
		Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
		Where("menu_items.serve_date = ?", serveDate).
		Order("orders.user_id").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Order{}, "id = ?", id).Error
}
