package services

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lunch_manager/internal/models"
)

// In-memory repositories so service behavior is testable without Postgres.

type memMenuRepo struct {
	items map[uuid.UUID]*models.MenuItem
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{items: make(map[uuid.UUID]*models.MenuItem)}
}

func (r *memMenuRepo) Create(item *models.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memMenuRepo) GetByID(id uuid.UUID) (*models.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memMenuRepo) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *memMenuRepo) GetActive() ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if item.IsActive {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *memMenuRepo) Update(item *models.MenuItem) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memMenuRepo) Delete(id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memMenuRepo) GetServeDates() ([]string, error) {
	seen := make(map[string]bool)
	for _, item := range r.items {
		if item.IsActive && item.ServeDate != nil && *item.ServeDate != "" {
			seen[*item.ServeDate] = true
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

type memOrderRepo struct {
	orders   map[uuid.UUID]*models.Order
	menuRepo *memMenuRepo
	profiles map[uuid.UUID]*models.Profile
}

func newMemOrderRepo(menuRepo *memMenuRepo) *memOrderRepo {
	return &memOrderRepo{
		orders:   make(map[uuid.UUID]*models.Order),
		menuRepo: menuRepo,
		profiles: make(map[uuid.UUID]*models.Profile),
	}
}

func (r *memOrderRepo) join(order models.Order) models.Order {
	if item, ok := r.menuRepo.items[order.MenuItemID]; ok {
		copied := *item
		order.MenuItem = &copied
	}
	if profile, ok := r.profiles[order.UserID]; ok {
		copied := *profile
		order.Profile = &copied
	}
	return order
}

func (r *memOrderRepo) Create(order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) GetByID(id uuid.UUID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	joined := r.join(*order)
	return &joined, nil
}

func (r *memOrderRepo) GetByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, r.join(*order))
		}
	}
	return orders, nil
}

func (r *memOrderRepo) GetByUserAndItem(userID, menuItemID uuid.UUID) (*models.Order, error) {
	for _, order := range r.orders {
		if order.UserID == userID && order.MenuItemID == menuItemID {
			joined := r.join(*order)
			return &joined, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) GetAllWithJoins() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		orders = append(orders, r.join(*order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID.String() < orders[j].ID.String()
	})
	return orders, nil
}

func (r *memOrderRepo) GetByServeDate(serveDate string) ([]models.Order, error) {
	all, err := r.GetAllWithJoins()
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	for _, order := range all {
		if order.MenuItem != nil && order.MenuItem.ServeDate != nil && *order.MenuItem.ServeDate == serveDate {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) Update(order *models.Order) error {
	copied := *order
	copied.MenuItem = nil
	copied.Profile = nil
	r.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) Delete(id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

type memProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*models.Profile)}
}

func (r *memProfileRepo) Create(profile *models.Profile) error {
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memProfileRepo) GetByID(id uuid.UUID) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *memProfileRepo) GetAll() ([]models.Profile, error) {
	var profiles []models.Profile
	for _, profile := range r.profiles {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *memProfileRepo) Update(profile *models.Profile) error {
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}
