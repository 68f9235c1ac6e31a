package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lunch_manager/internal/models"
	"lunch_manager/internal/ordering"
	"lunch_manager/internal/redis"
	"lunch_manager/internal/repository"
)

// MenuItemView is a menu item plus its current deadline classification.
type MenuItemView struct {
	models.MenuItem
	DeadlineState ordering.DeadlineState `json:"deadline_state"`
	Expired       bool                   `json:"expired"`
}

// MenuGroupView is one serve date's card: its items and the shared order
// window (the earliest deadline among the group's items).
type MenuGroupView struct {
	DateKey        string                 `json:"date_key"`
	SharedDeadline *time.Time             `json:"shared_deadline"`
	DeadlineState  ordering.DeadlineState `json:"deadline_state"`
	AllExpired     bool                   `json:"all_expired"`
	Items          []MenuItemView         `json:"items"`
}

type MenuService interface {
	VisibleMenu(now time.Time) ([]MenuGroupView, error)
	GetItem(id uuid.UUID, now time.Time) (*MenuItemView, error)
	GetAllItems() ([]models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	UpdateItem(item *models.MenuItem) error
	DeleteItem(id uuid.UUID) error
}

type menuService struct {
	menuRepo repository.MenuItemRepository
	cache    *redis.Client
	cacheTTL time.Duration
	loc      *time.Location
}

func NewMenuService(menuRepo repository.MenuItemRepository, cache *redis.Client, cacheTTL time.Duration, loc *time.Location) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL, loc: loc}
}

// VisibleMenu returns the grouped ordering menu: active items whose serve
// date is today or later and which pass the visibility rule, grouped by
// serve date. Deadline states are computed against the supplied now, so the
// raw rows are cacheable while the classification stays fresh.
func (s *menuService) VisibleMenu(now time.Time) ([]MenuGroupView, error) {
	items, err := s.activeItems()
	if err != nil {
		return nil, err
	}

	today := ordering.Today(now, s.loc)
	visible := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		serveDay, ok := ordering.ParseServeDate(item.ServeDate, s.loc)
		if ok && serveDay.Before(today) {
			continue
		}
		if ordering.IsVisible(item, now, s.loc) {
			visible = append(visible, item)
		}
	}

	groups := ordering.GroupMenuByServeDate(visible, s.loc)
	views := make([]MenuGroupView, 0, len(groups))
	for _, group := range groups {
		views = append(views, s.buildGroupView(group, now))
	}
	return views, nil
}

func (s *menuService) buildGroupView(group ordering.DateGroup, now time.Time) MenuGroupView {
	view := MenuGroupView{DateKey: group.DateKey, AllExpired: true}
	for _, item := range group.Items {
		state := ordering.EvaluateDeadline(item.OrderDeadline, now)
		if state != ordering.Expired {
			view.AllExpired = false
		}
		if item.OrderDeadline != nil &&
			(view.SharedDeadline == nil || item.OrderDeadline.Before(*view.SharedDeadline)) {
			deadline := *item.OrderDeadline
			view.SharedDeadline = &deadline
		}
		view.Items = append(view.Items, MenuItemView{
			MenuItem:      item,
			DeadlineState: state,
			Expired:       state == ordering.Expired,
		})
	}
	view.DeadlineState = ordering.EvaluateDeadline(view.SharedDeadline, now)
	return view
}

func (s *menuService) GetItem(id uuid.UUID, now time.Time) (*MenuItemView, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	state := ordering.EvaluateDeadline(item.OrderDeadline, now)
	return &MenuItemView{
		MenuItem:      *item,
		DeadlineState: state,
		Expired:       state == ordering.Expired,
	}, nil
}

func (s *menuService) GetAllItems() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *menuService) CreateItem(item *models.MenuItem) error {
	if err := s.validateItem(item); err != nil {
		return err
	}
	if err := s.menuRepo.Create(item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *menuService) UpdateItem(item *models.MenuItem) error {
	if err := s.validateItem(item); err != nil {
		return err
	}
	if err := s.menuRepo.Update(item); err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *menuService) DeleteItem(id uuid.UUID) error {
	if err := s.menuRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *menuService) validateItem(item *models.MenuItem) error {
	if item.Price.IsNegative() {
		return ErrNegativePrice
	}
	if item.ServeDate != nil && *item.ServeDate != "" {
		endOfServeDay, ok := ordering.EndOfServeDay(item.ServeDate, s.loc)
		if !ok {
			return ErrInvalidServeDate
		}
		if item.OrderDeadline != nil && item.OrderDeadline.After(endOfServeDay) {
			return ErrDeadlineAfterServeDay
		}
	}
	return nil
}

func (s *menuService) activeItems() ([]models.MenuItem, error) {
	if s.cache != nil {
		var cached []models.MenuItem
		if err := s.cache.GetMenuSnapshot(&cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.menuRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetMenuSnapshot(items, s.cacheTTL); err != nil {
			logrus.Warnf("Failed to cache menu snapshot: %v", err)
		}
	}
	return items, nil
}

func (s *menuService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReports(); err != nil {
		logrus.Warnf("Failed to invalidate menu caches: %v", err)
	}
}
