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

// OrderView is one order line with its computed money breakdown and the
// current state of its item's order window.
type OrderView struct {
	models.Order
	Totals        ordering.Totals        `json:"totals"`
	DeadlineState ordering.DeadlineState `json:"deadline_state"`
}

// OrderGroupView is one serve date's worth of a user's active orders.
type OrderGroupView struct {
	DateKey string      `json:"date_key"`
	Orders  []OrderView `json:"orders"`
}

// MonthBucketView is one month of a user's past orders.
type MonthBucketView struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Count  int         `json:"count"`
	Range  string      `json:"range"`
	Orders []OrderView `json:"orders"`
}

// UserOrdersView splits a user's orders into upcoming serve dates and the
// month-bucketed history.
type UserOrdersView struct {
	Active []OrderGroupView  `json:"active"`
	Past   []MonthBucketView `json:"past"`
}

type OrderService interface {
	PlaceOrder(userID, menuItemID uuid.UUID, quantity int, now time.Time) (*models.Order, error)
	UpdateOrder(userID, orderID uuid.UUID, quantity int, status string, now time.Time) (*models.Order, error)
	DeleteOrder(userID, orderID uuid.UUID, now time.Time) error
	UserOrders(userID uuid.UUID, now time.Time) (*UserOrdersView, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuItemRepository
	cache     *redis.Client
	loc       *time.Location
}

func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuItemRepository, cache *redis.Client, loc *time.Location) OrderService {
	return &orderService{orderRepo: orderRepo, menuRepo: menuRepo, cache: cache, loc: loc}
}

// PlaceOrder creates or updates the single order a user holds for a menu
// item. The unit price is captured from the item at order time and never
// changes afterwards, so later price edits cannot rewrite history.
func (s *orderService) PlaceOrder(userID, menuItemID uuid.UUID, quantity int, now time.Time) (*models.Order, error) {
	item, err := s.menuRepo.GetByID(menuItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if !item.IsActive {
		return nil, ErrMenuItemArchived
	}
	if !ordering.EvaluateDeadline(item.OrderDeadline, now).Orderable() {
		return nil, ErrDeadlinePassed
	}

	quantity = ordering.ClampQuantity(quantity)

	existing, err := s.orderRepo.GetByUserAndItem(userID, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing order: %w", err)
	}

	if existing == nil {
		order := &models.Order{
			UserID:     userID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			UnitPrice:  item.Price,
			Status:     string(models.OrderCreated),
		}
		if err := s.orderRepo.Create(order); err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		s.invalidate()
		return order, nil
	}

	existing.Quantity = quantity
	existing.Status = string(models.OrderUpdated)
	if err := s.orderRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	s.invalidate()
	return existing, nil
}

func (s *orderService) UpdateOrder(userID, orderID uuid.UUID, quantity int, status string, now time.Time) (*models.Order, error) {
	order, err := s.loadOwnedOrder(userID, orderID, now)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = string(models.OrderConfirmed)
	}
	switch models.OrderStatus(status) {
	case models.OrderCreated, models.OrderUpdated, models.OrderConfirmed:
	default:
		return nil, ErrInvalidStatus
	}

	order.Quantity = ordering.ClampQuantity(quantity)
	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	s.invalidate()
	return order, nil
}

func (s *orderService) DeleteOrder(userID, orderID uuid.UUID, now time.Time) error {
	order, err := s.loadOwnedOrder(userID, orderID, now)
	if err != nil {
		return err
	}
	if err := s.orderRepo.Delete(order.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.invalidate()
	return nil
}

// loadOwnedOrder enforces the two edit preconditions shared by update and
// delete: the caller owns the order, and the item's deadline has not passed.
func (s *orderService) loadOwnedOrder(userID, orderID uuid.UUID, now time.Time) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.MenuItem != nil && !ordering.EvaluateDeadline(order.MenuItem.OrderDeadline, now).Orderable() {
		return nil, ErrDeadlinePassed
	}
	return order, nil
}

func (s *orderService) UserOrders(userID uuid.UUID, now time.Time) (*UserOrdersView, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	today := ordering.Today(now, s.loc)
	var active, past []models.Order
	for _, order := range orders {
		if order.MenuItem == nil {
			continue
		}
		if ordering.IsPast(*order.MenuItem, today, s.loc) {
			past = append(past, order)
		} else {
			active = append(active, order)
		}
	}

	view := &UserOrdersView{}
	for _, group := range ordering.GroupOrdersByServeDate(active, s.loc) {
		groupView := OrderGroupView{DateKey: group.DateKey}
		for _, order := range group.Orders {
			line, err := s.buildOrderView(order, now)
			if err != nil {
				return nil, err
			}
			groupView.Orders = append(groupView.Orders, line)
		}
		view.Active = append(view.Active, groupView)
	}

	for _, bucket := range ordering.BucketByMonth(past, s.loc) {
		bucketView := MonthBucketView{
			Key:   bucket.Key,
			Label: bucket.Label,
			Count: bucket.Count,
			Range: bucket.Range,
		}
		for _, order := range bucket.Orders {
			line, err := s.buildOrderView(order, now)
			if err != nil {
				return nil, err
			}
			bucketView.Orders = append(bucketView.Orders, line)
		}
		view.Past = append(view.Past, bucketView)
	}
	return view, nil
}

func (s *orderService) buildOrderView(order models.Order, now time.Time) (OrderView, error) {
	totals, err := ordering.OrderTotals(order)
	if err != nil {
		return OrderView{}, fmt.Errorf("failed to compute totals for order %s: %w", order.ID, err)
	}
	state := ordering.NoDeadline
	if order.MenuItem != nil {
		state = ordering.EvaluateDeadline(order.MenuItem.OrderDeadline, now)
	}
	return OrderView{Order: order, Totals: totals, DeadlineState: state}, nil
}

func (s *orderService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReports(); err != nil {
		logrus.Warnf("Failed to invalidate order caches: %v", err)
	}
}
