package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"lunch_manager/internal/models"
	"lunch_manager/internal/ordering"
	"lunch_manager/internal/redis"
	"lunch_manager/internal/repository"
)

// AdminOrderGroupView is one serve date's orders with per-line and
// aggregated day totals.
type AdminOrderGroupView struct {
	DateKey   string          `json:"date_key"`
	Orders    []OrderView     `json:"orders"`
	DayTotals ordering.Totals `json:"day_totals"`
}

// ShiftUserView is one user's orders within a shift, with that user's totals.
type ShiftUserView struct {
	User   ordering.UserOrders `json:"user"`
	Totals ordering.Totals     `json:"totals"`
}

// ShiftView is one shift of the report: its users, the kitchen item summary,
// and the shift's aggregated totals.
type ShiftView struct {
	Shift   string                  `json:"shift"`
	Users   []ShiftUserView         `json:"users"`
	Summary []ordering.ItemQuantity `json:"summary"`
	Totals  ordering.Totals         `json:"totals"`
}

// ShiftReportView is the full per-serve-date report.
type ShiftReportView struct {
	ServeDate   string          `json:"serve_date"`
	Shifts      []ShiftView     `json:"shifts"`
	GrandTotals ordering.Totals `json:"grand_totals"`
	OrderCount  int             `json:"order_count"`
}

type ReportService interface {
	AllOrders(now time.Time) ([]AdminOrderGroupView, error)
	ShiftReport(serveDate string) (*ShiftReportView, error)
	ServeDates() ([]string, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuItemRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	loc       *time.Location
}

func NewReportService(orderRepo repository.OrderRepository, menuRepo repository.MenuItemRepository, cache *redis.Client, cacheTTL time.Duration, loc *time.Location) ReportService {
	return &reportService{orderRepo: orderRepo, menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL, loc: loc}
}

// AllOrders is the admin overview: every order grouped by serve date with
// day totals computed aggregate-then-tax.
func (s *reportService) AllOrders(now time.Time) ([]AdminOrderGroupView, error) {
	orders, err := s.orderRepo.GetAllWithJoins()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	groups := ordering.GroupOrdersByServeDate(orders, s.loc)
	views := make([]AdminOrderGroupView, 0, len(groups))
	for _, group := range groups {
		view := AdminOrderGroupView{DateKey: group.DateKey}
		for _, order := range group.Orders {
			totals, err := ordering.OrderTotals(order)
			if err != nil {
				return nil, fmt.Errorf("failed to compute totals for order %s: %w", order.ID, err)
			}
			state := ordering.NoDeadline
			if order.MenuItem != nil {
				state = ordering.EvaluateDeadline(order.MenuItem.OrderDeadline, now)
			}
			view.Orders = append(view.Orders, OrderView{Order: order, Totals: totals, DeadlineState: state})
		}
		dayTotals, err := ordering.SumOrderTotals(group.Orders)
		if err != nil {
			return nil, fmt.Errorf("failed to compute day totals for %s: %w", group.DateKey, err)
		}
		view.DayTotals = dayTotals
		views = append(views, view)
	}
	return views, nil
}

// ShiftReport builds the kitchen report for one serve date: orders bucketed
// by shift then user, a per-shift item quantity summary, and totals at the
// user, shift, and report level.
func (s *reportService) ShiftReport(serveDate string) (*ShiftReportView, error) {
	if _, ok := ordering.ParseServeDate(&serveDate, s.loc); !ok {
		return nil, ErrInvalidServeDate
	}

	if s.cache != nil {
		var cached ShiftReportView
		if err := s.cache.GetShiftReport(serveDate, &cached); err == nil {
			return &cached, nil
		}
	}

	orders, err := s.orderRepo.GetByServeDate(serveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for %s: %w", serveDate, err)
	}

	report := &ShiftReportView{ServeDate: serveDate, OrderCount: len(orders)}
	for _, group := range ordering.GroupByShiftThenUser(orders) {
		shiftView := ShiftView{
			Shift:   group.Shift,
			Summary: ordering.SummarizeItems(group.Users),
		}
		for _, user := range group.Users {
			userTotals, err := ordering.SumOrderTotals(user.Orders)
			if err != nil {
				return nil, fmt.Errorf("failed to compute totals for user %s: %w", user.UserID, err)
			}
			shiftView.Users = append(shiftView.Users, ShiftUserView{User: user, Totals: userTotals})
		}
		shiftTotals, err := ordering.SumOrderTotals(flattenOrders(group))
		if err != nil {
			return nil, fmt.Errorf("failed to compute totals for shift %s: %w", group.Shift, err)
		}
		shiftView.Totals = shiftTotals
		report.Shifts = append(report.Shifts, shiftView)
	}

	grandTotals, err := ordering.SumOrderTotals(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to compute grand totals: %w", err)
	}
	report.GrandTotals = grandTotals

	if s.cache != nil {
		if err := s.cache.SetShiftReport(serveDate, report, s.cacheTTL); err != nil {
			logrus.Warnf("Failed to cache shift report: %v", err)
		}
	}
	return report, nil
}

func flattenOrders(group ordering.ShiftGroup) []models.Order {
	var orders []models.Order
	for _, user := range group.Users {
		orders = append(orders, user.Orders...)
	}
	return orders
}

func (s *reportService) ServeDates() ([]string, error) {
	if s.cache != nil {
		if dates, err := s.cache.GetServeDates(); err == nil {
			return dates, nil
		}
	}

	dates, err := s.menuRepo.GetServeDates()
	if err != nil {
		return nil, fmt.Errorf("failed to load serve dates: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetServeDates(dates, s.cacheTTL); err != nil {
			logrus.Warnf("Failed to cache serve dates: %v", err)
		}
	}
	return dates, nil
}
