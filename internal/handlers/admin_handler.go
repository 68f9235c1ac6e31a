package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lunch_manager/internal/models"
	"lunch_manager/internal/services"
)

type AdminHandler struct {
	menuService    services.MenuService
	reportService  services.ReportService
	profileService services.ProfileService
}

func NewAdminHandler(
	menuService services.MenuService,
	reportService services.ReportService,
	profileService services.ProfileService,
) *AdminHandler {
	return &AdminHandler{
		menuService:    menuService,
		reportService:  reportService,
		profileService: profileService,
	}
}

type menuItemInput struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ServeDate     *string         `json:"serve_date"`
	OrderDeadline *time.Time      `json:"order_deadline"`
	ImageURL      string          `json:"image_url"`
	IsActive      *bool           `json:"is_active"`
}

func (in menuItemInput) apply(item *models.MenuItem) {
	item.Title = in.Title
	item.Description = in.Description
	item.Price = in.Price
	item.ServeDate = in.ServeDate
	item.OrderDeadline = in.OrderDeadline
	item.ImageURL = in.ImageURL
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	} else {
		item.IsActive = true
	}
}

// Menu management

func (h *AdminHandler) ListMenuItems(c *gin.Context) {
	items, err := h.menuService.GetAllItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var input menuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	var item models.MenuItem
	input.apply(&item)
	if err := h.menuService.CreateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	var input menuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.menuService.GetItem(id, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	item := view.MenuItem
	input.apply(&item)
	if err := h.menuService.UpdateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := h.menuService.DeleteItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Reporting

func (h *AdminHandler) ListAllOrders(c *gin.Context) {
	groups, err := h.reportService.AllOrders(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *AdminHandler) OrdersByShift(c *gin.Context) {
	serveDate := c.Query("date")
	if serveDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	report, err := h.reportService.ShiftReport(serveDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) ListServeDates(c *gin.Context) {
	dates, err := h.reportService.ServeDates()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Profile management

func (h *AdminHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AdminHandler) UpdateUserProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var update services.AdminProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.profileService.AdminUpdate(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
