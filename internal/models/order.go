package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_menu_item"`
	MenuItemID uuid.UUID       `json:"menu_item_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_menu_item"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	// Captured at order time so historical orders survive later price edits.
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2);not null"`
	Status    string          `json:"status" gorm:"default:'created'"` // created, updated, confirmed
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	MenuItem *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Profile  *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderStatus string

const (
	OrderCreated   OrderStatus = "created"
	OrderUpdated   OrderStatus = "updated"
	OrderConfirmed OrderStatus = "confirmed"
)
