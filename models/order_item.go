package models

import "time"

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order       Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID  uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem    MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity    int      `gorm:"not null" json:"quantity"`
	PriceAtTime float64  `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	TotalPrice  float64  `gorm:"type:decimal(10,2);not null" json:"total_price"`
	// Status per item ditransisikan staff secara independen lalu
	// di-rollup ke status order (lihat DeriveOrderStatus).
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AdminNotes *string   `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
