package models

import "time"

// Cart adalah staging area per user sebelum order dibuat.
// Satu cart per user, dibuat lazily saat akses pertama.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

type CartItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CartID     uint     `gorm:"not null;index" json:"cart_id"`
	Cart       Cart     `gorm:"foreignKey:CartID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int      `gorm:"not null;default:1" json:"quantity"`
	// PriceAtTime adalah snapshot harga menu saat item dimasukkan;
	// di-refresh setiap kali add mengenai baris yang sama.
	PriceAtTime float64   `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TotalItems menjumlahkan quantity semua baris.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal menghitung total harga cart dari snapshot harga.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += float64(it.Quantity) * it.PriceAtTime
	}
	return subtotal
}
