package models

import "time"

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableCleaning  = "cleaning"
)

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(10);unique;not null;index" json:"table_number"`
	Capacity    int       `gorm:"not null;default:4" json:"capacity"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	QrCodeUrl   *string   `gorm:"type:varchar(500)" json:"qr_code_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
