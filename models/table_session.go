package models

import "time"

// TableSession mengikat satu user ke satu meja selama kunjungan.
// Invariant: paling banyak satu sesi aktif per user dan per meja.
type TableSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TableID      uint       `gorm:"not null;index" json:"table_id"`
	Table        Table      `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	SessionStart time.Time  `gorm:"not null" json:"session_start"`
	SessionEnd   *time.Time `json:"session_end,omitempty"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}
