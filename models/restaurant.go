package models

import "time"

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	LogoUrl     *string   `gorm:"type:varchar(500)" json:"logo_url"`
	BannerUrl   *string   `gorm:"type:varchar(500)" json:"banner_url"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"type:varchar(15)" json:"phone"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
