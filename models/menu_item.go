package models

import "time"

type MenuItem struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"type:varchar(200);not null" json:"name"`
	ShortDescription string     `gorm:"type:varchar(500)" json:"short_description"`
	LongDescription  string     `gorm:"type:text" json:"long_description"`
	Price            float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageUrl         *string    `gorm:"type:varchar(500)" json:"image_url"`
	IsAvailable      bool       `gorm:"default:true" json:"is_available"`
	Category         string     `gorm:"type:varchar(100)" json:"category"`
	RestaurantID     uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant       Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}
