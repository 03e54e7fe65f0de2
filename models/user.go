package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         *string    `gorm:"type:varchar(100)" json:"name"`
	Phone        string     `gorm:"type:varchar(15); unique;not null;index" json:"phone"`
	OTP          *string    `gorm:"type:varchar(255)" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	// IsAdmin is the single seam for the staff capability check. Any
	// authenticated user passes while ADMIN_ROLE_ENFORCED is off.
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// DisplayName mengembalikan nama customer untuk bill ("Guest" jika kosong)
func (u *User) DisplayName() string {
	if u.Name == nil || *u.Name == "" {
		return "Guest"
	}
	return *u.Name
}
