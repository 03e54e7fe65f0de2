package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB membuka koneksi MySQL dengan DSN dari konfigurasi.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(Get().DBDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
