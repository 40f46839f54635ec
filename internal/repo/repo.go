// Package repo holds all persistence behind a single gorm-backed type.
// Callers translate gorm.ErrRecordNotFound into their own error kinds.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
