// Package repo is the gorm-backed record store. The auth middleware consumes
// it through the narrow UserStore interface it defines on its own side, so
// nothing above this package depends on gorm directly.
package repo

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
