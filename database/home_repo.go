package database

import (
	"errors"

	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

type HomeRepo struct {
	db *gorm.DB
}

func NewHomeRepo(db *gorm.DB) *HomeRepo {
	return &HomeRepo{db}
}

// Get returns the singleton home document, creating the default one on first
// access so the home page always has content to render.
func (r *HomeRepo) Get() (*models.HomeContent, error) {
	var home models.HomeContent
	err := r.db.First(&home).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		home = models.DefaultHomeContent()
		if err := r.db.Create(&home).Error; err != nil {
			return nil, err
		}
		return &home, nil
	}
	if err != nil {
		return nil, err
	}
	return &home, nil
}

// Save upserts the singleton home document.
func (r *HomeRepo) Save(home *models.HomeContent) error {
	if home.ID == "" {
		home.ID = "home"
	}
	return r.db.Save(home).Error
}
