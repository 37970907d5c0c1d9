package database

import (
	"errors"

	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

type SocialRepo struct {
	db *gorm.DB
}

func NewSocialRepo(db *gorm.DB) *SocialRepo {
	return &SocialRepo{db}
}

// FindAll returns all social links in insertion order.
func (r *SocialRepo) FindAll() ([]*models.Social, error) {
	var socials []*models.Social
	err := r.db.Order("created_at ASC").Find(&socials).Error
	return socials, err
}

// FindByID returns a social link by its ID, or nil when no such link exists.
func (r *SocialRepo) FindByID(id string) (*models.Social, error) {
	var social models.Social
	err := r.db.First(&social, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &social, nil
}

// Add inserts a new social link into the database
func (r *SocialRepo) Add(social *models.Social) error {
	return r.db.Create(social).Error
}

// Update updates an existing social link in the database
func (r *SocialRepo) Update(social *models.Social) error {
	return r.db.Save(social).Error
}

// Delete removes a social link by id and reports whether a row was deleted.
func (r *SocialRepo) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Social{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
