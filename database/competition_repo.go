package database

import (
	"errors"

	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

type CompetitionRepo struct {
	db *gorm.DB
}

func NewCompetitionRepo(db *gorm.DB) *CompetitionRepo {
	return &CompetitionRepo{db}
}

// FindAll returns competitions sorted by start date descending, optionally
// filtered by status.
func (r *CompetitionRepo) FindAll(q ListQuery) ([]*models.Competition, error) {
	tx := r.db.Order("start_date DESC")
	if q.filtersStatus() {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var competitions []*models.Competition
	err := tx.Find(&competitions).Error
	return competitions, err
}

// FindByID returns a competition by its ID, or nil when no such record exists.
func (r *CompetitionRepo) FindByID(id string) (*models.Competition, error) {
	var competition models.Competition
	err := r.db.First(&competition, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

// Add inserts a new competition into the database
func (r *CompetitionRepo) Add(competition *models.Competition) error {
	return r.db.Create(competition).Error
}

// Update updates an existing competition in the database
func (r *CompetitionRepo) Update(competition *models.Competition) error {
	return r.db.Save(competition).Error
}

// Delete removes a competition by id and reports whether a row was deleted.
func (r *CompetitionRepo) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Competition{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
