package database

import (
	"errors"
	"slices"

	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

// ListQuery carries the optional list filters from the query string. "All"
// (or empty) means no filter, matching the frontend's sentinel.
type ListQuery struct {
	Category string
	Status   string
	Limit    int
}

func (q ListQuery) filtersCategory() bool {
	return q.Category != "" && q.Category != "All"
}

func (q ListQuery) filtersStatus() bool {
	return q.Status != "" && q.Status != "All"
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects sorted by start date descending, optionally
// filtered by status and category. Category lives in a JSON array column, so
// that filter is applied after the scan; the collections involved are small.
func (r *ProjectRepo) FindAll(q ListQuery) ([]*models.Project, error) {
	tx := r.db.Order("start_date DESC")
	if q.filtersStatus() {
		tx = tx.Where("status = ?", q.Status)
	}

	var projects []*models.Project
	if err := tx.Find(&projects).Error; err != nil {
		return nil, err
	}

	if q.filtersCategory() {
		projects = slices.DeleteFunc(projects, func(p *models.Project) bool {
			return !slices.Contains(p.Category, q.Category)
		})
	}

	if q.Limit > 0 && len(projects) > q.Limit {
		projects = projects[:q.Limit]
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no such project exists.
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug, or nil when no such project exists.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id and reports whether a row was actually deleted.
func (r *ProjectRepo) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
