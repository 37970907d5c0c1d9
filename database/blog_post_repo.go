package database

import (
	"errors"

	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns blog posts sorted by publish date descending, optionally
// filtered by category.
func (r *BlogPostRepo) FindAll(q ListQuery) ([]*models.BlogPost, error) {
	tx := r.db.Order("publish_date DESC")
	if q.filtersCategory() {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var posts []*models.BlogPost
	err := tx.Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by its ID, or nil when no such post exists.
func (r *BlogPostRepo) FindByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a blog post by its slug, or nil when no such post exists.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post by id and reports whether a row was deleted.
func (r *BlogPostRepo) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
