package models

import (
	"time"

	"github.com/zulfifazhar/portfolio-backend/errs"
	"gorm.io/datatypes"
)

// BlogPost represents a complete blog post with metadata.
type BlogPost struct {
	ID          string                      `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Content     string                      `json:"content" db:"content" gorm:"type:text;not null"`
	Category    string                      `json:"category" db:"category" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	PublishDate string                      `json:"publishDate" db:"publish_date" gorm:"type:text;not null"`
	ReadTime    int                         `json:"readTime" db:"read_time" gorm:"type:integer;not null;default:0"`
	ImageURL    *string                     `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt   time.Time                   `json:"-" db:"created_at"`
	UpdatedAt   time.Time                   `json:"-" db:"updated_at"`
}

func (b *BlogPost) Validate() error {
	if b.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if b.Content == "" {
		return errs.NewMissingRequiredFieldError("content")
	}
	if b.PublishDate == "" {
		return errs.NewMissingRequiredFieldError("publishDate")
	}
	if _, err := time.Parse(isoDate, b.PublishDate); err != nil {
		return errs.NewInvalidFieldError("publishDate", "must be an ISO date (YYYY-MM-DD)")
	}
	if b.ReadTime < 0 {
		return errs.NewInvalidFieldError("readTime", "must not be negative")
	}
	return nil
}
