package models

import (
	"time"

	"github.com/zulfifazhar/portfolio-backend/errs"
	"gorm.io/datatypes"
)

// ProjectStatus is the closed set of lifecycle states a project can be in.
type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "Planned"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ProjectStatuses lists the legal values in the order the dashboard offers them.
var ProjectStatuses = []ProjectStatus{ProjectPlanned, ProjectInProgress, ProjectCompleted}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanned, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

// Project represents a portfolio project with metadata. Ids are opaque
// strings: the server fills empty ones, but clients may synthesize their own
// (the dashboard uses "proj-" + timestamp).
type Project struct {
	ID              string                      `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Slug            string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string                     `json:"longDescription,omitempty" db:"long_description" gorm:"type:text"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	Category        datatypes.JSONSlice[string] `json:"category" db:"category"`
	Status          ProjectStatus               `json:"status" db:"status" gorm:"type:text;not null"`
	StartDate       string                      `json:"startDate" db:"start_date" gorm:"type:text;not null"`
	EndDate         *string                     `json:"endDate,omitempty" db:"end_date" gorm:"type:text"`
	GithubURL       *string                     `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL         *string                     `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	ImageURL        *string                     `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Features        datatypes.JSONSlice[string] `json:"features" db:"features"`
	CreatedAt       time.Time                   `json:"-" db:"created_at"`
	UpdatedAt       time.Time                   `json:"-" db:"updated_at"`
}

const isoDate = "2006-01-02"

// Validate enforces what the original form's `required` attributes only hinted
// at, plus the endDate-not-before-startDate invariant.
func (p *Project) Validate() error {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if p.StartDate == "" {
		return errs.NewMissingRequiredFieldError("startDate")
	}
	start, err := time.Parse(isoDate, p.StartDate)
	if err != nil {
		return errs.NewInvalidFieldError("startDate", "must be an ISO date (YYYY-MM-DD)")
	}
	if !p.Status.Valid() {
		return errs.NewInvalidFieldError("status", "must be one of Planned, In Progress, Completed")
	}
	if p.EndDate != nil && *p.EndDate != "" {
		end, err := time.Parse(isoDate, *p.EndDate)
		if err != nil {
			return errs.NewInvalidFieldError("endDate", "must be an ISO date (YYYY-MM-DD)")
		}
		if end.Before(start) {
			return errs.NewInvalidFieldError("endDate", "must not precede startDate")
		}
	}
	return nil
}
