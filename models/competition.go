package models

import (
	"time"

	"github.com/zulfifazhar/portfolio-backend/errs"
)

// CompetitionStatus is the closed set of states a competition entry can be in.
type CompetitionStatus string

const (
	CompetitionUpcoming  CompetitionStatus = "Upcoming"
	CompetitionOngoing   CompetitionStatus = "Ongoing"
	CompetitionCompleted CompetitionStatus = "Completed"
)

var CompetitionStatuses = []CompetitionStatus{CompetitionUpcoming, CompetitionOngoing, CompetitionCompleted}

func (s CompetitionStatus) Valid() bool {
	switch s {
	case CompetitionUpcoming, CompetitionOngoing, CompetitionCompleted:
		return true
	}
	return false
}

// Competition represents a competition or hackathon entry.
type Competition struct {
	ID          string            `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Title       string            `json:"title" db:"title" gorm:"type:text;not null"`
	Organizer   string            `json:"organizer" db:"organizer" gorm:"type:text;not null"`
	Description string            `json:"description" db:"description" gorm:"type:text;not null"`
	StartDate   string            `json:"startDate" db:"start_date" gorm:"type:text;not null"`
	EndDate     string            `json:"endDate" db:"end_date" gorm:"type:text;not null"`
	Location    string            `json:"location" db:"location" gorm:"type:text"`
	Result      string            `json:"result" db:"result" gorm:"type:text"`
	Status      CompetitionStatus `json:"status" db:"status" gorm:"type:text;not null"`
	ImageURL    *string           `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt   time.Time         `json:"-" db:"created_at"`
	UpdatedAt   time.Time         `json:"-" db:"updated_at"`
}

func (c *Competition) Validate() error {
	if c.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if c.Organizer == "" {
		return errs.NewMissingRequiredFieldError("organizer")
	}
	if c.StartDate == "" {
		return errs.NewMissingRequiredFieldError("startDate")
	}
	if c.EndDate == "" {
		return errs.NewMissingRequiredFieldError("endDate")
	}
	start, err := time.Parse(isoDate, c.StartDate)
	if err != nil {
		return errs.NewInvalidFieldError("startDate", "must be an ISO date (YYYY-MM-DD)")
	}
	end, err := time.Parse(isoDate, c.EndDate)
	if err != nil {
		return errs.NewInvalidFieldError("endDate", "must be an ISO date (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return errs.NewInvalidFieldError("endDate", "must not precede startDate")
	}
	if !c.Status.Valid() {
		return errs.NewInvalidFieldError("status", "must be one of Upcoming, Ongoing, Completed")
	}
	return nil
}
