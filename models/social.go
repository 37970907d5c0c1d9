package models

import (
	"time"

	"github.com/zulfifazhar/portfolio-backend/errs"
)

// SocialIcon is the closed set of icon identifiers the frontend knows how to
// render. Unknown names are rejected at the API boundary instead of silently
// falling back to a default glyph.
type SocialIcon string

const (
	IconGithub    SocialIcon = "github"
	IconLinkedin  SocialIcon = "linkedin"
	IconInstagram SocialIcon = "instagram"
	IconMail      SocialIcon = "mail"
	IconGlobe     SocialIcon = "globe"
	IconAtSign    SocialIcon = "at-sign"
	IconLibrary   SocialIcon = "library"
	IconDisc      SocialIcon = "disc"
)

var socialIcons = map[string]SocialIcon{
	string(IconGithub):    IconGithub,
	string(IconLinkedin):  IconLinkedin,
	string(IconInstagram): IconInstagram,
	string(IconMail):      IconMail,
	string(IconGlobe):     IconGlobe,
	string(IconAtSign):    IconAtSign,
	string(IconLibrary):   IconLibrary,
	string(IconDisc):      IconDisc,
}

// ParseSocialIcon resolves an icon name through the explicit mapping.
func ParseSocialIcon(name string) (SocialIcon, bool) {
	icon, ok := socialIcons[name]
	return icon, ok
}

// Social represents one entry on the social-links page.
type Social struct {
	ID        string     `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Platform  string     `json:"platform" db:"platform" gorm:"type:text;not null"`
	Username  string     `json:"username" db:"username" gorm:"type:text;not null"`
	URL       string     `json:"url" db:"url" gorm:"type:text;not null"`
	Color     string     `json:"color" db:"color" gorm:"type:text"`
	DarkColor string     `json:"darkColor" db:"dark_color" gorm:"type:text"`
	Icon      SocialIcon `json:"icon" db:"icon" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"-" db:"created_at"`
	UpdatedAt time.Time  `json:"-" db:"updated_at"`
}

func (s *Social) Validate() error {
	if s.Platform == "" {
		return errs.NewMissingRequiredFieldError("platform")
	}
	if s.URL == "" {
		return errs.NewMissingRequiredFieldError("url")
	}
	if _, ok := ParseSocialIcon(string(s.Icon)); !ok {
		return errs.NewInvalidFieldError("icon", "unknown icon identifier")
	}
	return nil
}
