package models

import (
	"time"

	"gorm.io/datatypes"
)

// HomeHero is the hero section of the home page.
type HomeHero struct {
	Title    string `json:"title" gorm:"column:hero_title;type:text"`
	Subtitle string `json:"subtitle" gorm:"column:hero_subtitle;type:text"`
}

// HomeAbout is the about section, including the skill matrix stored as a
// JSON document (categories of {name, level} skills).
type HomeAbout struct {
	Description     string         `json:"description" gorm:"column:about_description;type:text"`
	Experience      string         `json:"experience" gorm:"column:about_experience;type:text"`
	Image           string         `json:"image" gorm:"column:about_image;type:text"`
	SkillCategories datatypes.JSON `json:"skillCategories" gorm:"column:about_skill_categories"`
}

// HomeContent is the singleton document backing the home page. There is only
// ever one row; GET creates the default when none exists.
type HomeContent struct {
	ID        string    `json:"id" gorm:"type:text;primaryKey;not null"`
	Hero      HomeHero  `json:"hero" gorm:"embedded"`
	About     HomeAbout `json:"about" gorm:"embedded"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultHomeContent is what GET /api/home materializes on first access.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		ID: "home",
		Hero: HomeHero{
			Title:    "Welcome to My Personal Website",
			Subtitle: "I'm a developer, writer, and creator sharing my thoughts and projects with the world.",
		},
		About: HomeAbout{
			Description: "I'm passionate about technology, design, and creating meaningful experiences.",
			Experience:  "5+ years",
			Image:       "/placeholder.svg?height=400&width=400",
			SkillCategories: datatypes.JSON(
				[]byte(`[{"name":"Programming Languages","skills":[{"name":"JavaScript","level":5},{"name":"TypeScript","level":4},{"name":"Python","level":3}]}]`)),
		},
	}
}
