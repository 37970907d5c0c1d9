package database

import (
	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo     *ProjectRepo
	competitionRepo *CompetitionRepo
	blogPostRepo    *BlogPostRepo
	socialRepo      *SocialRepo
	homeRepo        *HomeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewProjectRepo(db),
		competitionRepo: NewCompetitionRepo(db),
		blogPostRepo:    NewBlogPostRepo(db),
		socialRepo:      NewSocialRepo(db),
		homeRepo:        NewHomeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CompetitionRepo() *CompetitionRepo {
	return d.competitionRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) SocialRepo() *SocialRepo {
	return d.socialRepo
}

func (d Database) HomeRepo() *HomeRepo {
	return d.homeRepo
}

// Migrate creates or updates the schema for every managed entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Competition{},
		&models.BlogPost{},
		&models.Social{},
		&models.HomeContent{},
	)
}
