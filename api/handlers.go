package api

import (
	"github.com/zulfifazhar/portfolio-backend/cache"
	"github.com/zulfifazhar/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, listCache cache.ListCache, gate ownerGate) *routeHandlers {
	return &routeHandlers{
		projectHandler:     newProjectHandler(database.ProjectRepo(), listCache),
		competitionHandler: newCompetitionHandler(database.CompetitionRepo(), listCache),
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo(), listCache),
		socialHandler:      newSocialHandler(database.SocialRepo(), listCache),
		homeHandler:        newHomeHandler(database.HomeRepo()),
		dashboardHandler:   newDashboardHandler(database.ProjectRepo(), database.CompetitionRepo()),
		authHandler:        newAuthHandler(gate),
	}
}
