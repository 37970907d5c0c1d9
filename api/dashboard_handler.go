package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/models"
	"golang.org/x/sync/errgroup"
)

type dashboardHandler struct {
	responder       Responder
	logger          zerolog.Logger
	projectRepo     *database.ProjectRepo
	competitionRepo *database.CompetitionRepo
}

func newDashboardHandler(projectRepo *database.ProjectRepo, competitionRepo *database.CompetitionRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		projectRepo:     projectRepo,
		competitionRepo: competitionRepo,
	}
}

// ProjectOverview summarizes the project collection for the dashboard tiles.
type ProjectOverview struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Planned    int `json:"planned"`
}

// CompetitionOverview summarizes the competition collection.
type CompetitionOverview struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Ongoing   int `json:"ongoing"`
	Upcoming  int `json:"upcoming"`
	Wins      int `json:"wins"`
}

// DashboardOverview is the payload behind the dashboard statistic tiles.
type DashboardOverview struct {
	Projects     ProjectOverview     `json:"projects"`
	Competitions CompetitionOverview `json:"competitions"`
}

// overview loads the two collections concurrently and reduces them to counts.
func (h dashboardHandler) overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			projects     []*models.Project
			competitions []*models.Competition
			g            errgroup.Group
		)

		g.Go(func() error {
			var err error
			projects, err = h.projectRepo.FindAll(database.ListQuery{})
			return err
		})
		g.Go(func() error {
			var err error
			competitions, err = h.competitionRepo.FindAll(database.ListQuery{})
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load dashboard overview", "dashboard", err))
			return
		}

		overview := DashboardOverview{}
		overview.Projects.Total = len(projects)
		for _, p := range projects {
			switch p.Status {
			case models.ProjectCompleted:
				overview.Projects.Completed++
			case models.ProjectInProgress:
				overview.Projects.InProgress++
			case models.ProjectPlanned:
				overview.Projects.Planned++
			}
		}

		overview.Competitions.Total = len(competitions)
		for _, c := range competitions {
			switch c.Status {
			case models.CompetitionCompleted:
				overview.Competitions.Completed++
			case models.CompetitionOngoing:
				overview.Competitions.Ongoing++
			case models.CompetitionUpcoming:
				overview.Competitions.Upcoming++
			}
			if isWinningResult(c.Result) {
				overview.Competitions.Wins++
			}
		}

		h.responder.WriteData(w, overview)
	}
}

// isWinningResult counts podium finishes ("1st Place", "2nd Place Winner", ...)
// for the wins tile.
func isWinningResult(result string) bool {
	lowered := strings.ToLower(result)
	return strings.Contains(lowered, "winner") ||
		strings.Contains(lowered, "1st") ||
		strings.Contains(lowered, "2nd") ||
		strings.Contains(lowered, "3rd")
}
