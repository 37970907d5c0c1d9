package manage

import (
	"strings"

	"github.com/zulfifazhar/portfolio-backend/models"
)

// splitList parses a delimited form field into trimmed, non-empty values.
func splitList(raw, sep string) []string {
	var values []string
	for _, part := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func joinList(values []string, sep string) string {
	return strings.Join(values, sep)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ProjectConfig describes the Project entity to the manager: which fields
// are searchable, how the form maps to the record, and the dashboard tiles.
func ProjectConfig() Config[models.Project] {
	return Config[models.Project]{
		Title:       "Projects",
		Description: "Manage your portfolio projects",
		Endpoint:    "/api/projects",
		IDPrefix:    "proj",

		SearchFields: []Field[models.Project]{
			{Name: "title", Value: func(p models.Project) []string { return []string{p.Title} }},
			{Name: "description", Value: func(p models.Project) []string { return []string{p.Description} }},
			{Name: "technologies", Value: func(p models.Project) []string { return p.Technologies }},
		},

		StatusField: func(p models.Project) string { return string(p.Status) },
		StatusOptions: []string{
			string(models.ProjectPlanned),
			string(models.ProjectInProgress),
			string(models.ProjectCompleted),
		},
		CategoryField: func(p models.Project) []string { return p.Category },

		ItemID:    func(p models.Project) string { return p.ID },
		SetItemID: func(p *models.Project, id string) { p.ID = id },

		InitialForm: func() Form {
			return Form{
				"title":           "",
				"description":     "",
				"longDescription": "",
				"technologies":    "",
				"category":        "",
				"status":          string(models.ProjectPlanned),
				"startDate":       "",
				"endDate":         "",
				"githubUrl":       "",
				"liveUrl":         "",
				"imageUrl":        "",
				"features":        "",
			}
		},
		ItemToForm: func(p models.Project) Form {
			return Form{
				"title":           p.Title,
				"description":     p.Description,
				"longDescription": deref(p.LongDescription),
				"technologies":    joinList(p.Technologies, ", "),
				"category":        joinList(p.Category, ", "),
				"status":          string(p.Status),
				"startDate":       p.StartDate,
				"endDate":         deref(p.EndDate),
				"githubUrl":       deref(p.GithubURL),
				"liveUrl":         deref(p.LiveURL),
				"imageUrl":        deref(p.ImageURL),
				"features":        joinList(p.Features, "\n"),
			}
		},
		FormToItem: func(f Form) (models.Project, error) {
			project := models.Project{
				Title:           f["title"],
				Slug:            models.Slugify(f["title"]),
				Description:     f["description"],
				LongDescription: optional(f["longDescription"]),
				Technologies:    splitList(f["technologies"], ","),
				Category:        splitList(f["category"], ","),
				Status:          models.ProjectStatus(f["status"]),
				StartDate:       f["startDate"],
				EndDate:         optional(f["endDate"]),
				GithubURL:       optional(f["githubUrl"]),
				LiveURL:         optional(f["liveUrl"]),
				ImageURL:        optional(f["imageUrl"]),
				Features:        splitList(f["features"], "\n"),
			}
			return project, project.Validate()
		},

		Stats: func(projects []models.Project) []Stat {
			stats := []Stat{
				{Label: "Total Projects", Value: len(projects), Icon: "folder"},
				{Label: "Completed", Icon: "check-circle"},
				{Label: "In Progress", Icon: "clock"},
				{Label: "Planned", Icon: "calendar"},
			}
			for _, p := range projects {
				switch p.Status {
				case models.ProjectCompleted:
					stats[1].Value++
				case models.ProjectInProgress:
					stats[2].Value++
				case models.ProjectPlanned:
					stats[3].Value++
				}
			}
			return stats
		},
	}
}

// CompetitionConfig describes the Competition entity to the manager.
func CompetitionConfig() Config[models.Competition] {
	return Config[models.Competition]{
		Title:       "Competitions",
		Description: "Manage your competition entries",
		Endpoint:    "/api/competitions",
		IDPrefix:    "comp",

		SearchFields: []Field[models.Competition]{
			{Name: "title", Value: func(c models.Competition) []string { return []string{c.Title} }},
			{Name: "organizer", Value: func(c models.Competition) []string { return []string{c.Organizer} }},
			{Name: "description", Value: func(c models.Competition) []string { return []string{c.Description} }},
			{Name: "result", Value: func(c models.Competition) []string { return []string{c.Result} }},
		},

		StatusField: func(c models.Competition) string { return string(c.Status) },
		StatusOptions: []string{
			string(models.CompetitionUpcoming),
			string(models.CompetitionOngoing),
			string(models.CompetitionCompleted),
		},

		ItemID:    func(c models.Competition) string { return c.ID },
		SetItemID: func(c *models.Competition, id string) { c.ID = id },

		InitialForm: func() Form {
			return Form{
				"title":       "",
				"organizer":   "",
				"description": "",
				"startDate":   "",
				"endDate":     "",
				"location":    "",
				"result":      "",
				"status":      string(models.CompetitionUpcoming),
				"imageUrl":    "",
			}
		},
		ItemToForm: func(c models.Competition) Form {
			return Form{
				"title":       c.Title,
				"organizer":   c.Organizer,
				"description": c.Description,
				"startDate":   c.StartDate,
				"endDate":     c.EndDate,
				"location":    c.Location,
				"result":      c.Result,
				"status":      string(c.Status),
				"imageUrl":    deref(c.ImageURL),
			}
		},
		FormToItem: func(f Form) (models.Competition, error) {
			competition := models.Competition{
				Title:       f["title"],
				Organizer:   f["organizer"],
				Description: f["description"],
				StartDate:   f["startDate"],
				EndDate:     f["endDate"],
				Location:    f["location"],
				Result:      f["result"],
				Status:      models.CompetitionStatus(f["status"]),
				ImageURL:    optional(f["imageUrl"]),
			}
			return competition, competition.Validate()
		},

		Stats: func(competitions []models.Competition) []Stat {
			stats := []Stat{
				{Label: "Total Competitions", Value: len(competitions), Icon: "trophy"},
				{Label: "Wins", Icon: "award"},
				{Label: "Ongoing", Icon: "clock"},
				{Label: "Upcoming", Icon: "calendar"},
			}
			for _, c := range competitions {
				switch c.Status {
				case models.CompetitionOngoing:
					stats[2].Value++
				case models.CompetitionUpcoming:
					stats[3].Value++
				}
				lowered := strings.ToLower(c.Result)
				if strings.Contains(lowered, "winner") || strings.Contains(lowered, "1st") {
					stats[1].Value++
				}
			}
			return stats
		},
	}
}
