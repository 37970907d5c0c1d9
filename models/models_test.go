package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulfifazhar/portfolio-backend/errs"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"My First Project":          "my-first-project",
		"  Spaces  Everywhere  ":    "spaces-everywhere",
		"C++ & Go: A Comparison!":   "c-go-a-comparison",
		"already-a-slug":            "already-a-slug",
		"MixedCASE Title 123":       "mixedcase-title-123",
		"---leading and trailing--": "leading-and-trailing",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, Slugify(input), "input: %q", input)
	}
}

func validProject() Project {
	end := "2025-06-30"
	return Project{
		ID:           "proj-1",
		Slug:         "portfolio-site",
		Title:        "Portfolio Site",
		Description:  "A personal portfolio website",
		Technologies: []string{"Go", "PostgreSQL"},
		Category:     []string{"Web"},
		Status:       ProjectInProgress,
		StartDate:    "2025-01-15",
		EndDate:      &end,
	}
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	require.NoError(t, p.Validate())

	t.Run("missing title", func(t *testing.T) {
		p := validProject()
		p.Title = ""
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsMissingRequiredFieldError(err))
	})

	t.Run("bad start date", func(t *testing.T) {
		p := validProject()
		p.StartDate = "15/01/2025"
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		p := validProject()
		p.Status = "Shipped"
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("end date before start date", func(t *testing.T) {
		p := validProject()
		end := "2024-12-31"
		p.EndDate = &end
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "endDate", apiErr.Field)
	})

	t.Run("no end date is fine", func(t *testing.T) {
		p := validProject()
		p.EndDate = nil
		assert.NoError(t, p.Validate())
	})
}

func TestCompetitionValidate(t *testing.T) {
	valid := Competition{
		ID:        "comp-1",
		Title:     "National Hackathon",
		Organizer: "Tech Society",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-03",
		Status:    CompetitionUpcoming,
	}
	require.NoError(t, valid.Validate())

	t.Run("end before start", func(t *testing.T) {
		c := valid
		c.EndDate = "2025-02-28"
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("missing organizer", func(t *testing.T) {
		c := valid
		c.Organizer = ""
		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsMissingRequiredFieldError(err))
	})
}

func TestBlogPostValidate(t *testing.T) {
	valid := BlogPost{
		ID:          "blog-1",
		Slug:        "hello-world",
		Title:       "Hello World",
		Content:     "My first post.",
		PublishDate: "2025-05-01",
		ReadTime:    1,
	}
	require.NoError(t, valid.Validate())

	t.Run("missing content", func(t *testing.T) {
		b := valid
		b.Content = ""
		assert.Error(t, b.Validate())
	})

	t.Run("negative read time", func(t *testing.T) {
		b := valid
		b.ReadTime = -1
		assert.Error(t, b.Validate())
	})
}

func TestParseSocialIcon(t *testing.T) {
	for _, name := range []string{"github", "linkedin", "instagram", "mail", "globe", "at-sign", "library", "disc"} {
		icon, ok := ParseSocialIcon(name)
		assert.True(t, ok, name)
		assert.Equal(t, SocialIcon(name), icon)
	}

	_, ok := ParseSocialIcon("twitter")
	assert.False(t, ok)
}

func TestSocialValidate(t *testing.T) {
	valid := Social{
		ID:       "social-1",
		Platform: "GitHub",
		Username: "zulfifazhar",
		URL:      "https://github.com/zulfifazhar",
		Icon:     IconGithub,
	}
	require.NoError(t, valid.Validate())

	t.Run("unknown icon", func(t *testing.T) {
		s := valid
		s.Icon = "butterfly"
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("missing url", func(t *testing.T) {
		s := valid
		s.URL = ""
		assert.Error(t, s.Validate())
	})
}
