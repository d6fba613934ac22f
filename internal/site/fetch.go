// Package site loads the public page content. Every section makes one read
// against the API and falls back to the built-in dataset when the call fails
// or comes back empty.
package site

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dileepkakara/portfolio/internal/models"
)

// Source is the read side of the API used by the public page.
type Source interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetAbout(ctx context.Context) (*models.About, error)
}

func FetchSkills(ctx context.Context, src Source, log *zap.Logger) []models.Skill {
	skills, err := src.ListSkills(ctx)
	if err != nil {
		log.Warn("fetch skills failed, using defaults", zap.Error(err))
		return DefaultSkills()
	}
	if len(skills) == 0 {
		return DefaultSkills()
	}
	return skills
}

func FetchProjects(ctx context.Context, src Source, log *zap.Logger) []models.Project {
	projects, err := src.ListProjects(ctx)
	if err != nil {
		log.Warn("fetch projects failed, using defaults", zap.Error(err))
		return DefaultProjects()
	}
	if len(projects) == 0 {
		return DefaultProjects()
	}
	return projects
}

// FetchAbout reports whether the profile came from the API.
func FetchAbout(ctx context.Context, src Source, log *zap.Logger) (models.About, bool) {
	about, err := src.GetAbout(ctx)
	if err != nil {
		log.Warn("fetch about failed, using defaults", zap.Error(err))
		return DefaultAbout(), false
	}
	if about == nil {
		return DefaultAbout(), false
	}
	return *about, true
}

// Content is everything the public page renders.
type Content struct {
	Profile      Profile
	About        models.About
	AboutFromAPI bool
	Skills       []models.Skill
	Projects     []models.Project
}

// Load runs the three section fetches concurrently.
func Load(ctx context.Context, src Source, log *zap.Logger) Content {
	c := Content{Profile: DefaultProfile()}
	var g errgroup.Group
	g.Go(func() error {
		c.About, c.AboutFromAPI = FetchAbout(ctx, src, log)
		return nil
	})
	g.Go(func() error {
		c.Skills = FetchSkills(ctx, src, log)
		return nil
	})
	g.Go(func() error {
		c.Projects = FetchProjects(ctx, src, log)
		return nil
	})
	_ = g.Wait()
	return c
}
