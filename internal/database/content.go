package database

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/utils"
)

// Content is site content loaded from a seed directory:
//
//	skills.yaml        list of {name, icon}
//	about.yaml         the about profile
//	projects/*.md      front matter (title, image, tags, liveLink, githubLink),
//	                   body is the description
type Content struct {
	Skills   []models.Skill
	About    *models.About
	Projects []models.Project
}

type skillDoc struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type aboutDoc struct {
	Text         string `yaml:"text"`
	DateOfBirth  string `yaml:"dateOfBirth"`
	Phone        string `yaml:"phone"`
	Location     string `yaml:"location"`
	Education    string `yaml:"education"`
	ProfilePhoto string `yaml:"profilePhoto"`
	CVLink       string `yaml:"cvLink"`
}

type projectMatter struct {
	Title      string   `yaml:"title"`
	Image      string   `yaml:"image"`
	Tags       []string `yaml:"tags"`
	LiveLink   string   `yaml:"liveLink"`
	GithubLink string   `yaml:"githubLink"`
}

// LoadContent reads a seed directory. Missing files are skipped.
func LoadContent(dir string) (*Content, error) {
	c := &Content{}

	var skills []skillDoc
	if ok, err := readYAML(filepath.Join(dir, "skills.yaml"), &skills); err != nil {
		return nil, err
	} else if ok {
		for _, s := range skills {
			if strings.TrimSpace(s.Name) == "" {
				return nil, fmt.Errorf("skills.yaml: skill without name")
			}
			c.Skills = append(c.Skills, models.Skill{Name: s.Name, Icon: s.Icon})
		}
	}

	var about aboutDoc
	if ok, err := readYAML(filepath.Join(dir, "about.yaml"), &about); err != nil {
		return nil, err
	} else if ok {
		c.About = &models.About{
			Text:         strings.TrimSpace(about.Text),
			DateOfBirth:  about.DateOfBirth,
			Phone:        about.Phone,
			Location:     about.Location,
			Education:    strings.TrimSpace(about.Education),
			ProfilePhoto: about.ProfilePhoto,
			CVLink:       about.CVLink,
		}
	}

	projects, err := loadProjects(filepath.Join(dir, "projects"))
	if err != nil {
		return nil, err
	}
	c.Projects = projects
	return c, nil
}

func readYAML(path string, v any) (bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

func loadProjects(dir string) ([]models.Project, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var projects []models.Project
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var m projectMatter
		body, err := frontmatter.Parse(bytes.NewReader(raw), &m)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("%s: title is required", name)
		}
		projects = append(projects, models.Project{
			Title:       m.Title,
			Description: strings.TrimSpace(string(body)),
			Image:       m.Image,
			Tags:        utils.CleanTags(m.Tags),
			LiveLink:    m.LiveLink,
			GithubLink:  m.GithubLink,
		})
	}
	return projects, nil
}

// SeedReport counts rows inserted by SeedContent.
type SeedReport struct {
	Skills   int
	Projects int
	About    bool
}

// SeedContent inserts content into empty tables only, so it is safe to run
// on every start.
func SeedContent(db *gorm.DB, c *Content, log *zap.Logger) (SeedReport, error) {
	var report SeedReport
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Skill{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			for i := range c.Skills {
				s := c.Skills[i]
				if err := tx.Create(&s).Error; err != nil {
					return fmt.Errorf("create skill %q: %w", s.Name, err)
				}
				report.Skills++
			}
		}

		if err := tx.Model(&models.Project{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			for i := range c.Projects {
				p := c.Projects[i]
				if err := tx.Create(&p).Error; err != nil {
					return fmt.Errorf("create project %q: %w", p.Title, err)
				}
				report.Projects++
			}
		}

		if c.About != nil {
			if err := tx.Model(&models.About{}).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				about := *c.About
				about.ID = models.AboutSingletonID
				if err := tx.Create(&about).Error; err != nil {
					return fmt.Errorf("create about: %w", err)
				}
				report.About = true
			}
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}
	log.Info("seeded content",
		zap.Int("skills", report.Skills),
		zap.Int("projects", report.Projects),
		zap.Bool("about", report.About))
	return report, nil
}
