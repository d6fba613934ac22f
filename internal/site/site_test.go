package site

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dileepkakara/portfolio/internal/models"
)

type fakeSource struct {
	skills   []models.Skill
	projects []models.Project
	about    *models.About
	err      error
	calls    atomic.Int32
}

func (f *fakeSource) ListSkills(context.Context) ([]models.Skill, error) {
	f.calls.Add(1)
	return f.skills, f.err
}

func (f *fakeSource) ListProjects(context.Context) ([]models.Project, error) {
	f.calls.Add(1)
	return f.projects, f.err
}

func (f *fakeSource) GetAbout(context.Context) (*models.About, error) {
	f.calls.Add(1)
	return f.about, f.err
}

func TestFallbackOnError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := &fakeSource{err: errors.New("connection refused")}

	c := Load(context.Background(), src, zap.New(core))

	if diff := cmp.Diff(DefaultSkills(), c.Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultProjects(), c.Projects); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultAbout(), c.About); diff != "" {
		t.Errorf("about mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, c.AboutFromAPI)
	assert.EqualValues(t, 3, src.calls.Load(), "exactly one attempt per section")
	assert.Equal(t, 3, logs.Len())
}

func TestFallbackOnEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := &fakeSource{skills: []models.Skill{}, projects: nil, about: nil}

	c := Load(context.Background(), src, zap.New(core))

	assert.Len(t, c.Skills, 12)
	assert.Len(t, c.Projects, 3)
	assert.Equal(t, "Visakhapatnam, India", c.About.Location)
	assert.Zero(t, logs.Len())
}

func TestUsesAPIData(t *testing.T) {
	src := &fakeSource{
		skills:   []models.Skill{{ID: "s", Name: "Go", Icon: "fab fa-golang"}},
		projects: []models.Project{{ID: "p", Title: "Portfolio", Tags: []string{"Go"}}},
		about:    &models.About{Text: "Hello"},
	}

	c := Load(context.Background(), src, zap.NewNop())

	if diff := cmp.Diff(src.skills, c.Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(src.projects, c.Projects); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, c.AboutFromAPI)
	assert.Equal(t, "Hello", c.About.Text)
	assert.Equal(t, "Dileep Kakara", c.Profile.Name)
}

func TestDefaultsAreFresh(t *testing.T) {
	a := DefaultSkills()
	a[0].Name = "changed"
	assert.Equal(t, "HTML5", DefaultSkills()[0].Name)
	assert.Equal(t, "12", DefaultSkills()[11].ID)
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("Hello **world**"))
	assert.Equal(t, "<p>Hello <strong>world</strong></p>\n", out)

	unsafe := string(Markdown("<script>alert(1)</script>\n\ntext"))
	assert.NotContains(t, unsafe, "<script>")
	assert.True(t, strings.Contains(unsafe, "<p>text</p>"))
}
