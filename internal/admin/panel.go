// Package admin is the content management panel: one form builder per
// content type, fetch and refetch against the API, and operator alerts.
package admin

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/formbuilder"
	"github.com/dileepkakara/portfolio/internal/forms"
	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/utils"
)

const (
	TabProjects = "projects"
	TabSkills   = "skills"
	TabAbout    = "about"
	TabMessages = "messages"
)

// Tabs lists the panel tabs in display order.
var Tabs = []string{TabProjects, TabSkills, TabAbout, TabMessages}

var ErrUnknownTab = errors.New("unknown tab")

// NoticeAboutSaved is shown after a successful About update.
const NoticeAboutSaved = "About section updated!"

// API is the slice of the REST client the panel needs. The client must
// already carry the admin token.
type API interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in client.ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, in client.ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, in client.SkillInput) (models.Skill, error)
	UpdateSkill(ctx context.Context, id string, in client.SkillInput) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, in client.AboutInput) (models.About, error)

	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error

	VisitorCount(ctx context.Context) (int64, error)
}

type Panel struct {
	api      API
	log      *zap.Logger
	basePath string
	builders map[string]*formbuilder.Builder

	projects []models.Project
	skills   []models.Skill
	about    *models.About
	messages []models.ContactMessage
	visitors int64

	selectedProject string
	alert           string
	notice          string
}

// New builds a panel whose builders link under basePath, e.g. "/admin".
func New(api API, log *zap.Logger, basePath string) *Panel {
	p := &Panel{
		api:      api,
		log:      log,
		basePath: strings.TrimRight(basePath, "/"),
	}
	p.builders = map[string]*formbuilder.Builder{
		TabProjects: formbuilder.New("Project", forms.Project, p.saveProject,
			formbuilder.WithDelete(p.deleteProject, "Delete this project?"),
			formbuilder.WithAction(p.tabPath(TabProjects))),
		TabSkills: formbuilder.New("Skill", forms.Skill, p.saveSkill,
			formbuilder.WithDelete(p.deleteSkill, "Delete this skill?"),
			formbuilder.WithAction(p.tabPath(TabSkills))),
		TabAbout: formbuilder.New("About", forms.About, p.saveAbout,
			formbuilder.EditorMode(),
			formbuilder.WithAction(p.tabPath(TabAbout))),
		TabMessages: formbuilder.New("Message", forms.Message, nil,
			formbuilder.ReadOnly(),
			formbuilder.WithDelete(p.deleteMessage, "Delete this message?"),
			formbuilder.WithAction(p.tabPath(TabMessages))),
	}
	return p
}

func (p *Panel) tabPath(tab string) string { return p.basePath + "/" + tab }

func ValidTab(tab string) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

func (p *Panel) Builder(tab string) (*formbuilder.Builder, error) {
	b, ok := p.builders[tab]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return b, nil
}

// Alert is the last failure message for the operator, if any.
func (p *Panel) Alert() string  { return p.alert }
func (p *Panel) Notice() string { return p.notice }

func (p *Panel) Projects() []models.Project        { return p.projects }
func (p *Panel) Skills() []models.Skill            { return p.skills }
func (p *Panel) About() *models.About              { return p.about }
func (p *Panel) Messages() []models.ContactMessage { return p.messages }
func (p *Panel) VisitorCount() int64               { return p.visitors }

// Refresh loads the visitor count and the tab's data. Failures are logged
// and leave the previous data in place.
func (p *Panel) Refresh(ctx context.Context, tab string) error {
	if !ValidTab(tab) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	if n, err := p.api.VisitorCount(ctx); err != nil {
		p.log.Warn("fetch visitor count", zap.Error(err))
	} else {
		p.visitors = n
	}
	p.fetch(ctx, tab)
	return nil
}

// RefreshAll loads every tab so the tab counts are accurate.
func (p *Panel) RefreshAll(ctx context.Context) {
	if n, err := p.api.VisitorCount(ctx); err != nil {
		p.log.Warn("fetch visitor count", zap.Error(err))
	} else {
		p.visitors = n
	}
	for _, tab := range Tabs {
		p.fetch(ctx, tab)
	}
}

func (p *Panel) fetch(ctx context.Context, tab string) {
	var err error
	switch tab {
	case TabProjects:
		var items []models.Project
		if items, err = p.api.ListProjects(ctx); err == nil {
			p.projects = items
		}
	case TabSkills:
		var items []models.Skill
		if items, err = p.api.ListSkills(ctx); err == nil {
			p.skills = items
		}
	case TabAbout:
		var about *models.About
		if about, err = p.api.GetAbout(ctx); err == nil {
			p.about = about
		}
	case TabMessages:
		var items []models.ContactMessage
		if items, err = p.api.ListMessages(ctx); err == nil {
			p.messages = items
		}
	}
	if err != nil {
		p.log.Warn("fetch "+tab, zap.Error(err))
	}
}

// Count is the number of items shown on the tab.
func (p *Panel) Count(tab string) int {
	switch tab {
	case TabProjects:
		return len(p.projects)
	case TabSkills:
		return len(p.skills)
	case TabAbout:
		if p.about != nil {
			return 1
		}
	case TabMessages:
		return len(p.messages)
	}
	return 0
}

func (p *Panel) Records(tab string) ([]formbuilder.Record, error) {
	switch tab {
	case TabProjects:
		return formbuilder.RecordsOf(p.projects)
	case TabSkills:
		return formbuilder.RecordsOf(p.skills)
	case TabAbout:
		if p.about == nil {
			return nil, nil
		}
		return formbuilder.RecordsOf([]models.About{*p.about})
	case TabMessages:
		return formbuilder.RecordsOf(p.messages)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
}

func (p *Panel) find(tab, id string) (formbuilder.Record, bool, error) {
	records, err := p.Records(tab)
	if err != nil {
		return formbuilder.Record{}, false, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, true, nil
		}
	}
	return formbuilder.Record{}, false, nil
}

// OpenNew opens the tab's empty form.
func (p *Panel) OpenNew(tab string) error {
	b, err := p.Builder(tab)
	if err != nil {
		return err
	}
	b.OpenNew()
	return nil
}

// OpenEdit opens the tab's form for the item. It reports false when the item
// is not in the current list.
func (p *Panel) OpenEdit(tab, id string) (bool, error) {
	b, err := p.Builder(tab)
	if err != nil {
		return false, err
	}
	rec, ok, err := p.find(tab, id)
	if err != nil || !ok {
		return false, err
	}
	b.OpenEdit(rec)
	return true, nil
}

// View expands the item for the detail view.
func (p *Panel) View(tab, id string) (bool, error) {
	b, err := p.Builder(tab)
	if err != nil {
		return false, err
	}
	rec, ok, err := p.find(tab, id)
	if err != nil || !ok {
		return false, err
	}
	b.Expand(rec)
	return true, nil
}

// Save binds a submitted form to the tab's builder and submits it. Validation
// failures leave the builder notice set; API failures set the alert. The
// draft stays open in both cases.
func (p *Panel) Save(ctx context.Context, tab string, form url.Values) error {
	b, err := p.Builder(tab)
	if err != nil {
		return err
	}
	if editID := strings.TrimSpace(form.Get("edit_id")); editID != "" {
		b.OpenEdit(formbuilder.Record{ID: editID})
	} else {
		b.OpenNew()
	}
	b.Bind(form)
	return b.Submit(ctx)
}

// Delete removes an item after c confirms. Declining changes nothing.
func (p *Panel) Delete(ctx context.Context, tab, id string, c formbuilder.Confirmer) (bool, error) {
	b, err := p.Builder(tab)
	if err != nil {
		return false, err
	}
	return b.Delete(ctx, id, c)
}

// FormHTML renders the tab's builder with the current items.
func (p *Panel) FormHTML(tab string) (template.HTML, error) {
	b, err := p.Builder(tab)
	if err != nil {
		return "", err
	}
	records, err := p.Records(tab)
	if err != nil {
		return "", err
	}
	return b.HTML(records)
}

// failure builds the operator alert from an API error.
func (p *Panel) failure(action, fallback string, err error) error {
	msg := client.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	p.alert = action + ": " + msg
	p.log.Warn(action, zap.Error(err))
	return fmt.Errorf("%s: %w", action, err)
}

func (p *Panel) saveProject(ctx context.Context, v formbuilder.Values, editID string) error {
	in := client.ProjectInput{
		Title:       v["title"],
		Description: v["description"],
		Image:       v["image"],
		Tags:        utils.ParseTags(v["tags"]),
		LiveLink:    v["liveLink"],
		GithubLink:  v["githubLink"],
	}
	var err error
	if editID != "" {
		_, err = p.api.UpdateProject(ctx, editID, in)
	} else {
		_, err = p.api.CreateProject(ctx, in)
	}
	if err != nil {
		return p.failure("Failed to save project", "Failed to save project", err)
	}
	p.fetch(ctx, TabProjects)
	return nil
}

func (p *Panel) deleteProject(ctx context.Context, id string) error {
	if err := p.api.DeleteProject(ctx, id); err != nil {
		return p.failure("Failed to delete project", "Failed to delete", err)
	}
	if p.selectedProject == id {
		p.selectedProject = ""
	}
	p.fetch(ctx, TabProjects)
	return nil
}

func (p *Panel) saveSkill(ctx context.Context, v formbuilder.Values, editID string) error {
	in := client.SkillInput{Name: v["name"], Icon: v["icon"]}
	var err error
	if editID != "" {
		_, err = p.api.UpdateSkill(ctx, editID, in)
	} else {
		_, err = p.api.CreateSkill(ctx, in)
	}
	if err != nil {
		return p.failure("Failed to save skill", "Failed to save skill", err)
	}
	p.fetch(ctx, TabSkills)
	return nil
}

func (p *Panel) deleteSkill(ctx context.Context, id string) error {
	if err := p.api.DeleteSkill(ctx, id); err != nil {
		return p.failure("Failed to delete skill", "Failed to delete", err)
	}
	p.fetch(ctx, TabSkills)
	return nil
}

func (p *Panel) saveAbout(ctx context.Context, v formbuilder.Values, _ string) error {
	in := client.AboutInput{
		Text:         v["text"],
		DateOfBirth:  v["dateOfBirth"],
		Phone:        v["phone"],
		Location:     v["location"],
		Education:    v["education"],
		ProfilePhoto: v["profilePhoto"],
		CVLink:       v["cvLink"],
	}
	if _, err := p.api.UpdateAbout(ctx, in); err != nil {
		return p.failure("Failed to update about", "Failed to update about", err)
	}
	p.notice = NoticeAboutSaved
	p.fetch(ctx, TabAbout)
	return nil
}

func (p *Panel) deleteMessage(ctx context.Context, id string) error {
	if err := p.api.DeleteMessage(ctx, id); err != nil {
		return p.failure("Failed to delete message", "Failed to delete", err)
	}
	p.fetch(ctx, TabMessages)
	return nil
}
