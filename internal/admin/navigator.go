package admin

import "github.com/dileepkakara/portfolio/internal/models"

// NavEntry is one numbered button of the project navigator.
type NavEntry struct {
	Number   int
	ID       string
	Title    string
	Selected bool
}

func (p *Panel) Navigator() []NavEntry {
	out := make([]NavEntry, 0, len(p.projects))
	for i, pr := range p.projects {
		out = append(out, NavEntry{Number: i + 1, ID: pr.ID, Title: pr.Title, Selected: pr.ID == p.selectedProject})
	}
	return out
}

// ToggleProject selects a project, or clears the selection when it is
// already selected.
func (p *Panel) ToggleProject(id string) {
	if p.selectedProject == id {
		p.selectedProject = ""
		return
	}
	p.selectedProject = id
}

func (p *Panel) SelectProject(id string) { p.selectedProject = id }

// SelectedProject returns nil when nothing is selected or the selection no
// longer exists.
func (p *Panel) SelectedProject() *models.Project {
	if p.selectedProject == "" {
		return nil
	}
	for i := range p.projects {
		if p.projects[i].ID == p.selectedProject {
			return &p.projects[i]
		}
	}
	return nil
}
