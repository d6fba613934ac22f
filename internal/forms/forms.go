// Package forms holds the descriptor tables for every content type. The
// admin panel renders them and the API serves them to other clients.
package forms

import (
	"strings"

	"github.com/dileepkakara/portfolio/internal/formbuilder"
)

var Project = []formbuilder.Field{
	{Name: "title", Label: "Project Title", Placeholder: "Enter project title", Required: true},
	{Name: "description", Label: "Description", Placeholder: "Enter project description", Type: formbuilder.KindTextarea, Required: true},
	{Name: "image", Label: "Image URL", Placeholder: "https://example.com/image.jpg", Type: formbuilder.KindImage, Required: true},
	{Name: "tags", Label: "Tags", Placeholder: "React, Vite, Node.js (comma separated)", Type: formbuilder.KindTags, Hint: "Separate with commas"},
	{Name: "liveLink", Label: "Live Link", Placeholder: "https://your-project.com", Type: formbuilder.KindURL},
	{Name: "githubLink", Label: "GitHub Link", Placeholder: "https://github.com/user/repo", Type: formbuilder.KindURL},
}

var Skill = []formbuilder.Field{
	{Name: "name", Label: "Skill Name", Placeholder: "e.g., React", Required: true},
	{Name: "icon", Label: "Icon Class", Placeholder: "e.g., fab fa-react", Type: formbuilder.KindIcon, Required: true, Hint: "Use Font Awesome classes"},
}

var About = []formbuilder.Field{
	{Name: "text", Label: "About Text", Placeholder: "Write your bio...", Type: formbuilder.KindTextarea, Required: true, Rows: 6},
	{Name: "dateOfBirth", Label: "Date of Birth", Placeholder: "DD/MM/YYYY"},
	{Name: "phone", Label: "Phone Number", Placeholder: "+91 XXXXXXXXXX", Type: formbuilder.KindTel},
	{Name: "location", Label: "Location", Placeholder: "City, Country"},
	{Name: "education", Label: "Education", Placeholder: "B-Tech in Computer Science...", Type: formbuilder.KindTextarea, Rows: 3},
	{Name: "profilePhoto", Label: "Profile Photo URL", Placeholder: "https://example.com/me.jpg", Type: formbuilder.KindImage},
	{Name: "cvLink", Label: "CV Download Link", Placeholder: "https://drive.google.com/...", Type: formbuilder.KindURL},
}

// Message is read only in the admin panel and mirrors the public contact form.
var Message = []formbuilder.Field{
	{Name: "name", Label: "Name", Placeholder: "Your Name", Required: true},
	{Name: "email", Label: "Email", Placeholder: "Your Email", Type: formbuilder.KindEmail, Required: true},
	{Name: "phone", Label: "Phone", Placeholder: "Your Phone (optional)", Type: formbuilder.KindTel},
	{Name: "message", Label: "Message", Placeholder: "Your Message", Type: formbuilder.KindTextarea, Required: true, Rows: 5},
}

var byName = map[string][]formbuilder.Field{
	"project": Project,
	"skill":   Skill,
	"about":   About,
	"message": Message,
}

// Names lists the known tables in display order.
func Names() []string {
	return []string{"project", "skill", "about", "message"}
}

// Lookup returns a copy of the named table. Plural names are accepted.
func Lookup(name string) ([]formbuilder.Field, bool) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	fields, ok := byName[name]
	if !ok {
		return nil, false
	}
	out := make([]formbuilder.Field, len(fields))
	copy(out, fields)
	return out, true
}
