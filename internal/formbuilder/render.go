package formbuilder

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.New("formbuilder").Funcs(template.FuncMap{
	"lower": lower,
	"cell":  func(f Field, r Record) cell { return cell{Field: f, Record: r} },
}).ParseFS(templateFS, "templates/*.html"))

func lower(s string) string { return cases.Lower(language.English).String(s) }

// cell pairs one field with one item for value rendering.
type cell struct {
	Field  Field
	Record Record
}

type view struct {
	Title        string
	Action       string
	Fields       []Field
	EditorMode   bool
	ReadOnly     bool
	CanDelete    bool
	Open         bool
	EditID       string
	Draft        Values
	Notice       string
	Items        []Record
	Expanded     *Record
	Current      *Record
	DeletePrompt string
}

// Render writes the builder's HTML for the given items.
func (b *Builder) Render(w io.Writer, items []Record) error {
	v := view{
		Title:        b.title,
		Action:       b.action,
		Fields:       b.Fields(),
		EditorMode:   b.editorMode,
		ReadOnly:     b.ReadOnly(),
		CanDelete:    b.CanDelete(),
		Open:         b.open,
		EditID:       b.editID,
		Draft:        b.Draft(),
		Notice:       b.notice,
		Items:        items,
		DeletePrompt: b.DeletePrompt(),
	}
	if len(items) > 0 {
		first := items[0]
		v.Current = &first
	}
	if b.expanded != "" {
		for i := range items {
			if items[i].ID == b.expanded {
				v.Expanded = &items[i]
				break
			}
		}
	}
	if err := tmpl.ExecuteTemplate(w, "builder", v); err != nil {
		return fmt.Errorf("render %s form: %w", b.title, err)
	}
	return nil
}

// HTML renders into a string for embedding in a page template.
func (b *Builder) HTML(items []Record) (template.HTML, error) {
	var sb strings.Builder
	if err := b.Render(&sb, items); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}
