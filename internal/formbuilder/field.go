// Package formbuilder renders create/edit forms, item lists and detail views
// from a declarative table of field descriptors.
package formbuilder

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects how a field is rendered as an input and in list views.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindURL      Kind = "url"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindPassword Kind = "password"
	KindImage    Kind = "image" // URL input with live preview
	KindTags     Kind = "tags"  // comma separated in the form, a list on the item
	KindIcon     Kind = "icon"  // CSS class name rendered as <i class>
)

const defaultTextareaRows = 4

// Field describes one form input.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Type        Kind   `json:"type,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Rows        int    `json:"rows,omitempty"`
}

func (f Field) Kind() Kind {
	if f.Type == "" {
		return KindText
	}
	return f.Type
}

func (f Field) IsTextarea() bool { return f.Kind() == KindTextarea }

// InputType is the HTML input type attribute for non-textarea fields.
func (f Field) InputType() string {
	switch f.Kind() {
	case KindURL, KindImage:
		return "url"
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	case KindPassword:
		return "password"
	default:
		return "text"
	}
}

func (f Field) TextareaRows() int {
	if f.Rows > 0 {
		return f.Rows
	}
	return defaultTextareaRows
}

// DisplayLabel falls back to the title cased field name, "liveLink" -> "Live Link".
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return cases.Title(language.English).String(splitWords(f.Name))
}

func splitWords(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			continue
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
