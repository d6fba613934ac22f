package formbuilder

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NoticeRequired is shown when a submission is refused for missing values.
const NoticeRequired = "Please fill all required fields"

var (
	ErrRequired = errors.New("required field missing")
	ErrReadOnly = errors.New("form is read only")
)

// RequiredError lists the required fields that were left empty.
type RequiredError struct {
	Fields []string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequired, strings.Join(e.Fields, ", "))
}

func (e *RequiredError) Unwrap() error { return ErrRequired }

// Values is a draft keyed by field name.
type Values map[string]string

// SubmitFunc persists a draft. editID is empty when creating.
type SubmitFunc func(ctx context.Context, values Values, editID string) error

// DeleteFunc removes the item with the given id.
type DeleteFunc func(ctx context.Context, id string) error

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type Option func(*Builder)

// WithDelete enables deletion; prompt is shown to the Confirmer.
func WithDelete(fn DeleteFunc, prompt string) Option {
	return func(b *Builder) {
		b.del = fn
		b.deletePrompt = prompt
	}
}

// EditorMode edits a single item instead of managing a list.
func EditorMode() Option {
	return func(b *Builder) { b.editorMode = true }
}

// ReadOnly hides the add and edit surfaces; items can still be viewed and deleted.
func ReadOnly() Option {
	return func(b *Builder) { b.readOnly = true }
}

// WithAction sets the base path used for links and form posts when rendering.
func WithAction(path string) Option {
	return func(b *Builder) { b.action = strings.TrimRight(path, "/") }
}

// Builder holds the descriptor table, the caller's callbacks and the
// transient draft state of one form.
type Builder struct {
	title        string
	fields       []Field
	submit       SubmitFunc
	del          DeleteFunc
	deletePrompt string
	editorMode   bool
	readOnly     bool
	action       string

	draft    Values
	editID   string
	open     bool
	expanded string
	notice   string
}

func New(title string, fields []Field, submit SubmitFunc, opts ...Option) *Builder {
	b := &Builder{title: title, submit: submit}
	for _, opt := range opts {
		opt(b)
	}
	b.SetFields(fields)
	return b
}

func (b *Builder) Title() string    { return b.title }
func (b *Builder) EditorMode() bool { return b.editorMode }
func (b *Builder) ReadOnly() bool   { return b.readOnly || b.submit == nil }
func (b *Builder) IsOpen() bool     { return b.open }
func (b *Builder) EditID() string   { return b.editID }
func (b *Builder) Expanded() string { return b.expanded }
func (b *Builder) Notice() string   { return b.notice }

func (b *Builder) SetNotice(msg string) { b.notice = msg }

func (b *Builder) Fields() []Field {
	out := make([]Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// SetFields replaces the descriptor table and resets all transient state.
func (b *Builder) SetFields(fields []Field) {
	b.fields = make([]Field, len(fields))
	copy(b.fields, fields)
	b.draft = b.blank()
	b.editID = ""
	b.open = false
	b.expanded = ""
	b.notice = ""
}

// Draft returns a copy of the current values.
func (b *Builder) Draft() Values {
	out := make(Values, len(b.draft))
	for k, v := range b.draft {
		out[k] = v
	}
	return out
}

func (b *Builder) blank() Values {
	v := make(Values, len(b.fields))
	for _, f := range b.fields {
		v[f.Name] = ""
	}
	return v
}

func (b *Builder) has(name string) bool {
	for _, f := range b.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// OpenNew opens an empty form for a new item.
func (b *Builder) OpenNew() {
	b.draft = b.blank()
	b.editID = ""
	b.open = true
}

// OpenEdit opens the form pre-populated with the item's current values.
func (b *Builder) OpenEdit(item Record) {
	d := b.blank()
	for _, f := range b.fields {
		d[f.Name] = item.Text(f.Name)
	}
	b.draft = d
	b.editID = item.ID
	b.open = true
}

func (b *Builder) Cancel() {
	b.open = false
	b.editID = ""
}

// Set updates one draft value. Unknown names are ignored.
func (b *Builder) Set(name, value string) bool {
	if !b.has(name) {
		return false
	}
	b.draft[name] = value
	return true
}

// Bind copies every descriptor's value from a submitted form. Absent fields
// become empty.
func (b *Builder) Bind(form url.Values) {
	for _, f := range b.fields {
		b.draft[f.Name] = form.Get(f.Name)
	}
}

// Missing lists required fields whose draft value is blank.
func (b *Builder) Missing() []string {
	var missing []string
	for _, f := range b.fields {
		if f.Required && strings.TrimSpace(b.draft[f.Name]) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Submit validates the draft and hands it to the submit callback. On success
// the draft is cleared and the form closed; on failure the draft is kept and
// the error returned for the caller to surface.
func (b *Builder) Submit(ctx context.Context) error {
	if b.ReadOnly() {
		return ErrReadOnly
	}
	if missing := b.Missing(); len(missing) > 0 {
		b.notice = NoticeRequired
		return &RequiredError{Fields: missing}
	}
	if err := b.submit(ctx, b.Draft(), b.editID); err != nil {
		return err
	}
	b.draft = b.blank()
	b.editID = ""
	b.open = false
	b.notice = ""
	return nil
}

// Delete asks c for confirmation before calling the delete callback. It
// reports whether the item was deleted.
func (b *Builder) Delete(ctx context.Context, id string, c Confirmer) (bool, error) {
	if b.del == nil {
		return false, ErrReadOnly
	}
	if c == nil || !c.Confirm(b.DeletePrompt()) {
		return false, nil
	}
	if err := b.del(ctx, id); err != nil {
		return false, err
	}
	if b.expanded == id {
		b.expanded = ""
	}
	if b.editID == id {
		b.Cancel()
	}
	return true, nil
}

func (b *Builder) CanDelete() bool { return b.del != nil }

func (b *Builder) DeletePrompt() string {
	if b.deletePrompt != "" {
		return b.deletePrompt
	}
	return fmt.Sprintf("Delete this %s?", lower(b.title))
}

// Expand selects an item for the detail view.
func (b *Builder) Expand(item Record) { b.expanded = item.ID }

func (b *Builder) Collapse() { b.expanded = "" }
