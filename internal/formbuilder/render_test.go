package formbuilder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleProject struct {
	ID    string   `json:"_id"`
	Title string   `json:"title"`
	Image string   `json:"image"`
	Tags  []string `json:"tags"`
}

func render(t *testing.T, b *Builder, items []Record) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, b.Render(&sb, items))
	return sb.String()
}

func TestRecordOf(t *testing.T) {
	rec, err := RecordOf(sampleProject{ID: "p-1", Title: "Alumni", Tags: []string{"React", "MySQL"}})
	require.NoError(t, err)

	assert.Equal(t, "p-1", rec.ID)
	assert.Equal(t, "Alumni", rec.Text("title"))
	assert.Equal(t, "React, MySQL", rec.Text("tags"))
	assert.Equal(t, []string{"React", "MySQL"}, rec.List("tags"))
	assert.Equal(t, "", rec.Text("missing"))
}

func TestRecordOfNumericID(t *testing.T) {
	rec, err := RecordOf(map[string]any{"_id": 7, "name": "Go"})
	require.NoError(t, err)
	assert.Equal(t, "7", rec.ID)
}

func TestRecordOfRejectsNonObject(t *testing.T) {
	_, err := RecordOf([]string{"a"})
	assert.Error(t, err)
}

func TestRecordsOf(t *testing.T) {
	recs, err := RecordsOf([]sampleProject{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1].ID)
}

func TestRenderClosedListsItems(t *testing.T) {
	b := New("Project", projectFields, (&recorder{}).submit, WithAction("/admin/projects/"),
		WithDelete(func(_ context.Context, _ string) error { return nil }, ""))
	items, err := RecordsOf([]sampleProject{{ID: "p-1", Title: "Chatbot", Image: "https://img.example/a.png", Tags: []string{"Go", "gin"}}})
	require.NoError(t, err)

	html := render(t, b, items)

	assert.Contains(t, html, "+ Add Project")
	assert.Contains(t, html, `href="/admin/projects?new=1"`)
	assert.Contains(t, html, "Chatbot")
	assert.Contains(t, html, `<span class="tag">Go</span>`)
	assert.Contains(t, html, `class="item-image-preview"`)
	assert.Contains(t, html, `href="/admin/projects?edit=p-1"`)
	assert.Contains(t, html, `href="/admin/projects/p-1/delete"`)
	assert.NotContains(t, html, "<form")
}

func TestRenderEmptyList(t *testing.T) {
	b := New("Skill", []Field{{Name: "name", Required: true}}, (&recorder{}).submit)
	assert.Contains(t, render(t, b, nil), "No skill added yet")
}

func TestRenderOpenForm(t *testing.T) {
	b := New("Project", projectFields, (&recorder{}).submit, WithAction("/admin/projects"))
	b.OpenNew()
	b.Set("image", "https://img.example/b.png")

	html := render(t, b, nil)

	assert.Contains(t, html, `action="/admin/projects/save"`)
	assert.Contains(t, html, `name="title"`)
	assert.Contains(t, html, `<textarea id="field-description" name="description"`)
	assert.Contains(t, html, `rows="4"`)
	assert.Contains(t, html, `type="url" name="image"`)
	assert.Contains(t, html, `id="preview-image"`)
	assert.Contains(t, html, "https://via.placeholder.com/150?text=Invalid+URL")
	assert.Contains(t, html, "Separate with commas")
	assert.Contains(t, html, ">Add</button>")
	assert.NotContains(t, html, `name="edit_id"`)
}

func TestRenderEditFormCarriesID(t *testing.T) {
	b := New("Project", projectFields, (&recorder{}).submit, WithAction("/admin/projects"))
	b.OpenEdit(Record{ID: "p-9", Fields: map[string]any{"title": "Old <b>title</b>"}})

	html := render(t, b, nil)

	assert.Contains(t, html, `name="edit_id" value="p-9"`)
	assert.Contains(t, html, ">Update</button>")
	assert.Contains(t, html, "Old &lt;b&gt;title&lt;/b&gt;")
}

func TestRenderExpandedModal(t *testing.T) {
	b := New("Skill", []Field{{Name: "name", Label: "Skill Name"}, {Name: "icon", Type: KindIcon}}, (&recorder{}).submit, WithAction("/admin/skills"))
	items := []Record{{ID: "s-1", Fields: map[string]any{"name": "Go", "icon": "fab fa-golang"}}}
	b.Expand(items[0])

	html := render(t, b, items)

	assert.Contains(t, html, "Skill Details")
	assert.Contains(t, html, `<i class="fab fa-golang"></i>`)
}

func TestRenderEditorMode(t *testing.T) {
	fields := []Field{{Name: "text", Type: KindTextarea, Required: true, Rows: 6}}
	b := New("About", fields, (&recorder{}).submit, EditorMode(), WithAction("/admin/about"))

	assert.Contains(t, render(t, b, nil), "+ Add About")

	html := render(t, b, []Record{{ID: "1", Fields: map[string]any{"text": "bio"}}})
	assert.Contains(t, html, `href="/admin/about?edit=1"`)
	assert.Contains(t, html, "Edit About")
	assert.NotContains(t, html, "admin-list")
}

func TestRenderReadOnlyHidesEditing(t *testing.T) {
	b := New("Message", []Field{{Name: "name"}}, nil, ReadOnly(), WithAction("/admin/messages"),
		WithDelete(func(_ context.Context, _ string) error { return nil }, ""))
	html := render(t, b, []Record{{ID: "m-1", Fields: map[string]any{"name": "Ana"}}})

	assert.NotContains(t, html, "+ Add Message")
	assert.NotContains(t, html, "?edit=m-1")
	assert.Contains(t, html, `href="/admin/messages/m-1/delete"`)
}
