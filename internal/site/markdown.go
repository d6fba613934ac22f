package site

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is omitted by goldmark's default renderer.
var md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

// Markdown renders admin-entered text. On a conversion error the text is
// returned escaped.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
