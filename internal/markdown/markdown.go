// Package markdown renders untrusted markdown (community pick notes) into
// sanitized HTML safe for direct template injection.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
	)
	policy = bluemonday.UGCPolicy()
)

// Render converts src to sanitized HTML. Pick notes come from an external
// document, so everything the sanitizer does not allow is dropped.
func Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
