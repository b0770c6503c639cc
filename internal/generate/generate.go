// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate holds the auxiliary generators: project suggestion,
// quiz, curated-resource lookup, and tutor explanation. Each follows the
// same pattern as path synthesis — validate input, render a prompt, call
// the adapter with a fixed response shape — and returns the structured
// result verbatim or propagates the adapter's typed failure. No catalog
// ranking applies here.
package generate

import (
	"bytes"
	"text/template"
)

// render executes one of the package's prompt templates.
func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
