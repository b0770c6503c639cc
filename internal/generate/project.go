// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/skillpath/internal/genai"
	"github.com/pdiddy/skillpath/pkg/types"
)

var projectPromptTmpl = template.Must(template.New("project").Parse(`Act as a senior engineer mentoring a learner. Suggest one portfolio project that exercises these skills: {{.Skills}}.

The project should be achievable by a dedicated learner in two to four weeks and should demonstrate the skills to a prospective employer.

Respond with a single JSON object and nothing else, in this exact shape:
{"project_title": "...", "description": "...", "key_features": ["...", "..."], "technologies": ["...", "..."]}
`))

// SuggestProject asks the generative service for one portfolio project
// exercising the given skills.
func SuggestProject(ctx context.Context, gen genai.Generator, skills string) (*types.ProjectSuggestion, error) {
	if strings.TrimSpace(skills) == "" {
		return nil, fmt.Errorf("skills are empty: provide the skills the project should exercise")
	}

	prompt, err := render(projectPromptTmpl, struct{ Skills string }{Skills: skills})
	if err != nil {
		return nil, fmt.Errorf("rendering project prompt: %w", err)
	}

	var suggestion types.ProjectSuggestion
	if err := gen.Generate(ctx, prompt, &suggestion); err != nil {
		return nil, err
	}
	if suggestion.ProjectTitle == "" {
		return nil, &genai.ShapeError{Reason: `payload is missing "project_title"`}
	}
	return &suggestion, nil
}
