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

var resourcesPromptTmpl = template.Must(template.New("resources").Parse(`Act as a curator of free learning material. For the topic "{{.Topic}}", recommend:
- two or three YouTube tutorials (search-friendly titles, not URLs)
- two or three written articles or docs pages (titles)
- one Google Codelab, if a relevant one exists (title, or an empty string)

Respond with a single JSON object and nothing else, in this exact shape:
{"youtube_tutorials": ["...", "..."], "articles": ["...", "..."], "google_codelab": "..."}
`))

// FindResources asks the generative service for curated free resources
// on one topic.
func FindResources(ctx context.Context, gen genai.Generator, topic string) (*types.ResourceSet, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is empty: provide the topic to find resources for")
	}

	prompt, err := render(resourcesPromptTmpl, struct{ Topic string }{Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("rendering resources prompt: %w", err)
	}

	var resources types.ResourceSet
	if err := gen.Generate(ctx, prompt, &resources); err != nil {
		return nil, err
	}
	if len(resources.YouTubeTutorials) == 0 && len(resources.Articles) == 0 && resources.GoogleCodelab == "" {
		return nil, &genai.ShapeError{Reason: "payload carries no resources"}
	}
	return &resources, nil
}
