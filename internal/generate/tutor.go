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

var tutorPromptTmpl = template.Must(template.New("tutor").Parse(`Act as a friendly and encouraging expert tutor. A user working through a learning path is stuck on the topic "{{.Topic}}".

Provide:
- "analogy": a simple real-world analogy for the core concept
- "technical_definition": a concise, technically accurate definition; include a short commented code snippet when the topic involves code
- "prerequisites": one to three prerequisite concepts worth reviewing first

Respond with a single JSON object and nothing else, in this exact shape:
{"analogy": "...", "technical_definition": "...", "prerequisites": ["...", "..."]}
`))

// ExplainTopic asks the generative service to explain a topic the user
// is stuck on.
func ExplainTopic(ctx context.Context, gen genai.Generator, topic string) (*types.TutorExplanation, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is empty: provide the topic to explain")
	}

	prompt, err := render(tutorPromptTmpl, struct{ Topic string }{Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("rendering tutor prompt: %w", err)
	}

	var explanation types.TutorExplanation
	if err := gen.Generate(ctx, prompt, &explanation); err != nil {
		return nil, err
	}
	if explanation.TechnicalDefinition == "" && explanation.Analogy == "" {
		return nil, &genai.ShapeError{Reason: "payload carries no explanation"}
	}
	return &explanation, nil
}
