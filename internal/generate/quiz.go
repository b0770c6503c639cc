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

// DefaultQuizQuestions is used when the caller passes a count of zero.
const DefaultQuizQuestions = 5

var quizPromptTmpl = template.Must(template.New("quiz").Parse(`Act as an examiner. Write {{.Count}} multiple-choice questions testing practical understanding of "{{.Topic}}".

Every question must have exactly four options and exactly one correct answer. The "correct_answer" value must repeat the right option verbatim.

Respond with a single JSON object and nothing else, in this exact shape:
{"questions": [{"question": "...", "options": ["a", "b", "c", "d"], "correct_answer": "a"}]}
`))

// BuildQuiz asks the generative service for a multiple-choice quiz on
// one topic.
func BuildQuiz(ctx context.Context, gen genai.Generator, topic string, count int) (*types.Quiz, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is empty: provide the topic to quiz on")
	}
	if count <= 0 {
		count = DefaultQuizQuestions
	}

	prompt, err := render(quizPromptTmpl, struct {
		Topic string
		Count int
	}{Topic: topic, Count: count})
	if err != nil {
		return nil, fmt.Errorf("rendering quiz prompt: %w", err)
	}

	var quiz types.Quiz
	if err := gen.Generate(ctx, prompt, &quiz); err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, &genai.ShapeError{Reason: `payload is missing the "questions" sequence`}
	}
	return &quiz, nil
}
