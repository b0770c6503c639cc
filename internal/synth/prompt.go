// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/skillpath/pkg/types"
)

// synthesisPromptTmpl is the single generation prompt for path
// synthesis. It embeds all four goal-input fields and constrains the
// response to an ordered list of topic strings under a fixed key.
var synthesisPromptTmpl = template.Must(template.New("synthesis").Parse(`Act as an expert learning advisor. A user wants a personalized, step-by-step learning path.

User profile:
- Current skills: {{.CurrentSkills}}
- Goal: {{.Goal}}
- Experience level: {{.Experience}}
- Preferred learning style: {{.LearningStyle}}

Produce an ordered sequence of 5 to 8 short topic names that takes the user from their current skills to their goal. Each topic is one unit of study; earlier topics must be prerequisites of later ones.

Respond with a single JSON object and nothing else, in this exact shape:
{"learning_topics": ["topic 1", "topic 2", "topic 3"]}
`))

// renderPrompt executes the synthesis prompt template for one goal input.
func renderPrompt(input types.GoalInput) (string, error) {
	var buf bytes.Buffer
	if err := synthesisPromptTmpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
