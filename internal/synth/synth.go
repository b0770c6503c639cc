// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth coordinates path synthesis: validate the goal input,
// obtain an ordered topic list from the generative service, rank catalog
// courses per topic, and assemble the learning path.
package synth

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/skillpath/internal/catalog"
	"github.com/pdiddy/skillpath/internal/genai"
	"github.com/pdiddy/skillpath/internal/match"
	"github.com/pdiddy/skillpath/pkg/types"
)

// ValidationError reports goal-input fields that were missing or empty.
// It is returned before any generative call is attempted.
type ValidationError struct {
	// Fields lists the offending fields by their wire names.
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("goal input is missing required fields: %s", strings.Join(e.Fields, ", "))
}

// validate reports field names by json tag so ValidationError speaks the
// caller's vocabulary.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Synthesizer is the top-level coordinator. The catalog store is shared
// read-only across requests; the generator is stateless.
type Synthesizer struct {
	Gen     genai.Generator
	Catalog *catalog.Store

	// MaxCourses caps recommendations per topic across all platforms.
	// Zero means match.DefaultMaxCourses.
	MaxCourses int
}

// Synthesize builds a learning path for the given goal input. The four
// input fields are checked first (fail fast, no wasted quota); adapter
// failures abort the whole request since there is no partial topic list
// to work from. Ranking itself cannot fail, so once topics arrive the
// assembly always succeeds.
func (s *Synthesizer) Synthesize(ctx context.Context, input types.GoalInput) (*types.LearningPath, error) {
	if err := validate.Struct(input); err != nil {
		ve := &ValidationError{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				ve.Fields = append(ve.Fields, fe.Field())
			}
		}
		return nil, ve
	}

	prompt, err := renderPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("rendering synthesis prompt: %w", err)
	}

	var topics types.TopicList
	if err := s.Gen.Generate(ctx, prompt, &topics); err != nil {
		return nil, err
	}
	if len(topics.LearningTopics) == 0 {
		return nil, &genai.ShapeError{Reason: `payload is missing the "learning_topics" sequence`}
	}

	// Per-topic ranking is pure and reads a frozen store, so the fan-out
	// needs no error channel: each goroutine writes its own slot.
	steps := make([]types.PathStep, len(topics.LearningTopics))
	var wg sync.WaitGroup
	for i, topic := range topics.LearningTopics {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()
			steps[i] = types.PathStep{
				Step:    i + 1,
				Topic:   topic,
				Courses: match.Rank(topic, s.Catalog, s.MaxCourses),
			}
		}(i, topic)
	}
	wg.Wait()

	return &types.LearningPath{RecommendedCourses: steps}, nil
}
