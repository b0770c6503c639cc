// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match ranks catalog courses against a single learning topic.
// The mapping is pure and deterministic: keyword hits against course
// titles, catalog insertion order as the tie-break.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/skillpath/internal/catalog"
	"github.com/pdiddy/skillpath/pkg/types"
)

// DefaultMaxCourses is the per-topic recommendation cap across all
// platforms combined.
const DefaultMaxCourses = 2

// minTokenLen is the shortest keyword considered during scoring. Tokens
// at or below this length are connector noise ("to", "a", "of").
const minTokenLen = 2

// Tokenize lowercases the topic, splits on whitespace, and discards
// tokens of length minTokenLen or shorter. An empty topic yields nil.
func Tokenize(topic string) []string {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(topic)) {
		if len(t) > minTokenLen {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Score counts the distinct tokens found as substrings of the lowercased
// title. Repeated occurrences of one token count once.
func Score(title string, tokens []string) int {
	lower := strings.ToLower(title)
	score := 0
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			score++
		}
	}
	return score
}

// Rank maps one topic to at most k recommendations drawn from the whole
// store. Courses with no keyword hits are absent from the result, not
// ranked last. Equal scores keep catalog insertion order. A k of zero or
// less uses DefaultMaxCourses.
func Rank(topic string, store *catalog.Store, k int) []types.CourseMatch {
	if k <= 0 {
		k = DefaultMaxCourses
	}

	tokens := Tokenize(topic)
	if len(tokens) == 0 {
		return nil
	}

	var matches []types.CourseMatch
	for _, course := range store.All() {
		score := Score(course.Title, tokens)
		if score == 0 {
			continue
		}
		matches = append(matches, types.CourseMatch{
			Score:       score,
			Platform:    course.Platform,
			CourseTitle: course.Title,
			Reason:      reason(topic, course.Platform),
			CourseURL:   course.URL,
		})
	}

	// Stable sort preserves insertion order among equal scores; there is
	// deliberately no secondary sort key.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// reason builds the human-readable rationale attached to a match.
func reason(topic string, p types.Platform) string {
	return fmt.Sprintf("Matches your %q step with a %s course", topic, platformName(p))
}

func platformName(p types.Platform) string {
	switch p {
	case types.PlatformUdemy:
		return "Udemy"
	case types.PlatformCoursera:
		return "Coursera"
	default:
		return string(p)
	}
}
