// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/skillpath/pkg/types"
)

// FormatTable writes the learning path as a human-readable outline to w.
func FormatTable(path *types.LearningPath, w io.Writer) {
	if len(path.RecommendedCourses) == 0 {
		fmt.Fprintln(w, "No learning path steps.")
		return
	}

	for _, step := range path.RecommendedCourses {
		fmt.Fprintf(w, "%d. %s\n", step.Step, step.Topic)
		if len(step.Courses) == 0 {
			fmt.Fprintln(w, "     (no catalog matches)")
			continue
		}
		for _, c := range step.Courses {
			title := c.CourseTitle
			if len(title) > 70 {
				title = title[:67] + "..."
			}
			fmt.Fprintf(w, "     [%s, score %d] %s\n", c.Platform, c.Score, title)
			fmt.Fprintf(w, "       %s\n", c.CourseURL)
		}
	}

	fmt.Fprintf(w, "\n%d steps\n", len(path.RecommendedCourses))
}

// FormatJSON writes the learning path as indented JSON to w.
func FormatJSON(path *types.LearningPath, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(path)
}
