// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the skillpath engine:
// catalog course records, goal input, and the assembled learning path.
package types

// Platform identifies the source catalog a course was loaded from.
type Platform string

const (
	PlatformUdemy    Platform = "udemy"
	PlatformCoursera Platform = "coursera"
)

// CourseRecord is one validated row from a platform catalog. A record is
// admitted only when its title and identifying field (URL or course ID)
// are non-empty; everything else from the source row is kept in Raw.
type CourseRecord struct {
	// Platform is the catalog the record came from.
	Platform Platform `json:"platform" yaml:"platform"`

	// Title is the course title as it appears in the catalog.
	Title string `json:"title" yaml:"title"`

	// URL is the course deep link. For catalogs without an explicit URL
	// column it is derived from the title slug at load time.
	URL string `json:"url" yaml:"url"`

	// Raw holds every source column keyed by lowercased header name.
	Raw map[string]string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// GoalInput is the caller-supplied profile a learning path is built from.
// All four fields are required; validation happens before any generative
// call is attempted.
type GoalInput struct {
	// CurrentSkills describes what the user already knows.
	CurrentSkills string `json:"current_skills" yaml:"current_skills" validate:"required"`

	// Goal is the target role or skill set.
	Goal string `json:"goal" yaml:"goal" validate:"required"`

	// Experience is the user's stated proficiency (e.g. "beginner").
	Experience string `json:"experience" yaml:"experience" validate:"required"`

	// LearningStyle is the preferred way of learning (e.g. "video-first").
	LearningStyle string `json:"learning_style" yaml:"learning_style" validate:"required"`
}

// CourseMatch is one catalog course recommended for a topic. Score counts
// distinct topic keywords found in the course title; ties between equal
// scores keep catalog insertion order.
type CourseMatch struct {
	// Score is the number of distinct topic keywords hit in the title.
	Score int `json:"score" yaml:"score"`

	// Platform is the recommending catalog.
	Platform Platform `json:"platform" yaml:"platform"`

	// CourseTitle is the matched course's title.
	CourseTitle string `json:"course_title" yaml:"course_title"`

	// Reason explains the match in terms of the topic and platform.
	Reason string `json:"reason" yaml:"reason"`

	// CourseURL is the course deep link.
	CourseURL string `json:"course_url" yaml:"course_url"`
}

// PathStep is one ordered unit of a learning path: a generated topic plus
// its catalog recommendations.
type PathStep struct {
	// Step is the 1-based position in the path.
	Step int `json:"step" yaml:"step"`

	// Topic names the unit of study, as returned by the generative service.
	Topic string `json:"topic" yaml:"topic"`

	// Courses lists up to MaxCourses recommendations, best score first.
	Courses []CourseMatch `json:"courses" yaml:"courses"`
}

// LearningPath is the full synthesized path. It is built per request and
// never persisted by this engine.
type LearningPath struct {
	// RecommendedCourses lists the path steps in generation order.
	RecommendedCourses []PathStep `json:"recommendedCourses" yaml:"recommended_courses"`
}
