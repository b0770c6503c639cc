// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds settings for the generative service boundary.
type AIConfig struct {
	// Model is the generative model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the service credential. Its absence is a configuration
	// failure, checked before any network attempt.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the HTTP request timeout for generative calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig holds settings for the catalog store.
type CatalogConfig struct {
	// UdemyPath is the Udemy catalog CSV. A missing file degrades to an
	// empty collection, not an error.
	UdemyPath string `json:"udemy_path" yaml:"udemy_path"`

	// CourseraPath is the Coursera catalog CSV.
	CourseraPath string `json:"coursera_path" yaml:"coursera_path"`

	// IndexPath is the SQLite FTS index location used by catalog search.
	IndexPath string `json:"index_path" yaml:"index_path"`
}

// SynthesisConfig holds settings for path synthesis.
type SynthesisConfig struct {
	// MaxCourses is the number of recommendations kept per topic across
	// all platforms combined (default 2).
	MaxCourses int `json:"max_courses" yaml:"max_courses"`

	// Retries is the caller-side retry count for the generative call.
	// Zero means a single attempt.
	Retries int `json:"retries" yaml:"retries"`
}

// Config groups all stage configurations.
type Config struct {
	AI        AIConfig        `json:"ai" yaml:"ai"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Synthesis SynthesisConfig `json:"synthesis" yaml:"synthesis"`
}
