// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TopicList is the response shape requested from the generative service
// during path synthesis: an ordered sequence of topic strings under a
// fixed key.
type TopicList struct {
	LearningTopics []string `json:"learning_topics" yaml:"learning_topics"`
}

// ProjectSuggestion is the response shape for the project generator.
type ProjectSuggestion struct {
	ProjectTitle string   `json:"project_title" yaml:"project_title"`
	Description  string   `json:"description" yaml:"description"`
	KeyFeatures  []string `json:"key_features" yaml:"key_features"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// QuizQuestion is one multiple-choice question. Options carries four
// choices; CorrectAnswer repeats the right option verbatim.
type QuizQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
}

// Quiz is the response shape for the quiz generator.
type Quiz struct {
	Questions []QuizQuestion `json:"questions" yaml:"questions"`
}

// ResourceSet is the response shape for the curated-resource lookup.
type ResourceSet struct {
	YouTubeTutorials []string `json:"youtube_tutorials" yaml:"youtube_tutorials"`
	Articles         []string `json:"articles" yaml:"articles"`
	GoogleCodelab    string   `json:"google_codelab" yaml:"google_codelab"`
}

// TutorExplanation is the response shape for the tutor generator: an
// intuitive analogy, a precise definition, and the concepts to review
// first.
type TutorExplanation struct {
	Analogy             string   `json:"analogy" yaml:"analogy"`
	TechnicalDefinition string   `json:"technical_definition" yaml:"technical_definition"`
	Prerequisites       []string `json:"prerequisites" yaml:"prerequisites"`
}
