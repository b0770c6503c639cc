// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genai wraps the Gemini generateContent API behind a schema
// contract: send a prompt, get the response decoded into the requested
// shape, or fail with exactly one of the typed error kinds. Every call
// is stateless and the adapter never retries.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CredentialKey is the secrets-file name (and, uppercased with
// underscores, the env var) holding the Gemini API key.
const CredentialKey = "gemini-api-key"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// geminiAPIBase is the generateContent endpoint prefix. Declared as a
// var so tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models/"

// Generator turns a domain prompt into a structured value. shape must be
// a pointer to the struct describing the expected response payload.
// Implementations fail with *ConfigError, *TransportError, or
// *ShapeError and nothing else.
type Generator interface {
	Generate(ctx context.Context, prompt string, shape any) error
}

// Client calls the Gemini API. The zero value is unusable: a Client
// needs at least an APIKey.
type Client struct {
	APIKey string
	Model  string
	HTTP   *http.Client
}

// Gemini generateContent JSON structures.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	ResponseMIMEType string `json:"response_mime_type"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and decodes the model's JSON payload into
// shape. The credential check happens before any network attempt.
func (c *Client) Generate(ctx context.Context, prompt string, shape any) error {
	if c.APIKey == "" {
		return &ConfigError{Key: CredentialKey}
	}

	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{ResponseMIMEType: "application/json"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := geminiAPIBase + model + ":generateContent?key=" + c.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading Gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var gResp geminiResponse
	if err := json.Unmarshal(raw, &gResp); err != nil {
		return &ShapeError{Reason: "response envelope is not valid JSON", Raw: string(raw)}
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return &ShapeError{Reason: "response envelope carries no content", Raw: string(raw)}
	}

	payload := stripFences(gResp.Candidates[0].Content.Parts[0].Text)
	if payload == "" {
		return &ShapeError{Reason: "structured payload is absent from the response", Raw: string(raw)}
	}

	if err := json.Unmarshal([]byte(payload), shape); err != nil {
		return &ShapeError{Reason: fmt.Sprintf("payload does not decode into the requested shape: %v", err), Raw: payload}
	}
	return nil
}

// stripFences removes a surrounding markdown code fence, which the model
// emits despite the JSON mime-type request. If the remainder still is
// not bare JSON, the outermost braced region is kept as a fallback.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return ""
}
