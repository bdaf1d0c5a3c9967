package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model used for phrase segmentation when none is
// configured. Segmentation is a simple extraction task; the lite tier is
// enough.
const DefaultGeminiModel = "gemini-2.0-flash-lite"

const segmentPrompt = `Extract the noun phrases from the following resume text.
Return ONLY a JSON array of strings, one entry per noun phrase, in the order
they appear in the text. Do not include verbs, full sentences, or commentary.

Text:
`

// GeminiSegmenter segments text into noun phrases with the Gemini API.
// The client is created once and reused; calls are stateless.
type GeminiSegmenter struct {
	client *genai.Client
	model  string
}

// NewGeminiSegmenter creates a segmenter backed by the Gemini API.
func NewGeminiSegmenter(ctx context.Context, apiKey, model string) (*GeminiSegmenter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSegmenter{client: client, model: model}, nil
}

// Segment asks the model for the noun phrases in text. Temperature is pinned
// to 0 so a fixed input produces a stable phrase list.
func (s *GeminiSegmenter) Segment(ctx context.Context, text string) ([]string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(segmentPrompt+text))
	if err != nil {
		return nil, &SegmentationError{Message: "Gemini request failed", Cause: err}
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, &SegmentationError{Message: "empty Gemini response", Cause: err}
	}

	var phrases []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &phrases); err != nil {
		return nil, &SegmentationError{
			Message: fmt.Sprintf("failed to parse phrase list (content: %s)", raw),
			Cause:   err,
		}
	}

	return phrases, nil
}

// Model returns the configured Gemini model name.
func (s *GeminiSegmenter) Model() string {
	return s.model
}

// Close releases the underlying API client.
func (s *GeminiSegmenter) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
