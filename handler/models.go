package handler

import (
	"context"
	"encoding/json"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateRequest represents the expected JSON structure in the request body.
// Fields stay raw so a non-string type still reads as a story.
type GenerateRequest struct {
	Prompt json.RawMessage `json:"prompt"`
	Type   json.RawMessage `json:"type"`
}

// stringField returns the value of a JSON string, or "" for anything else.
func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

const (
	TypePoem  = "poem"
	TypeStory = "story"
)

const (
	poemTemplate  = "Write a short, beautiful poem about: "
	storyTemplate = "Write an engaging short story about: "
)

const errNoPrompt = "No prompt provided"

// contentType maps the requested type onto poem or story. Anything that is not
// "poem" is a story.
func contentType(requested string) string {
	if requested == TypePoem {
		return TypePoem
	}
	return TypeStory
}

// promptText fills the template for the given content type.
func promptText(kind, prompt string) string {
	if kind == TypePoem {
		return poemTemplate + prompt
	}
	return storyTemplate + prompt
}
