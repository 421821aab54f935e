package llmprovider

import (
	"context"
	"strings"

	"mom-planner/pkg/gemini"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "genai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized single-turn generation request
type Request struct {
	Prompt           string
	Temperature      *float64
	MaxTokens        int
	ResponseMIMEType string
	ResponseSchema   *gemini.Schema
}

// Response represents a normalized LLM generation response
type Response struct {
	Parts        []string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the response parts.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.Join(r.Parts, "")
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
