package llmprovider

import (
	"context"

	"mom-planner/pkg/gemini"
)

type geminiClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts the pkg/gemini REST client to the Provider interface
type GeminiAdapter struct {
	client geminiClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client geminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	geminiReq := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: req.Prompt}}},
		},
	}
	if req.Temperature != nil || req.MaxTokens > 0 || req.ResponseMIMEType != "" || req.ResponseSchema != nil {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:      req.Temperature,
			MaxOutputTokens:  req.MaxTokens,
			ResponseMIMEType: req.ResponseMIMEType,
			ResponseSchema:   req.ResponseSchema,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, wrapError(ctx, a.Name(), err)
	}
	text, err := resp.Text()
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	out := &Response{
		Parts:        []string{text},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  u.PromptTokenCount,
			OutputTokens: u.CandidatesTokenCount,
			TotalTokens:  u.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
