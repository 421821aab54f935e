package llmprovider

import (
	"context"

	"google.golang.org/genai"

	"mom-planner/pkg/gemini"
)

// GenAIAdapter adapts the official google.golang.org/genai SDK to the Provider interface
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter creates a new SDK-backed adapter
func NewGenAIAdapter(client *genai.Client, model string) *GenAIAdapter {
	if model == "" {
		model = gemini.DefaultModel
	}
	return &GenAIAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   toGenAISchema(req.ResponseSchema),
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, wrapError(ctx, a.Name(), err)
	}

	text := resp.Text()
	if text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}

	out := &Response{
		Parts:        []string{text},
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "genai"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}

func toGenAISchema(s *gemini.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genai.Type(s.Type),
		Description:      s.Description,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrdering,
		Items:            toGenAISchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toGenAISchema(v)
		}
	}
	return out
}
