package llmhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"
	"github.com/sashabaranov/go-openai"

	"github.com/hardgate/scanengine/internal/model"
)

// OpenAIProvider enhances gate findings through an OpenAI-compatible chat
// completion, mirroring the request shape of qlp-hq-QLP's AzureOpenAIClient.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: model}
}

func (p *OpenAIProvider) Enhance(ctx context.Context, gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) (EnhancementResult, error) {
	prompt := buildPrompt(gate, language, technologies, matches, baseRecommendations)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You review static-analysis findings for a single hard gate and suggest sharper recommendations. Respond with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   600,
		Temperature: 0.2,
	})
	if err != nil {
		return EnhancementResult{}, fmt.Errorf("openai enhancement failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return EnhancementResult{}, fmt.Errorf("openai returned no choices")
	}

	return parseEnhancement(resp.Choices[0].Message.Content)
}

// GroqProvider is a second concrete provider behind the same contract,
// giving the fallback chain a fast alternative when OpenAI is unavailable.
type GroqProvider struct {
	client *groq.Client
}

func NewGroqProvider(apiKey string) (*GroqProvider, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("groq client: %w", err)
	}
	return &GroqProvider{client: client}, nil
}

func (g *GroqProvider) Enhance(ctx context.Context, gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) (EnhancementResult, error) {
	prompt := buildPrompt(gate, language, technologies, matches, baseRecommendations)

	resp, err := g.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: groq.ModelLlama38B8192,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleUser, Content: "You review static-analysis findings for a single hard gate and suggest sharper recommendations. Respond with JSON only.\n\n" + prompt},
		},
	})
	if err != nil {
		return EnhancementResult{}, fmt.Errorf("groq enhancement failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return EnhancementResult{}, fmt.Errorf("groq returned no choices")
	}

	return parseEnhancement(resp.Choices[0].Message.Content)
}

// Fallback tries each hook in order, returning the first successful result,
// adapted from qlp-hq-QLP's internal/llm.FallbackClient.
type Fallback struct {
	hooks []Hook
}

func NewFallback(hooks ...Hook) *Fallback {
	return &Fallback{hooks: hooks}
}

func (f *Fallback) Enhance(ctx context.Context, gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) (EnhancementResult, error) {
	var lastErr error
	for _, h := range f.hooks {
		res, err := h.Enhance(ctx, gate, language, technologies, matches, baseRecommendations)
		if err == nil {
			return res, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return EnhancementResult{}, nil
	}
	return EnhancementResult{}, lastErr
}

func buildPrompt(gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gate=%s language=%s matches=%d\n", gate, language, len(matches))
	fmt.Fprintf(&sb, "technologies=%v\n", technologies)
	fmt.Fprintf(&sb, "base_recommendations=%v\n", baseRecommendations)
	sb.WriteString("Return JSON: {\"quality_score\":0-100,\"recommendations\":[...],\"details\":[...],\"security_insights\":[...],\"technology_insights\":[...]}")
	return sb.String()
}

type enhancementPayload struct {
	QualityScore        *float64 `json:"quality_score"`
	Recommendations     []string `json:"recommendations"`
	Details             []string `json:"details"`
	SecurityInsights    []string `json:"security_insights"`
	TechnologyInsights  []string `json:"technology_insights"`
}

func parseEnhancement(content string) (EnhancementResult, error) {
	var payload enhancementPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return EnhancementResult{}, fmt.Errorf("parse enhancement response: %w", err)
	}
	return EnhancementResult{
		EnhancedQualityScore: payload.QualityScore,
		Recommendations:      payload.Recommendations,
		ExtraDetails:         payload.Details,
		SecurityInsights:     payload.SecurityInsights,
		TechnologyInsights:   payload.TechnologyInsights,
	}, nil
}
