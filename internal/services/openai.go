package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GagstyCommunity/Minutely.xyz/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is the one OpenAI call this service makes; tests substitute a
// fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIService drafts article/comparison/destination/challenge content via
// the chat completions API. Stateless, no retry, no streaming.
type OpenAIService struct {
	client chatCompleter
}

func NewOpenAIService(cfg *config.Config) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(cfg.OpenAIKey),
	}
}

// systemPromptFor picks the fixed instruction per content type. Unknown types
// fall back to the generic news-writer prompt.
func systemPromptFor(contentType string) string {
	switch contentType {
	case "article":
		return "You are an AI writer for a news platform focused on tech, products, travel, and finance. Write an engaging article with a natural human-like tone. Include some subtle imperfections for authenticity. Format with HTML headings and paragraphs."
	case "comparison":
		return "You are an AI product comparison expert. Create a balanced comparison of two products highlighting strengths and weaknesses of each. Be objective but incorporate a natural human tone. Include some subtle imperfections for authenticity."
	case "destination":
		return "You are an AI travel writer. Write an engaging description of a travel destination with local insights, highlights, and practical tips. Use a natural human-like tone with some subtle imperfections for authenticity."
	case "challenge":
		return "You are an AI quiz creator. Create engaging quiz questions about the topic with multiple choice answers. Mark the correct answer. Create questions of varying difficulty."
	default:
		return "You are an AI writer for a news platform. Write with a natural human-like tone and include some subtle imperfections for authenticity."
	}
}

// GenerateContent forwards the prompt with the type-specific system
// instruction and returns the generated text verbatim.
func (s *OpenAIService) GenerateContent(ctx context.Context, prompt, contentType string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPromptFor(contentType)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("could not generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// ContentAnalysis is the JSON shape the analyze prompt asks the model for.
type ContentAnalysis struct {
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	Sentiment string   `json:"sentiment"` // positive, neutral, negative
}

// AnalyzeContent summarizes a text with keywords and a sentiment tag using
// the JSON response mode.
func (s *OpenAIService) AnalyzeContent(ctx context.Context, text string) (*ContentAnalysis, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Analyze the provided text and return a JSON object with a brief summary, extracted keywords, and sentiment analysis (positive, neutral, or negative). Format as: { summary: string, keywords: string[], sentiment: 'positive' | 'neutral' | 'negative' }",
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not analyze content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion returned")
	}

	var analysis ContentAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("could not parse analysis: %w", err)
	}
	return &analysis, nil
}
