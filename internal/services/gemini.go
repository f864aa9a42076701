package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Completer on the Gemini SDK. It is the alternative
// to the HTTP gateway when AI_PROVIDER=gemini.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates the SDK client. With an empty apiKey no client is
// created and Complete reports ErrNotConfigured.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return &GeminiClient{modelName: modelName}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: modelName}, nil
}

func (g *GeminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *GeminiClient) Configured() bool { return g.client != nil }

func (g *GeminiClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	// A fresh model per call keeps the system instruction request-scoped.
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))

	resp, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		return "", mapGeminiError(err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// mapGeminiError folds SDK errors into the same taxonomy the gateway uses.
func mapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		log.Printf("Gemini blocked the request: %v", blocked)
		return ErrEmptyCompletion
	}

	return fmt.Errorf("Gemini API error: %w", err)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
