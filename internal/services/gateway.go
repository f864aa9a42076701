package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"humanize-backend/internal/models"
)

// GatewayClient implements Completer against an OpenAI-compatible
// chat/completions endpoint using bearer authentication.
type GatewayClient struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

// NewGatewayClient returns a client for the given endpoint. An empty apiKey
// is allowed; Complete then fails with ErrNotConfigured without any I/O.
// A nil httpClient means http.DefaultClient.
func NewGatewayClient(url, apiKey, model string, httpClient *http.Client) *GatewayClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GatewayClient{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: httpClient,
	}
}

func (c *GatewayClient) Configured() bool { return c.apiKey != "" }

// Complete posts one system and one user message and returns
// choices[0].message.content.
func (c *GatewayClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(models.CompletionRequest{
		Model: c.model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var out models.CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode AI gateway response: %w", err)
	}

	content := out.FirstContent()
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
