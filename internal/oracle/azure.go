// Package oracle talks to an Azure OpenAI chat-completions deployment.
// The client is deliberately a raw net/http caller with no timeout
// beyond transport defaults: plan generation runs for tens of seconds
// and the caller owns cancellation through ctx.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotConfigured is returned before any network attempt when the
// endpoint, deployment, api version or key is missing.
var ErrNotConfigured = errors.New("azure openai is not configured, check env vars")

// ErrEmptyResponse means the completion envelope carried no text part.
var ErrEmptyResponse = errors.New("empty response from azure openai")

// StatusError is a non-success HTTP status from the deployment, with
// the response body kept for the error detail surfaced to the caller.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("azure openai error %d: %s", e.Status, e.Body)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the generation boundary the planner depends on. Complete
// sends the messages under the given response_format constraint and
// returns the extracted text payload.
type Client interface {
	Complete(ctx context.Context, messages []Message, responseFormat map[string]any) (string, error)
	Configured() bool
}

type azureClient struct {
	endpoint   string
	deployment string
	apiVersion string
	apiKey     string
	client     *http.Client
}

func NewAzureClient(endpoint, deployment, apiVersion, apiKey string) Client {
	return &azureClient{
		endpoint:   endpoint,
		deployment: deployment,
		apiVersion: apiVersion,
		apiKey:     apiKey,
		client:     &http.Client{},
	}
}

func (c *azureClient) Configured() bool {
	return c.endpoint != "" && c.deployment != "" && c.apiVersion != "" && c.apiKey != ""
}

func (c *azureClient) Complete(ctx context.Context, messages []Message, responseFormat map[string]any) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body := map[string]any{
		"messages":        messages,
		"temperature":     0.7,
		"response_format": responseFormat,
	}
	payload, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", &StatusError{Status: resp.StatusCode, Body: string(data)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content json.RawMessage `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := extractText(result.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// extractText handles both content encodings the API ships: a plain
// string, or an array of typed parts where the text lives in the first
// part with type "text". Anything else yields empty.
func extractText(content json.RawMessage) string {
	if len(content) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(content, &s) == nil {
		return s
	}
	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if json.Unmarshal(content, &parts) == nil {
		for _, p := range parts {
			if p.Type == "text" {
				return p.Text
			}
		}
	}
	return ""
}
