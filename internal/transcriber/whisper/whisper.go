// Package whisper transcribes audio through the HuggingFace inference API.
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/port"
)

const apiBaseURL = "https://api-inference.huggingface.co/models"

// Transcriber implements port.Transcriber against a Whisper inference endpoint.
type Transcriber struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewTranscriber creates a Whisper-backed transcriber.
func NewTranscriber(cfg *config.TranscriberConfig) *Transcriber {
	return newTranscriber(cfg, "")
}

// NewTranscriberWithEndpoint creates a transcriber pointing at a custom endpoint (for testing).
func NewTranscriberWithEndpoint(cfg *config.TranscriberConfig, endpoint string) *Transcriber {
	return newTranscriber(cfg, endpoint)
}

func newTranscriber(cfg *config.TranscriberConfig, endpoint string) *Transcriber {
	model := cfg.Model
	if model == "" {
		model = "openai/whisper-large-v3-turbo"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s", apiBaseURL, model)
	}
	return &Transcriber{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, input port.TranscribeInput) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("%w: missing transcriber API key", domain.ErrTranscriptionFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(input.Audio))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	contentType := input.ContentType
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranscriptionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrTranscriptionFailed, resp.StatusCode, truncate(string(respBody), 300))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: unmarshaling response: %v", domain.ErrTranscriptionFailed, err)
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("%w: no transcription in response", domain.ErrTranscriptionFailed)
	}
	return parsed.Text, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
