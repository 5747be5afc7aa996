package whisper_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/port"
	"voxbill/internal/transcriber/whisper"
)

func testConfig() *config.TranscriberConfig {
	return &config.TranscriberConfig{
		Provider:    "whisper",
		APIKey:      "hf-test-key",
		Model:       "openai/whisper-large-v3-turbo",
		TimeoutSecs: 5,
	}
}

func TestTranscriber_Transcribe_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"text": "invoice Acme for two hours of consulting"}`))
	}))
	defer server.Close()

	tr := whisper.NewTranscriberWithEndpoint(testConfig(), server.URL)
	text, err := tr.Transcribe(context.Background(), port.TranscribeInput{
		Audio:       []byte("fake-audio-bytes"),
		ContentType: "audio/wav",
	})

	assert.NoError(t, err)
	assert.Equal(t, "invoice Acme for two hours of consulting", text)
	assert.Equal(t, "Bearer hf-test-key", gotAuth)
	assert.Equal(t, "audio/wav", gotContentType)
	assert.Equal(t, []byte("fake-audio-bytes"), gotBody)
}

func TestTranscriber_Transcribe_DefaultsContentType(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"text": "hello"}`))
	}))
	defer server.Close()

	tr := whisper.NewTranscriberWithEndpoint(testConfig(), server.URL)
	_, err := tr.Transcribe(context.Background(), port.TranscribeInput{Audio: []byte("x")})

	assert.NoError(t, err)
	assert.Equal(t, "audio/mpeg", gotContentType)
}

func TestTranscriber_Transcribe_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""
	tr := whisper.NewTranscriberWithEndpoint(cfg, "http://127.0.0.1:0")

	_, err := tr.Transcribe(context.Background(), port.TranscribeInput{Audio: []byte("x")})

	assert.ErrorIs(t, err, domain.ErrTranscriptionFailed)
}

func TestTranscriber_Transcribe_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer server.Close()

	tr := whisper.NewTranscriberWithEndpoint(testConfig(), server.URL)
	_, err := tr.Transcribe(context.Background(), port.TranscribeInput{Audio: []byte("x")})

	assert.ErrorIs(t, err, domain.ErrTranscriptionFailed)
	assert.ErrorContains(t, err, "status 503")
}

func TestTranscriber_Transcribe_EmptyTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text": ""}`))
	}))
	defer server.Close()

	tr := whisper.NewTranscriberWithEndpoint(testConfig(), server.URL)
	_, err := tr.Transcribe(context.Background(), port.TranscribeInput{Audio: []byte("x")})

	assert.ErrorIs(t, err, domain.ErrTranscriptionFailed)
}
