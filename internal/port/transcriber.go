package port

import "context"

// TranscribeInput carries raw audio for speech-to-text.
type TranscribeInput struct {
	Audio       []byte
	ContentType string
}

// Transcriber abstracts the speech-to-text provider.
type Transcriber interface {
	Transcribe(ctx context.Context, input TranscribeInput) (string, error)
}
