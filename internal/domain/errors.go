package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSessionInvalid       = errors.New("session token invalid or expired")
	ErrMissingAudio         = errors.New("no audio file uploaded")
	ErrUnsupportedAudioType = errors.New("unsupported audio type")
	ErrEmptyText            = errors.New("no text provided")
	ErrInvalidContactForm   = errors.New("name, email and message are required")
	ErrRenderFailed         = errors.New("document rendering produced no output")
	ErrTranscriptionFailed  = errors.New("audio transcription failed")
	ErrExtractionFailed     = errors.New("invoice extraction failed")
)
