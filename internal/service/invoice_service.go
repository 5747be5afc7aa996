package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/port"
)

// AudioInput carries an uploaded recording.
type AudioInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// GenerateOutput is the result of turning text or audio into a structured invoice.
type GenerateOutput struct {
	Transcript string                `json:"transcript,omitempty"`
	Invoice    *domain.InvoiceRecord `json:"invoice"`
	ModelUsed  string                `json:"model_used,omitempty"`
}

// InvoiceService turns free text or audio into a structured invoice record.
type InvoiceService interface {
	GenerateFromText(ctx context.Context, text string) (*GenerateOutput, error)
	GenerateFromAudio(ctx context.Context, input AudioInput) (*GenerateOutput, error)
}

type invoiceService struct {
	transcriber port.Transcriber
	extractor   port.InvoiceExtractor
	store       port.FileStore
	uploadCfg   *config.UploadConfig
	now         func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(transcriber port.Transcriber, ex port.InvoiceExtractor, store port.FileStore, uploadCfg *config.UploadConfig) InvoiceService {
	return &invoiceService{
		transcriber: transcriber,
		extractor:   ex,
		store:       store,
		uploadCfg:   uploadCfg,
		now:         time.Now,
	}
}

func (s *invoiceService) GenerateFromText(ctx context.Context, text string) (*GenerateOutput, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	out, err := s.extractor.Extract(ctx, port.ExtractInput{Transcript: text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	return &GenerateOutput{Invoice: out.Invoice, ModelUsed: out.ModelUsed}, nil
}

func (s *invoiceService) GenerateFromAudio(ctx context.Context, input AudioInput) (*GenerateOutput, error) {
	if len(input.Data) == 0 {
		return nil, domain.ErrMissingAudio
	}
	if max := s.uploadCfg.MaxAudioSizeMB * 1024 * 1024; max > 0 && int64(len(input.Data)) > max {
		return nil, fmt.Errorf("%w: audio exceeds %dMB", domain.ErrUnsupportedAudioType, s.uploadCfg.MaxAudioSizeMB)
	}

	audioType, contentType, err := resolveAudioType(input)
	if err != nil {
		return nil, err
	}

	// Archive the recording beside the other artifacts; an archive failure is
	// not fatal to the request.
	name := fmt.Sprintf("audio_%s_%s.%s",
		s.now().UTC().Format("20060102_150405"), uuid.NewString()[:8], audioType)
	if _, err := s.store.Save(name, input.Data); err != nil {
		log.Printf("invoiceService: archiving %s failed: %v", name, err)
	}

	transcript, err := s.transcriber.Transcribe(ctx, port.TranscribeInput{
		Audio:       input.Data,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	out, err := s.extractor.Extract(ctx, port.ExtractInput{Transcript: transcript})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	return &GenerateOutput{
		Transcript: transcript,
		Invoice:    out.Invoice,
		ModelUsed:  out.ModelUsed,
	}, nil
}

// resolveAudioType determines the audio format from the filename extension,
// falling back to the declared content type, defaulting to mp3.
func resolveAudioType(input AudioInput) (domain.AudioType, string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.FileName)), ".")
	if ext != "" {
		t, ok := domain.AllowedAudioExtensions[ext]
		if !ok {
			return "", "", fmt.Errorf("%w: .%s", domain.ErrUnsupportedAudioType, ext)
		}
		return t, domain.AllowedAudioTypes[t], nil
	}

	for t, ct := range domain.AllowedAudioTypes {
		if ct == input.ContentType {
			return t, ct, nil
		}
	}
	return domain.AudioTypeMP3, domain.AllowedAudioTypes[domain.AudioTypeMP3], nil
}
