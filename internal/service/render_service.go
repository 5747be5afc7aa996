package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"voxbill/internal/config"
	"voxbill/internal/domain"
	"voxbill/internal/money"
	"voxbill/internal/pdf"
	"voxbill/internal/port"
)

// RenderResult references the archived document produced by a save request.
// MirrorURL is a time-limited direct link to the offsite copy, present only
// when the mirror is configured and the copy succeeded.
type RenderResult struct {
	PDFFileName string `json:"pdf_filename"`
	DownloadURL string `json:"download_url"`
	MirrorURL   string `json:"mirror_url,omitempty"`
}

// mirrorURLExpirySecs bounds how long a mirrored document link stays valid.
const mirrorURLExpirySecs = 3600

// RenderService renders an invoice record into an archived PDF plus a JSON
// snapshot, and serves archived documents back for download.
type RenderService interface {
	SaveInvoice(ctx context.Context, rec *domain.InvoiceRecord) (*RenderResult, error)
	OpenDocument(name string) ([]byte, error)
}

type renderService struct {
	store     port.FileStore
	mirror    port.ObjectStorage // nil when no offsite mirror is configured
	s3Cfg     *config.S3Config
	newCanvas func() pdf.Canvas
	now       func() time.Time
}

// NewRenderService creates a new RenderService implementation. mirror may be
// nil to disable the offsite copy.
func NewRenderService(store port.FileStore, mirror port.ObjectStorage, s3Cfg *config.S3Config) RenderService {
	return &renderService{
		store:     store,
		mirror:    mirror,
		s3Cfg:     s3Cfg,
		newCanvas: pdf.NewFpdfCanvas,
		now:       time.Now,
	}
}

func (s *renderService) SaveInvoice(ctx context.Context, rec *domain.InvoiceRecord) (*RenderResult, error) {
	totals := money.Compute(rec)

	engine := pdf.NewEngine(s.newCanvas())
	doc, err := engine.Render(rec, totals)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, domain.ErrRenderFailed
	}

	// Timestamp plus a random fragment keeps names unique under concurrent
	// same-second saves.
	stamp := fmt.Sprintf("%s_%s", s.now().UTC().Format("20060102_150405"), uuid.NewString()[:8])

	snapshot, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling invoice snapshot: %w", err)
	}
	if _, err := s.store.Save(fmt.Sprintf("invoice_%s.json", stamp), snapshot); err != nil {
		return nil, fmt.Errorf("archiving invoice snapshot: %w", err)
	}

	pdfName := fmt.Sprintf("detailed_invoice_%s.pdf", stamp)
	if _, err := s.store.Save(pdfName, doc); err != nil {
		return nil, fmt.Errorf("archiving rendered document: %w", err)
	}

	mirrorURL := s.mirrorDocument(ctx, pdfName, doc)

	return &RenderResult{
		PDFFileName: pdfName,
		DownloadURL: "/download_pdf/" + pdfName,
		MirrorURL:   mirrorURL,
	}, nil
}

func (s *renderService) OpenDocument(name string) ([]byte, error) {
	return s.store.Open(name)
}

// mirrorDocument copies the rendered PDF to object storage when configured
// and returns a presigned link to the copy. The mirror is best effort: a
// failure is logged, never surfaced, and the link is simply absent.
func (s *renderService) mirrorDocument(ctx context.Context, name string, doc []byte) string {
	if s.mirror == nil || s.s3Cfg == nil || !s.s3Cfg.Enabled() {
		return ""
	}
	key := s.s3Cfg.KeyPrefix + name
	_, err := s.mirror.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(doc),
		ContentType: "application/pdf",
		Size:        int64(len(doc)),
	})
	if err != nil {
		log.Printf("renderService: mirroring %s to s3 failed: %v", name, err)
		return ""
	}

	url, err := s.mirror.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, mirrorURLExpirySecs)
	if err != nil {
		log.Printf("renderService: presigning mirror link for %s failed: %v", name, err)
		return ""
	}
	return url
}
