package noop

import (
	"context"
	"log"

	"voxbill/internal/domain"
	"voxbill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs contact submissions to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendContactMessage(_ context.Context, msg domain.ContactSubmission) error {
	log.Printf("[NOOP EMAIL] Contact from %s (%s), subject %q: %s", msg.Name, msg.Email, msg.Subject, msg.Message)
	return nil
}
