package service

import (
	"context"
	"log"
	"strings"

	"voxbill/internal/domain"
	"voxbill/internal/port"
)

// ContactService validates and relays contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactSubmission) error
}

type contactService struct {
	sender port.EmailSender
}

// NewContactService creates a new ContactService implementation.
func NewContactService(sender port.EmailSender) ContactService {
	return &contactService{sender: sender}
}

func (s *contactService) Submit(ctx context.Context, msg domain.ContactSubmission) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return domain.ErrInvalidContactForm
	}

	// A relay failure is logged but the submission still succeeds; the message
	// content is in the log for manual follow-up.
	if err := s.sender.SendContactMessage(ctx, msg); err != nil {
		log.Printf("contactService: relay failed for %s: %v", msg.Email, err)
	}
	return nil
}
