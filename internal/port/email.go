package port

import (
	"context"

	"voxbill/internal/domain"
)

// EmailSender defines the contract for relaying contact form submissions.
type EmailSender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactSubmission) error
}
