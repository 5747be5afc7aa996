// Package noop provides a pass-through session verifier for development, used
// when no Clerk secret key is configured. It accepts any bearer token without
// server-side verification.
package noop

import (
	"context"
	"log"

	"voxbill/internal/port"
)

type verifier struct{}

// NewVerifier creates a pass-through SessionVerifier.
func NewVerifier() port.SessionVerifier {
	log.Printf("auth: no secret key configured; bearer tokens pass unverified")
	return &verifier{}
}

func (v *verifier) VerifySession(_ context.Context, _ string) (*port.SessionClaims, error) {
	return &port.SessionClaims{}, nil
}
