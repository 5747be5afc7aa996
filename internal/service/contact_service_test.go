package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voxbill/internal/domain"
	"voxbill/internal/service"
	"voxbill/mocks"
)

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Feature request",
		Message: "Could invoices support discounts?",
	}
}

func TestContactService_Submit_Relays(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	sender.On("SendContactMessage", mock.Anything, validSubmission()).Return(nil)

	svc := service.NewContactService(sender)
	err := svc.Submit(context.Background(), validSubmission())

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	svc := service.NewContactService(new(mocks.MockEmailSender))

	for _, msg := range []domain.ContactSubmission{
		{Email: "a@b.c", Message: "hi"},
		{Name: "Jordan", Message: "hi"},
		{Name: "Jordan", Email: "a@b.c", Message: "   "},
	} {
		err := svc.Submit(context.Background(), msg)
		assert.ErrorIs(t, err, domain.ErrInvalidContactForm)
	}
}

func TestContactService_Submit_RelayFailureStillSucceeds(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	sender.On("SendContactMessage", mock.Anything, mock.Anything).Return(errors.New("ses down"))

	svc := service.NewContactService(sender)
	err := svc.Submit(context.Background(), validSubmission())

	assert.NoError(t, err)
}

func TestContactService_Submit_SubjectOptional(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	sender.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil)

	msg := validSubmission()
	msg.Subject = ""

	svc := service.NewContactService(sender)
	assert.NoError(t, svc.Submit(context.Background(), msg))
}
