package service

import (
	"testing"

	"github.com/edmsantos/account-api/internal/config"
)

func TestNewEmailService_MissingAPIKey(t *testing.T) {
	_, err := NewEmailService(&config.EmailSettings{})
	if err == nil {
		t.Error("expected an error when the SendGrid API key is not configured")
	}
}

func TestNewEmailService_ConfiguredKey(t *testing.T) {
	svc, err := NewEmailService(&config.EmailSettings{
		SendGridAPIKey: "SG.test-key",
		FromAddress:    "noreply@example.com",
		FromName:       "Account API",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc == nil {
		t.Error("expected a service instance")
	}
}
