package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para despacho de correos transaccionales.
type Sender interface {
	Send(ctx context.Context, toEmail, subject, htmlBody string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) Send(_ context.Context, _, _, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
