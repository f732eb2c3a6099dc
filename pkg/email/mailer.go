package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/vibe-landing/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	From     string `json:"from"`          // Sender identity, "Name <addr>" or bare address
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

// Validate checks the parameters every provider relies on.
// The recipient check matches the one lead capture applies, so anything
// accepted there is accepted here.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if err := validator.Apply(validator.EmailShape("send_to", p.SendTo)); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// New builds the sender selected by cfg.Provider.
// Senders holding connections implement io.Closer.
func New(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderPostmark, "":
		return NewPostmarkClient(cfg)
	case ProviderJetStream:
		s, err := ConnectJetStream(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
