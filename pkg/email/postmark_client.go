package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/vibe-landing/pkg/validator"
)

type postmarkClient struct {
	client  *postmark.Client
	replyTo string
}

// PostmarkOption configures the Postmark sender.
type PostmarkOption func(*postmark.Client)

// WithPostmarkHTTPClient replaces the HTTP client used to reach the Postmark API.
func WithPostmarkHTTPClient(c *http.Client) PostmarkOption {
	return func(pc *postmark.Client) {
		if c != nil {
			pc.HTTPClient = c
		}
	}
}

// NewPostmarkClient creates a Postmark-backed email sender.
// The server token is the provider credential and is required; the account
// token is only needed for administrative API calls and may be empty.
func NewPostmarkClient(cfg Config, opts ...PostmarkOption) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" {
		if err := validator.Apply(validator.ValidEmail("reply_to", cfg.ReplyTo)); err != nil {
			return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidConfig)
		}
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	for _, opt := range opts {
		opt(client)
	}

	return &postmarkClient{
		client:  client,
		replyTo: cfg.ReplyTo,
	}, nil
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Opens and HTML link clicks are tracked; plain text links are left alone.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       params.From,
		ReplyTo:    c.replyTo,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
