package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

// JetStreamPublisher is the subset of nats.JetStreamContext the relay needs.
type JetStreamPublisher interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// JetStreamSender hands emails to a JetStream subject for a downstream mail
// worker. A send succeeds once the stream acknowledges the message.
type JetStreamSender struct {
	js      JetStreamPublisher
	subject string
	conn    *nats.Conn
}

// NewJetStreamSender wraps an existing JetStream context.
func NewJetStreamSender(js JetStreamPublisher, subject string) (*JetStreamSender, error) {
	if js == nil {
		return nil, fmt.Errorf("%w: JetStream publisher is required", ErrInvalidConfig)
	}
	if subject == "" {
		return nil, fmt.Errorf("%w: NATS subject is required", ErrInvalidConfig)
	}
	return &JetStreamSender{js: js, subject: subject}, nil
}

// ConnectJetStream dials NATS, ensures the stream exists and returns a sender
// that owns the connection. Close releases it.
func ConnectJetStream(cfg Config) (*JetStreamSender, error) {
	if cfg.NATSURL == "" || cfg.NATSStream == "" || cfg.NATSSubject == "" {
		return nil, fmt.Errorf("%w: NATSURL, NATSStream and NATSSubject are required", ErrInvalidConfig)
	}

	nc, err := nats.Connect(cfg.NATSURL, nats.Name("lead-capture"))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("connect to nats: %w", err))
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("jetstream context: %w", err))
	}

	if _, err := js.StreamInfo(cfg.NATSStream); errors.Is(err, nats.ErrStreamNotFound) {
		if _, err := js.AddStream(&nats.StreamConfig{
			Name:     cfg.NATSStream,
			Subjects: []string{cfg.NATSSubject},
		}); err != nil {
			nc.Close()
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("create stream %s: %w", cfg.NATSStream, err))
		}
	} else if err != nil {
		nc.Close()
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("stream info %s: %w", cfg.NATSStream, err))
	}

	return &JetStreamSender{js: js, subject: cfg.NATSSubject, conn: nc}, nil
}

// SendEmail publishes params as JSON and waits for the stream acknowledgement.
func (s *JetStreamSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(params)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	if _, err := s.js.Publish(s.subject, data, nats.Context(ctx)); err != nil {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("publish to %s: %w", s.subject, err))
	}
	return nil
}

// Close drains the owned connection, if any.
func (s *JetStreamSender) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Drain()
}

// Ready reports whether the owned connection is up. Senders built from an
// external publisher are always ready.
func (s *JetStreamSender) Ready(context.Context) error {
	if s.conn == nil || s.conn.IsConnected() {
		return nil
	}
	return fmt.Errorf("%w: nats connection status %s", ErrNotConnected, s.conn.Status())
}
