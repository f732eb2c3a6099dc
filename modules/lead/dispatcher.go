package lead

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/vibe-landing/pkg/email"
)

const tracerName = "github.com/dmitrymomot/vibe-landing/modules/lead"

// Dispatcher hands a notification to a delivery provider. One call is one attempt.
type Dispatcher interface {
	Send(ctx context.Context, n NotificationPayload) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, n NotificationPayload) error

func (f DispatcherFunc) Send(ctx context.Context, n NotificationPayload) error { return f(ctx, n) }

type emailDispatcher struct {
	sender email.EmailSender
	tracer trace.Tracer
}

// DispatcherOption configures NewEmailDispatcher.
type DispatcherOption func(*emailDispatcher)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) DispatcherOption {
	return func(d *emailDispatcher) {
		if tp != nil {
			d.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewEmailDispatcher sends notifications through any email.EmailSender,
// recording each attempt as a span.
func NewEmailDispatcher(sender email.EmailSender, opts ...DispatcherOption) Dispatcher {
	d := &emailDispatcher{
		sender: sender,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *emailDispatcher) Send(ctx context.Context, n NotificationPayload) error {
	ctx, span := d.tracer.Start(ctx, "lead.dispatch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("email.subject", n.Subject),
			attribute.String("email.tag", n.Tag),
		),
	)
	defer span.End()

	err := d.sender.SendEmail(ctx, email.SendEmailParams{
		From:     n.From,
		SendTo:   n.To,
		Subject:  n.Subject,
		BodyHTML: n.HTMLBody,
		Tag:      n.Tag,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return err
	}
	return nil
}
