package lead

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vibe-landing/handler"
	"github.com/dmitrymomot/vibe-landing/pkg/binder"
	"github.com/dmitrymomot/vibe-landing/pkg/logger"
	"github.com/dmitrymomot/vibe-landing/pkg/requestid"
	"github.com/dmitrymomot/vibe-landing/pkg/validator"
)

// Endpoint validates lead submissions and dispatches the welcome notification.
// It holds no per-request state and is safe for concurrent use.
type Endpoint struct {
	cfg        Config
	dispatcher Dispatcher
	log        *slog.Logger
}

// EndpointOption configures an Endpoint.
type EndpointOption func(*Endpoint)

// WithEndpointLogger sets the logger. Nil is ignored.
func WithEndpointLogger(l *slog.Logger) EndpointOption {
	return func(e *Endpoint) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEndpoint creates an Endpoint. It panics on a nil dispatcher, which is a wiring bug.
func NewEndpoint(cfg Config, dispatcher Dispatcher, opts ...EndpointOption) *Endpoint {
	if dispatcher == nil {
		panic("lead: nil dispatcher")
	}
	e := &Endpoint{
		cfg:        cfg.normalize(),
		dispatcher: dispatcher,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Handle serves POST on the mount point. Both urlencoded and multipart bodies
// are accepted; anything the binder rejects, and any panic, ends as 500.
func (e *Endpoint) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", handler.Wrap(e.submit,
		handler.WithBinders[handler.Context, LeadRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, LeadRequest](e.errorHandler()),
		handler.WithDecorators(handler.Recover[handler.Context, LeadRequest]()),
	))
	return r
}

func (e *Endpoint) submit(ctx handler.Context, req LeadRequest) handler.Response {
	return e.SubmitLead(ctx, req)
}

// SubmitLead runs presence and format checks, then makes exactly one dispatch
// attempt bounded by the configured timeout. Invalid input never reaches the dispatcher.
// A panicking dispatcher yields the generic 500 reply.
func (e *Endpoint) SubmitLead(ctx context.Context, req LeadRequest) (resp handler.Response) {
	if err := validator.ApplyFirst(
		validator.PresentString("email", req.Email),
		validator.EmailShape("email", req.Email),
	); err != nil {
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, validationMessage(err)))
	}

	log := e.log.With(
		logger.Component("lead"),
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Recipient(req.Email),
	)

	defer func() {
		if p := recover(); p != nil {
			log.ErrorContext(ctx, "panic during lead dispatch", slog.Any("panic", p))
			resp = handler.JSONError(handler.ErrInternalServerError)
		}
	}()

	dctx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
	defer cancel()

	started := time.Now()
	if err := e.dispatcher.Send(dctx, NewWelcomeNotification(e.cfg.FromEmail, req.Email)); err != nil {
		log.ErrorContext(ctx, "welcome notification dispatch failed",
			logger.Error(err),
			logger.Duration(time.Since(started)),
		)
		return handler.JSONError(handler.NewHTTPError(http.StatusInternalServerError, MsgFailedToSendEmail))
	}

	log.InfoContext(ctx, "lead captured", logger.Duration(time.Since(started)))
	return handler.JSON(SuccessResponse{Success: true, Message: MsgEmailSent})
}

func validationMessage(err error) string {
	if first, ok := validator.ExtractValidationErrors(err).First(); ok && first.TranslationKey == validator.KeyEmailShape {
		return MsgInvalidEmailFormat
	}
	return MsgEmailRequired
}

// errorHandler reports every binder, render and panic failure as a generic 500.
// The internal error leads the chain so a binder's own HTTPError status never
// reaches the client.
func (e *Endpoint) errorHandler() handler.ErrorHandler[handler.Context] {
	jsonErrors := handler.NewJSONErrorHandler(e.log.With(logger.Component("lead")))
	return func(ctx handler.Context, err error) {
		jsonErrors(ctx, fmt.Errorf("%w: %w", handler.ErrInternalServerError, err))
	}
}
