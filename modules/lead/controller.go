package lead

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/vibe-landing/pkg/logger"
	"github.com/dmitrymomot/vibe-landing/pkg/statemachine"
)

// State is the phase of a submission as seen by the visitor.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type event string

const (
	eventSubmit  event = "submit"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
)

// DefaultClientTimeout bounds one round trip to the capture endpoint.
const DefaultClientTimeout = 15 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 64 << 10

// View is an immutable snapshot of the controller for rendering.
type View struct {
	State         State
	Message       string
	Input         string
	SubmitEnabled bool
	Attempt       uint64
}

// Controller drives a single signup form: it holds the field value, submits it
// to the capture endpoint and exposes the outcome. At most one request is in
// flight; a result that arrives for a superseded attempt is dropped.
type Controller struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	log      *slog.Logger
	onChange func(View)

	// notifyMu is taken before mu is released, so listeners see views in
	// the order the changes happened.
	notifyMu sync.Mutex

	mu      sync.Mutex
	machine *statemachine.Machine[State, event]
	input   string
	message string
	attempt uint64
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithHTTPClient sets the client used for submissions. Nil is ignored.
func WithHTTPClient(c *http.Client) ControllerOption {
	return func(ctl *Controller) {
		if c != nil {
			ctl.client = c
		}
	}
}

// WithClientTimeout bounds each submission. Non-positive values are ignored.
func WithClientTimeout(d time.Duration) ControllerOption {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.timeout = d
		}
	}
}

// WithControllerLogger sets the logger. Nil is ignored.
func WithControllerLogger(l *slog.Logger) ControllerOption {
	return func(ctl *Controller) {
		if l != nil {
			ctl.log = l
		}
	}
}

// WithChangeListener registers fn to receive every new View. Calls are
// serialized and arrive in change order. fn runs on the goroutine that caused
// the change and must not call back into the Controller.
func WithChangeListener(fn func(View)) ControllerOption {
	return func(ctl *Controller) { ctl.onChange = fn }
}

// NewController creates a Controller posting to endpointURL.
func NewController(endpointURL string, opts ...ControllerOption) *Controller {
	c := &Controller{
		endpoint: endpointURL,
		client:   http.DefaultClient,
		timeout:  DefaultClientTimeout,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.machine = statemachine.MustNew(StateIdle,
		statemachine.WithTransitionFrom(
			[]State{StateIdle, StateSucceeded, StateFailed}, StateSubmitting, eventSubmit,
			statemachine.WithGuard[State, event](hasInput),
		),
		statemachine.WithTransition[State, event](StateSubmitting, StateSucceeded, eventSucceed),
		statemachine.WithTransition[State, event](StateSubmitting, StateFailed, eventFail),
	)
	return c
}

func hasInput(_ context.Context, _ State, _ event, data any) bool {
	s, _ := data.(string)
	return strings.TrimSpace(s) != ""
}

// SetInput records the current value of the email field. The field is
// locked while a submission is in flight, so edits made then are ignored.
func (c *Controller) SetInput(value string) {
	c.mu.Lock()
	if c.machine.Current() == StateSubmitting {
		c.mu.Unlock()
		return
	}
	c.input = value
	c.unlockAndNotify(c.viewLocked())
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Submit sends the current input and blocks until the attempt resolves.
// Blank input and submits while another is in flight are ignored. Every
// failure, including transport errors and timeouts, ends in StateFailed with
// a displayable message; Submit never returns an error.
func (c *Controller) Submit(ctx context.Context) View {
	c.mu.Lock()
	if err := c.machine.Fire(ctx, eventSubmit, c.input); err != nil {
		v := c.viewLocked()
		c.mu.Unlock()
		c.log.DebugContext(ctx, "submit ignored", logger.Component("lead_controller"), logger.Error(err))
		return v
	}
	c.attempt++
	id := c.attempt
	c.message = ""
	req := LeadRequest{Email: c.input}
	c.unlockAndNotify(c.viewLocked())

	ok, msg := c.roundTrip(ctx, req, id)

	c.mu.Lock()
	if id != c.attempt || c.machine.Current() != StateSubmitting {
		v := c.viewLocked()
		c.mu.Unlock()
		c.log.DebugContext(ctx, "stale submission result dropped",
			logger.Component("lead_controller"),
			logger.Attempt(id),
		)
		return v
	}
	if ok {
		_ = c.machine.Fire(ctx, eventSucceed, nil)
		c.input = ""
	} else {
		_ = c.machine.Fire(ctx, eventFail, nil)
	}
	c.message = msg
	v := c.viewLocked()
	c.unlockAndNotify(v)
	return v
}

// Close abandons any in-flight attempt and returns to StateIdle. A late
// response for the abandoned attempt changes nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	c.attempt++
	c.machine.Reset()
	c.message = ""
	c.unlockAndNotify(c.viewLocked())
}

func (c *Controller) viewLocked() View {
	state := c.machine.Current()
	return View{
		State:         state,
		Message:       c.message,
		Input:         c.input,
		SubmitEnabled: state != StateSubmitting,
		Attempt:       c.attempt,
	}
}

// unlockAndNotify releases mu and delivers v. Must be called with mu held.
func (c *Controller) unlockAndNotify(v View) {
	if c.onChange == nil {
		c.mu.Unlock()
		return
	}
	c.notifyMu.Lock()
	c.mu.Unlock()
	c.onChange(v)
	c.notifyMu.Unlock()
}

// roundTrip posts req and maps the outcome to (success, message).
func (c *Controller) roundTrip(ctx context.Context, req LeadRequest, id uint64) (bool, string) {
	log := c.log.With(logger.Component("lead_controller"), logger.Attempt(id))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := url.Values{"email": {req.Email}}.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		log.ErrorContext(ctx, "build submission request", logger.Error(err))
		return false, MsgNetworkError
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.WarnContext(ctx, "submission transport failed", logger.Error(err))
		return false, MsgNetworkError
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.WarnContext(ctx, "read submission response", logger.Error(err), logger.Status(resp.StatusCode))
		return false, MsgNetworkError
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		log.WarnContext(ctx, "unparseable submission response", logger.Error(err), logger.Status(resp.StatusCode))
		return false, MsgNetworkError
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true, MsgSubscribed
	}
	return false, failureMessage(data)
}

// failureMessage picks the server's error text when it sent one.
// A JSON null body has no fields to read and is treated like a broken response.
func failureMessage(data any) string {
	if data == nil {
		return MsgNetworkError
	}
	if obj, ok := data.(map[string]any); ok {
		if s, ok := obj["error"].(string); ok && s != "" {
			return s
		}
	}
	return MsgGenericError
}
