package lead_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vibe-landing/handler"
	"github.com/dmitrymomot/vibe-landing/modules/lead"
	"github.com/dmitrymomot/vibe-landing/pkg/logger"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Send(ctx context.Context, n lead.NotificationPayload) error {
	return m.Called(ctx, n).Error(0)
}

// recordingDispatcher collects payloads and returns err.
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []lead.NotificationPayload
	err  error
}

func (d *recordingDispatcher) Send(_ context.Context, n lead.NotificationPayload) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
	return d.err
}

func (d *recordingDispatcher) Sent() []lead.NotificationPayload {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]lead.NotificationPayload(nil), d.sent...)
}

func newEndpoint(cfg lead.Config, d lead.Dispatcher) http.Handler {
	return lead.NewEndpoint(cfg, d, lead.WithEndpointLogger(logger.Discard())).Handle()
}

func postForm(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestEndpointValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
		body   string
	}{
		{name: "missing field", values: url.Values{}, body: `{"error":"Email required"}`},
		{name: "empty value", values: url.Values{"email": {""}}, body: `{"error":"Email required"}`},
		{name: "whitespace only", values: url.Values{"email": {"   "}}, body: `{"error":"Invalid email format"}`},
		{name: "no at sign", values: url.Values{"email": {"userexample.com"}}, body: `{"error":"Invalid email format"}`},
		{name: "no dot in domain", values: url.Values{"email": {"user@example"}}, body: `{"error":"Invalid email format"}`},
		{name: "two at signs", values: url.Values{"email": {"a@b@c.io"}}, body: `{"error":"Invalid email format"}`},
		{name: "inner space", values: url.Values{"email": {"us er@example.com"}}, body: `{"error":"Invalid email format"}`},
		{name: "leading space", values: url.Values{"email": {" user@example.com"}}, body: `{"error":"Invalid email format"}`},
		{name: "empty tld", values: url.Values{"email": {"user@example."}}, body: `{"error":"Invalid email format"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := &mockDispatcher{}
			rec := postForm(t, newEndpoint(lead.Config{}, d), tt.values)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			d.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestEndpointSuccess(t *testing.T) {
	t.Parallel()

	d := &mockDispatcher{}
	d.On("Send", mock.Anything, lead.NotificationPayload{
		From:     lead.DefaultFromEmail,
		To:       "user@example.com",
		Subject:  "Welcome to The Vibe Academy",
		HTMLBody: lead.NewWelcomeNotification("", "").HTMLBody,
		Tag:      lead.WelcomeTag,
	}).Return(nil).Once()

	rec := postForm(t, newEndpoint(lead.Config{}, d), url.Values{"email": {"user@example.com"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())
	d.AssertExpectations(t)
}

func TestEndpointUsesConfiguredSender(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	cfg := lead.Config{FromEmail: "Academy <hello@thevibe.academy>"}
	rec := postForm(t, newEndpoint(cfg, d), url.Values{"email": {"a@b.co"}})

	require.Equal(t, http.StatusOK, rec.Code)
	sent := d.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Academy <hello@thevibe.academy>", sent[0].From)
	assert.Equal(t, "a@b.co", sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, "You're receiving this because you signed up at https://www.thevibe.academy/")
}

func TestEndpointAcceptsMultipart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("email", "user@example.com"))
	require.NoError(t, mw.Close())

	d := &recordingDispatcher{}
	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newEndpoint(lead.Config{}, d).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())
	assert.Len(t, d.Sent(), 1)
}

func TestEndpointDispatchFailure(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{err: errors.New("provider rejected: 422 inactive recipient")}
	rec := postForm(t, newEndpoint(lead.Config{}, d), url.Values{"email": {"user@example.com"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "422", "provider details stay server-side")
}

func TestEndpointDispatchTimeout(t *testing.T) {
	t.Parallel()

	d := lead.DispatcherFunc(func(ctx context.Context, _ lead.NotificationPayload) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		<-ctx.Done()
		return ctx.Err()
	})

	rec := postForm(t, newEndpoint(lead.Config{DispatchTimeout: 50 * time.Millisecond}, d), url.Values{"email": {"user@example.com"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
}

func TestEndpointUnexpectedFailures(t *testing.T) {
	t.Parallel()

	t.Run("dispatcher panic", func(t *testing.T) {
		t.Parallel()
		d := lead.DispatcherFunc(func(context.Context, lead.NotificationPayload) error {
			panic("nil map write")
		})
		rec := postForm(t, newEndpoint(lead.Config{}, d), url.Values{"email": {"user@example.com"}})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})

	t.Run("unparseable payload", func(t *testing.T) {
		t.Parallel()
		d := &mockDispatcher{}
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"user@example.com"}`))
		r.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newEndpoint(lead.Config{}, d).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
		d.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		newEndpoint(lead.Config{}, &mockDispatcher{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=user@example.com")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}

func TestSubmitLeadRecoversDispatcherPanic(t *testing.T) {
	t.Parallel()
	d := lead.DispatcherFunc(func(context.Context, lead.NotificationPayload) error {
		panic("nil map write")
	})
	e := lead.NewEndpoint(lead.Config{}, d, lead.WithEndpointLogger(logger.Discard()))

	var resp handler.Response
	require.NotPanics(t, func() {
		resp = e.SubmitLead(context.Background(), lead.LeadRequest{Email: "user@example.com"})
	})
	require.NotNil(t, resp)

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestEndpointDoesNotDeduplicate(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	h := newEndpoint(lead.Config{}, d)
	for range 2 {
		rec := postForm(t, h, url.Values{"email": {"user@example.com"}})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Len(t, d.Sent(), 2)
}

func TestEndpointConcurrentRequests(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	h := newEndpoint(lead.Config{}, d)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := postForm(t, h, url.Values{"email": {"user@example.com"}})
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()
	assert.Len(t, d.Sent(), 16)
}

func TestNewEndpointNilDispatcher(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { lead.NewEndpoint(lead.Config{}, nil) })
}
