package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vibe-landing/pkg/email"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewPostmarkClient_Config(t *testing.T) {
	t.Parallel()

	t.Run("server token only", func(t *testing.T) {
		t.Parallel()
		client, err := email.NewPostmarkClient(email.Config{PostmarkServerToken: "server-token"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing server token", func(t *testing.T) {
		t.Parallel()
		client, err := email.NewPostmarkClient(email.Config{PostmarkAccountToken: "account"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "PostmarkServerToken is required")
		assert.Nil(t, client)
	})

	t.Run("invalid reply-to", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewPostmarkClient(email.Config{PostmarkServerToken: "t", ReplyTo: "support"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestPostmarkClient_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("posts the message", func(t *testing.T) {
		t.Parallel()
		var got map[string]any
		var token string
		transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			token = r.Header.Get("X-Postmark-Server-Token")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			return jsonResponse(http.StatusOK, `{"To":"user@example.com","MessageID":"abc","ErrorCode":0,"Message":"OK"}`), nil
		})

		client := newPostmark(t,
			email.Config{PostmarkServerToken: "server-token", ReplyTo: "support@example.com"},
			email.WithPostmarkHTTPClient(&http.Client{Transport: transport}),
		)

		require.NoError(t, client.SendEmail(context.Background(), validParams()))
		assert.Equal(t, "server-token", token)
		assert.Equal(t, "Vibe Coding <noreply@example.com>", got["From"])
		assert.Equal(t, "user@example.com", got["To"])
		assert.Equal(t, "support@example.com", got["ReplyTo"])
		assert.Equal(t, "Welcome", got["Subject"])
	})

	t.Run("provider rejection", func(t *testing.T) {
		t.Parallel()
		transport := roundTripFunc(func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnprocessableEntity, `{"ErrorCode":300,"Message":"Invalid 'To' address"}`), nil
		})
		client := newPostmark(t,
			email.Config{PostmarkServerToken: "server-token"},
			email.WithPostmarkHTTPClient(&http.Client{Transport: transport}),
		)

		err := client.SendEmail(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})

	t.Run("invalid params never reach the provider", func(t *testing.T) {
		t.Parallel()
		called := false
		transport := roundTripFunc(func(*http.Request) (*http.Response, error) {
			called = true
			return jsonResponse(http.StatusOK, `{}`), nil
		})
		client := newPostmark(t,
			email.Config{PostmarkServerToken: "server-token"},
			email.WithPostmarkHTTPClient(&http.Client{Transport: transport}),
		)

		p := validParams()
		p.SendTo = "@b.com"
		assert.ErrorIs(t, client.SendEmail(context.Background(), p), email.ErrInvalidParams)
		assert.False(t, called)
	})
}

func newPostmark(t *testing.T, cfg email.Config, opts ...email.PostmarkOption) email.EmailSender {
	t.Helper()
	client, err := email.NewPostmarkClient(cfg, opts...)
	require.NoError(t, err)
	return client
}
