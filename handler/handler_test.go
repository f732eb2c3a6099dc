package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vibe-landing/handler"
	"github.com/dmitrymomot/vibe-landing/pkg/binder"
	"github.com/dmitrymomot/vibe-landing/pkg/logger"
)

type signupRequest struct {
	Email string `form:"email"`
}

type (
	ctxT = handler.Context
	reqT = signupRequest
)

func postForm(body url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds request and renders response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
			return handler.JSON(map[string]string{"email": req.Email})
		}, handler.WithBinders[ctxT, reqT](binder.Form()))

		rec := httptest.NewRecorder()
		h(rec, postForm(url.Values{"email": {"a@b.co"}}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"email":"a@b.co"}`, rec.Body.String())
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		called := false
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
			called = true
			return handler.JSON(nil)
		},
			handler.WithBinders[ctxT, reqT](binder.Form()),
			handler.WithErrorHandler[ctxT, reqT](func(ctx ctxT, err error) { got = err }),
		)

		r := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		h(httptest.NewRecorder(), r)

		assert.False(t, called)
		assert.ErrorIs(t, got, binder.ErrUnsupportedMediaType)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response { return nil },
			handler.WithErrorHandler[ctxT, reqT](func(ctx ctxT, err error) { got = err }),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("default error handler keeps http error status", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
			return failingResponse{err: handler.NewHTTPError(http.StatusConflict, "Already there")}
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Already there")
	})

	t.Run("decorators apply outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[ctxT, reqT] {
			return func(next handler.HandlerFunc[ctxT, reqT]) handler.HandlerFunc[ctxT, reqT] {
				return func(ctx ctxT, req reqT) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
			order = append(order, "handler")
			return handler.JSON(true)
		}, handler.WithDecorators(mark("first"), mark("second")))

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
			assert.Equal(t, "/ctx", ctx.Request().URL.Path)
			assert.NotNil(t, ctx.ResponseWriter())
			assert.NoError(t, ctx.Err())
			return handler.JSON(true)
		})
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ctx", nil))
	})
}

type failingResponse struct{ err error }

func (f failingResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

func TestRecover(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx ctxT, req reqT) handler.Response {
		panic("boom")
	},
		handler.WithErrorHandler[ctxT, reqT](handler.NewJSONErrorHandler(logger.Discard())),
		handler.WithDecorators(handler.Recover[ctxT, reqT]()),
	)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { h(rec, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestNewJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "http error",
			err:  handler.NewHTTPError(http.StatusBadRequest, "Email required"),
			code: http.StatusBadRequest,
			body: `{"error":"Email required"}`,
		},
		{
			name: "wrapped http error",
			err:  errors.Join(errors.New("ctx"), handler.ErrUnsupportedMedia),
			code: http.StatusUnsupportedMediaType,
			body: `{"error":"Unsupported media type"}`,
		},
		{
			name: "internal details are hidden",
			err:  errors.New("postgres: connection refused"),
			code: http.StatusInternalServerError,
			body: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", nil)
			handler.NewJSONErrorHandler(logger.Discard())(handler.NewContext(rec, r), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
