package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

// Render buffers the component so a render failure never leaves a half-written page.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTemplStatus overrides the default 200 status.
func WithTemplStatus(status int) TemplOption {
	return func(t *templResponse) { t.status = status }
}

// Templ creates a response from a templ component.
//
//	return handler.Templ(pages.Landing(data))
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := &templResponse{component: component, status: http.StatusOK}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
