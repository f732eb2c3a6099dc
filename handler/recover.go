package handler

import (
	"fmt"
	"net/http"
)

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Recover converts a panic in the wrapped handler into an error that reaches
// the ErrorHandler as ErrPanic. Panics during Render are not covered.
func Recover[C Context, R any]() Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) (resp Response) {
			defer func() {
				if p := recover(); p != nil {
					resp = errorResponse{err: fmt.Errorf("%w: %v", ErrPanic, p)}
				}
			}()
			return next(ctx, req)
		}
	}
}
