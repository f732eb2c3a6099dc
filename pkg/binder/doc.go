// Package binder decodes HTTP form submissions into tagged Go structs.
//
// Form() accepts both application/x-www-form-urlencoded and multipart/form-data
// bodies, so the same request struct works for plain HTML forms and for
// browser FormData uploads:
//
//	type SubmitRequest struct {
//	    Email string   `form:"email"`
//	    Tags  []string `form:"tags"`
//	    Skip  string   `form:"-"`
//	}
//
//	http.HandleFunc("/subscribe", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, SubmitRequest](binder.Form()),
//	))
//
// Fields without a form tag are ignored. Missing values leave the field at its
// zero value; presence rules belong to the validator, not the binder.
//
// # Error Handling
//
// Every failure wraps one of the package sentinels so callers can branch
// with errors.Is:
//
//   - ErrMissingContentType: no Content-Type header
//   - ErrUnsupportedMediaType: body is not a form encoding
//   - ErrInvalidForm: the body could not be parsed or a value did not convert
//   - ErrInvalidTarget: the destination is not a pointer to a struct
package binder
