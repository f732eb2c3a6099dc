// Package handler provides type-safe HTTP request handling.
//
// A handler is a generic function that receives a bound request struct and
// returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type LeadRequest struct {
//		Email string `form:"email"`
//	}
//
//	func submit(ctx handler.Context, req LeadRequest) handler.Response {
//		if req.Email == "" {
//			return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "Email required"))
//		}
//		return handler.JSON(result)
//	}
//
//	r.Post("/api/lead", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, LeadRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, LeadRequest](handler.NewJSONErrorHandler(log)),
//		handler.WithDecorators(handler.Recover[handler.Context, LeadRequest]()),
//	))
//
// # Responses
//
//	handler.JSON(v)                                  // 200 with v as body
//	handler.JSON(v, handler.WithJSONStatus(201))     // custom status
//	handler.JSONError(handler.ErrBadRequest)         // {"error": "..."} with status
//	handler.Templ(component)                         // buffered HTML
//
// # Errors
//
// Binder failures, render failures, nil responses and panics caught by Recover
// go to the ErrorHandler. NewJSONErrorHandler logs them and exposes only
// HTTPError messages; everything else is a generic 500.
package handler
