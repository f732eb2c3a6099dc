// Package lead implements landing page lead capture.
//
// Two halves share one wire contract (POST form field "email", JSON reply):
//
//   - Endpoint validates the address and dispatches a fixed welcome
//     notification through a Dispatcher. Replies are
//     {"success":true,"message":"Email sent successfully"} or {"error": "..."}
//     with 400 for validation failures and 500 otherwise.
//   - Controller is the client side of a signup form. It tracks the field,
//     allows one request at a time, and turns every outcome into a message
//     the visitor can read.
//
// NewEmailDispatcher adapts any email.EmailSender, so the provider is chosen
// at wiring time.
package lead
