// Package email provides a provider-agnostic interface for sending transactional emails.
//
// # Architecture
//
// Everything is built around EmailSender, so the delivery backend can change
// without touching callers. Implementations:
//   - Postmark (NewPostmarkClient) for production delivery with open/link tracking
//   - JetStreamSender (ConnectJetStream) to relay messages to a NATS JetStream
//     subject consumed by a separate mail worker
//   - DevSender (NewDevSender) for local development, writing emails to disk
//
// New(cfg) picks one from Config.Provider. All implementations validate
// SendEmailParams before doing any I/O.
//
// # Usage
//
//	sender, err := email.New(email.Config{
//	    Provider:            email.ProviderPostmark,
//	    PostmarkServerToken: "server-token",
//	})
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    From:     "Vibe Coding <noreply@example.com>",
//	    SendTo:   "user@example.com",
//	    Subject:  "Welcome!",
//	    BodyHTML: html,
//	    Tag:      "welcome",
//	})
//
// # Error Handling
//
// Sentinel errors, checked with errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: email parameters validation failed
//   - ErrFailedToSendEmail: the provider rejected or failed the send
//
// Provider detail is joined to ErrFailedToSendEmail and is meant for logs,
// not for end users.
package email
