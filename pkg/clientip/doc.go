// Package clientip resolves the visitor's address behind reverse proxies and
// exposes it to handlers and log records.
//
//	r.Use(clientip.Middleware())
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Proxy headers are only trustworthy when the service sits behind a proxy
// that overwrites them.
package clientip
