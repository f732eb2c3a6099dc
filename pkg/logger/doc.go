// Package logger builds *slog.Logger values with functional options and
// context-aware attribute injection.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "landing"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "dispatch failed",
//	    logger.Component("lead"),
//	    logger.Recipient(addr),
//	    logger.Error(err),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Recipient masks email addresses so leads never land in logs verbatim.
package logger
