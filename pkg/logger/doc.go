// Package logger builds the storefront's *slog.Logger.
//
// New takes functional options that select the output format (JSON for
// production and staging, text for development), the minimum level, static
// attributes such as the service name, and ContextExtractor callbacks that
// copy request scoped values (the request ID) into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "login accepted", logger.Contact(identifier))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Contact masks e-mail addresses and phone numbers so login identifiers never
// appear in clear text.
package logger
