// Package telemetry configures OpenTelemetry tracing for the service.
//
//	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.AppName)
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
package telemetry
