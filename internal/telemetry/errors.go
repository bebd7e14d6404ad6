package telemetry

import (
	"log"

	"github.com/getsentry/sentry-go"
)

// SetupErrorReporting configures the Sentry SDK for error reporting. An empty
// DSN disables reporting.
func SetupErrorReporting(dsn string, environment string) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Transport:   sentry.NewHTTPSyncTransport(),
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
}

// ReportError reports an error to Sentry
func ReportError(err error) {
	sentry.CaptureException(err)
}
