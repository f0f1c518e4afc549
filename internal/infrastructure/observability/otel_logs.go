package observability

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// setupLogExport installs an OTLP log provider as the global provider.
func setupLogExport(ctx context.Context, res *resource.Resource, endpoint string) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(endpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)
	return provider, nil
}

// OTelLogHook mirrors zerolog messages into the global OpenTelemetry log
// provider. Structured fields stay in the zerolog output only.
type OTelLogHook struct {
	logger otellog.Logger
}

// NewOTelLogHook creates a hook bound to the current global log provider.
func NewOTelLogHook() OTelLogHook {
	return OTelLogHook{logger: global.GetLoggerProvider().Logger(instrumentationName)}
}

// Run implements zerolog.Hook.
func (h OTelLogHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if level == zerolog.NoLevel || level == zerolog.Disabled || msg == "" {
		return
	}
	var record otellog.Record
	record.SetTimestamp(time.Now())
	record.SetBody(otellog.StringValue(msg))
	record.SetSeverity(otelSeverity(level))
	record.SetSeverityText(level.String())

	ctx := e.GetCtx()
	if ctx == nil {
		ctx = context.Background()
	}
	h.logger.Emit(ctx, record)
}

func otelSeverity(level zerolog.Level) otellog.Severity {
	switch level {
	case zerolog.TraceLevel:
		return otellog.SeverityTrace
	case zerolog.DebugLevel:
		return otellog.SeverityDebug
	case zerolog.InfoLevel:
		return otellog.SeverityInfo
	case zerolog.WarnLevel:
		return otellog.SeverityWarn
	case zerolog.ErrorLevel:
		return otellog.SeverityError
	default:
		return otellog.SeverityFatal
	}
}
