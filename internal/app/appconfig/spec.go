package appconfig

import (
	"exusiai.dev/beatmap/internal/app/appcontext"
)

type ConfigSpec struct {
	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) for the ease of log collection.
	// Logs always go to stderr; stdout is reserved for command output.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is an optional path of a rotated log file that receives a copy of every log line.
	LogFile string `split_words:"true"`

	// DevMode to indicate development mode. When true, the logger runs at trace level.
	DevMode bool `split_words:"true"`

	// MaxConcurrentLoads bounds how many documents a project load or a scan reads at once.
	MaxConcurrentLoads int `required:"true" split_words:"true" default:"4"`

	// InfoFileNames are the file names probed, in order, for the Info document of a project directory.
	InfoFileNames []string `required:"true" split_words:"true" default:"Info.dat,info.dat"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters TracingExporters `split_words:"true" default:"stdout"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
