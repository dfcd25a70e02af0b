package appconfig

import (
	"fmt"
	"strings"
)

const (
	ExporterJaeger = "jaeger"
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
)

type TracingExporters []string

func (e *TracingExporters) Decode(value string) error {
	*e = TracingExporters{}
	for _, name := range strings.Split(value, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		switch name {
		case ExporterJaeger, ExporterOTLP, ExporterStdout:
			*e = append(*e, name)
		default:
			return fmt.Errorf("invalid tracing exporter: expect one of jaeger, otlp, stdout, but got: %s", name)
		}
	}
	return nil
}
