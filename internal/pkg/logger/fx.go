package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxLogger forwards fx lifecycle events to zerolog. Successful events are logged at
// debug so command output stays quiet; failures surface at error.
type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		for _, rtype := range e.OutputTypeNames {
			l.l.Debug().Str("constructor", e.ConstructorName).Str("module", e.ModuleName).Msgf("provided: %s", rtype)
		}
	case *fxevent.Invoked:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("stack", e.Trace).Msg("invoke failed")
			return
		}
		l.l.Debug().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStart hook failed")
			return
		}
		l.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("OnStop hook failed")
			return
		}
		l.l.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("OnStop hook executed")
	case *fxevent.Started:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("start failed")
			return
		}
		l.l.Debug().Msg("started")
	case *fxevent.Stopped:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Msg("stop failed")
		}
	}
}
