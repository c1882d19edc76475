package calculation

// Logger receives diagnostic output from a simulation run. The engine
// reports career milestones at info level and per-period arithmetic at
// debug level. Library callers that pass no logger get NopLogger, so a
// run is silent by default.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything sent to it.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
