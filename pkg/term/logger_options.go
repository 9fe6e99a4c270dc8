package term

import "io"

type (
	LoggerOption func(args *loggerArgs)

	loggerArgs struct {
		stderr io.Writer
		module string
		format string
		color  bool
	}
)

// WithStderr can be specified where to write log records.
// Default is local os.Stderr.
func WithStderr(stderr io.Writer) LoggerOption {
	return func(args *loggerArgs) {
		args.stderr = stderr
	}
}

// WithModule sets go-logging module name of the Logger.
// Default is "vsysctl".
func WithModule(module string) LoggerOption {
	return func(args *loggerArgs) {
		if len(module) != 0 {
			args.module = module
		}
	}
}

// WithFormat sets go-logging format string of the Logger.
// Default is DefaultFormat.
func WithFormat(format string) LoggerOption {
	return func(args *loggerArgs) {
		if len(format) != 0 {
			args.format = format
		}
	}
}

// WithColor toggles color verbs of the format.
// Default is enabled only when os.Stderr is a terminal.
func WithColor(color bool) LoggerOption {
	return func(args *loggerArgs) {
		args.color = color
	}
}
