package dispatch

import "io"

type (
	DispatcherOption func(args *dispatcherArgs)

	dispatcherArgs struct {
		stdout io.Writer
	}
)

// WithStdout can be specified where command handlers write their output.
// Default is local os.Stdout.
func WithStdout(stdout io.Writer) DispatcherOption {
	return func(args *dispatcherArgs) {
		args.stdout = stdout
	}
}
