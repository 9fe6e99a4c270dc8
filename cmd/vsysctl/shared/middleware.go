package shared

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/pkg/dispatch"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
	"github.com/vsyslabs/vsysctl/pkg/resolve"
)

// WithHandleErrors wraps cobra.Command with error handling middleware.
// Usage errors are reported together with the usage text of the grammar which rejected the arguments.
func WithHandleErrors(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}

		var usageErr *grammar.UsageError
		if errors.As(err, &usageErr) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), usageErr.Error())
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), usageErr.Usage)
			return err
		}

		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), viper.GetString("cli.error_emoji"), "Error:", err)

		return err
	}
}

// ExitCode maps error returned from the command to process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return resolve.ExitOK
	case errors.Is(err, &grammar.UsageError{}), errors.Is(err, dispatch.ErrUnknownCommand):
		return resolve.ExitUsage
	default:
		return resolve.ExitFailure
	}
}
