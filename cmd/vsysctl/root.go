package vsysctl

import (
	"context"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/account"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/query"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/send"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/shared"
	"github.com/vsyslabs/vsysctl/pkg/dispatch"
	"github.com/vsyslabs/vsysctl/pkg/resolve"
	"github.com/vsyslabs/vsysctl/pkg/term"
)

// registry holds all commands available to the root command.
var registry = dispatch.NewRegistry()

// newRootCmd creates the base command, which owns the whole argument vector
// and resolves it in two phases: global options first, then the selected command.
func newRootCmd(registry *dispatch.Registry) *cobra.Command {
	return &cobra.Command{
		Use:                "vsysctl",
		Short:              "Command-line client for the V Systems network",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: shared.WithHandleErrors(func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, registry)
		}),
	}
}

// Execute resolves process arguments and runs the requested command.
// This is called by main.main(). It terminates the process with non-zero status on failure.
func Execute() {
	if err := newRootCmd(registry).ExecuteContext(context.Background()); err != nil {
		os.Exit(shared.ExitCode(err))
	}
}

func init() {
	account.AddTo(registry)
	send.AddTo(registry)
	query.AddTo(registry)
}

func run(cmd *cobra.Command, argv []string, registry *dispatch.Registry) error {
	global := resolve.Global(shared.GlobalGrammar, argv, shared.VersionBanner())

	switch global.Kind {
	case resolve.EarlyExit:
		_, _ = fmt.Fprint(cmd.OutOrStdout(), global.Message)
		return nil
	case resolve.Failed:
		return global.Err
	}

	configPath, _ := global.Arguments.String(resolve.ConfigKey)
	if err := shared.InitConfig(configPath); err != nil {
		return err
	}

	logger := term.NewLogger(term.Verbosity(global.Arguments.Bool(resolve.DebugKey)),
		term.WithStderr(cmd.ErrOrStderr()),
		term.WithFormat(viper.GetString("logging.format")),
	)

	term.LogArguments(logger, logging.DEBUG, "global arguments", global.Arguments)

	return dispatch.NewDispatcher(registry, logger,
		dispatch.WithStdout(cmd.OutOrStdout()),
	).Dispatch(cmd.Context(), global.Invocation)
}
