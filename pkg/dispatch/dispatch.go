package dispatch

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
	"github.com/vsyslabs/vsysctl/pkg/resolve"
	"github.com/vsyslabs/vsysctl/pkg/term"
)

var (
	// ErrUnknownCommand is returned when the requested command is not registered.
	ErrUnknownCommand = errors.New("unknown command")
)

type resolveFunc func(g *grammar.Grammar, command string, raw []string, logger *term.Logger) resolve.Result

// Dispatcher routes resolved invocations to command handlers.
type Dispatcher struct {
	*dispatcherArgs
	registry *Registry
	logger   *term.Logger
	resolve  resolveFunc
}

// NewDispatcher creates Dispatcher for commands of the `registry`.
func NewDispatcher(registry *Registry, logger *term.Logger, options ...DispatcherOption) *Dispatcher {
	var args = &dispatcherArgs{
		stdout: os.Stdout,
	}

	for i := range options {
		options[i](args)
	}

	return &Dispatcher{
		dispatcherArgs: args,
		registry:       registry,
		logger:         logger,
		resolve:        resolve.Command,
	}
}

// Dispatch resolves command arguments of `inv` against the command grammar and executes its handler.
// Requesting help for the command prints its usage text instead.
func (d *Dispatcher) Dispatch(ctx context.Context, inv resolve.Invocation) error {
	e, ok := d.registry.entries[inv.Command]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "'%s' is not one of [%s]",
			inv.Command, strings.Join(d.registry.Names(), ", "),
		)
	}

	res := d.resolve(e.grammar, inv.Command, inv.Args, d.logger)

	switch res.Kind {
	case resolve.EarlyExit:
		_, _ = fmt.Fprint(d.stdout, res.Message)
		return nil
	case resolve.Failed:
		return res.Err
	}

	d.logger.Debugf("executing '%s' command", inv.Command)

	return e.handler(ctx, res.Arguments, d.stdout)
}
