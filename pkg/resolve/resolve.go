package resolve

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
	"github.com/vsyslabs/vsysctl/pkg/term"
)

// Keys the global Grammar is expected to declare.
const (
	HelpKey    = "--help"
	VersionKey = "--version"
	DebugKey   = "--debug"
	ConfigKey  = "--config"
	CommandKey = "<command>"
	ArgsKey    = "<args>"
)

// Kind tags the outcome of resolution.
type Kind int

const (
	// Resolved means arguments satisfy the grammar and may be dispatched.
	Resolved Kind = iota
	// EarlyExit means Message should be printed and the process should end with Code.
	EarlyExit
	// Failed means arguments were rejected, Err holds *grammar.UsageError.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case EarlyExit:
		return "early-exit"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Invocation is the command selected by global resolution with its raw trailing arguments.
type Invocation struct {
	Command string
	Args    []string
}

// Result is the outcome of a single resolution pass.
type Result struct {
	Kind       Kind
	Arguments  grammar.Arguments
	Invocation Invocation
	Message    string
	Code       int
	Err        error
}

// Global resolves global options of `argv` in options-first mode,
// separating them from the command name and its raw arguments.
// The `--help` and `--version` options short-circuit with the usage text and `banner` respectively.
func Global(g *grammar.Grammar, argv []string, banner string) Result {
	args, err := g.Parse(argv, grammar.OptionsFirst)
	if err != nil {
		return failure(g, err)
	}

	switch {
	case args.Bool(HelpKey):
		return Result{Kind: EarlyExit, Arguments: args, Message: g.Usage()}
	case args.Bool(VersionKey):
		return Result{Kind: EarlyExit, Arguments: args, Message: banner}
	}

	command, _ := args.String(CommandKey)

	return Result{
		Kind:      Resolved,
		Arguments: args,
		Invocation: Invocation{
			Command: command,
			Args:    args.Strings(ArgsKey),
		},
	}
}

// Command resolves arguments of the `command` against its own Grammar
// by parsing `[command] + raw`, so the command literal occupies the first positional slot.
func Command(g *grammar.Grammar, command string, raw []string, logger *term.Logger) Result {
	argv := make([]string, 0, len(raw)+1)
	argv = append(argv, command)
	argv = append(argv, raw...)

	logger.Debugf("resolving arguments of '%s' command", command)

	args, err := g.Parse(argv, grammar.Interspersed)
	if err != nil {
		return failure(g, err)
	}

	term.LogArguments(logger, logging.DEBUG, fmt.Sprintf("'%s' command arguments", command), args)

	return Result{
		Kind:      Resolved,
		Arguments: args,
		Invocation: Invocation{
			Command: command,
			Args:    raw,
		},
	}
}

func failure(g *grammar.Grammar, err error) Result {
	if errors.Is(err, grammar.ErrHelp) {
		return Result{Kind: EarlyExit, Message: g.Usage()}
	}

	var usage = g.Usage()
	var usageErr *grammar.UsageError
	if errors.As(err, &usageErr) {
		usage = usageErr.Usage
	}

	return Result{
		Kind:    Failed,
		Message: usage,
		Code:    ExitUsage,
		Err:     err,
	}
}
