package shared

import (
	"github.com/vsyslabs/vsysctl/pkg/grammar"
)

// GlobalGrammar declares options accepted before the command name.
var GlobalGrammar = (&grammar.Grammar{
	Summary: "Command-line client for the V Systems network.",
	Synopsis: `
		vsysctl [--debug] [--config=<path>] <command> [<args>...]
		vsysctl (--help | --version)`,
	Options: []grammar.Option{
		{
			Name:  "debug",
			Short: "d",
			Kind:  grammar.Bool,
			Usage: "Log resolved arguments and other diagnostics",
		},
		{
			Name:     "help",
			Short:    "h",
			Kind:     grammar.Bool,
			Terminal: true,
			Usage:    "Show this usage text and exit",
		},
		{
			Name:     "version",
			Short:    "v",
			Kind:     grammar.Bool,
			Terminal: true,
			Usage:    "Show version banner and exit",
		},
		{
			Name:  "config",
			Short: "c",
			Kind:  grammar.String,
			Usage: "Read configuration from `path` instead of ./.vsysctl.yaml",
		},
	},
	Positionals: []grammar.Positional{
		{Name: "command"},
		{Name: "args", Optional: true, Repeated: true},
	},
}).MustValidate()
