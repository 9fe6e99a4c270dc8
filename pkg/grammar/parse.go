package grammar

import (
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

// Mode defines how options and positionals may be mixed in the argument vector.
type Mode int

const (
	// Interspersed allows options to appear anywhere among positionals.
	Interspersed Mode = iota
	// OptionsFirst recognises options only before the first positional,
	// everything starting from it is passed through unexamined.
	OptionsFirst
)

var (
	// ErrHelp is returned by Parse when `--help` is passed to a Grammar which does not declare it.
	ErrHelp = errors.New("help requested")
)

// Parse validates `argv` against the Grammar and extracts resolved Arguments.
// Malformed input results in *UsageError carrying the Grammar's usage text.
func (g *Grammar) Parse(argv []string, mode Mode) (Arguments, error) {
	fs := g.flagSet()
	fs.SetInterspersed(mode == Interspersed)

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}

		return nil, g.usageError(err)
	}

	var (
		args     = make(Arguments, len(g.Options)+len(g.Positionals))
		terminal bool
	)

	for _, opt := range g.Options {
		value, err := optionValue(fs, opt)
		if err != nil {
			return nil, g.usageError(err)
		}

		args[opt.Key()] = value

		if opt.Terminal && args.Bool(opt.Key()) {
			terminal = true
		}
	}

	if terminal {
		g.fillPositionals(args)
		return args, nil
	}

	if err := g.checkRequired(fs); err != nil {
		return nil, err
	}

	if err := g.checkExclusive(fs); err != nil {
		return nil, err
	}

	if err := g.bindPositionals(fs.Args(), args); err != nil {
		return nil, err
	}

	return args, nil
}

func optionValue(fs *flag.FlagSet, opt Option) (interface{}, error) {
	switch opt.Kind {
	case Bool:
		return fs.GetBool(opt.Name)
	case String:
		if !fs.Changed(opt.Name) && len(opt.Default) == 0 {
			return nil, nil
		}
		return fs.GetString(opt.Name)
	case StringList:
		return fs.GetStringArray(opt.Name)
	}

	return nil, errors.Errorf("option --%s has unsupported kind %d", opt.Name, opt.Kind)
}

func (g *Grammar) checkRequired(fs *flag.FlagSet) error {
	for _, opt := range g.Options {
		if opt.Required && !fs.Changed(opt.Name) {
			return g.usageError(errors.Errorf("missing required option --%s", opt.Name))
		}
	}

	return nil
}

func (g *Grammar) checkExclusive(fs *flag.FlagSet) error {
	for _, group := range g.Exclusive {
		var present []string

		for _, name := range group.Options {
			if fs.Changed(name) {
				present = append(present, "--"+name)
			}
		}

		switch {
		case len(present) > 1:
			return g.usageError(errors.Errorf("options %s are mutually exclusive",
				strings.Join(present, " and "),
			))
		case len(present) == 0 && group.Required:
			return g.usageError(errors.Errorf("one of --%s is required",
				strings.Join(group.Options, " | --"),
			))
		}
	}

	return nil
}

func (g *Grammar) bindPositionals(rest []string, args Arguments) error {
	if len(g.Name) != 0 {
		if len(rest) == 0 || rest[0] != g.Name {
			return g.usageError(errors.Errorf("expected command %q", g.Name))
		}
		rest = rest[1:]
	}

	for _, pos := range g.Positionals {
		if pos.Repeated {
			if len(rest) == 0 && !pos.Optional {
				return g.usageError(errors.Errorf("missing required argument %s", pos.Key()))
			}

			args[pos.Key()] = append([]string{}, rest...)
			rest = nil
			break
		}

		if len(rest) == 0 {
			if !pos.Optional {
				return g.usageError(errors.Errorf("missing required argument %s", pos.Key()))
			}

			args[pos.Key()] = nil
			continue
		}

		args[pos.Key()] = rest[0]
		rest = rest[1:]
	}

	if len(rest) != 0 {
		return g.usageError(errors.Errorf("unexpected argument %q", rest[0]))
	}

	return nil
}

// fillPositionals stores empty values for positionals skipped by a terminal option.
func (g *Grammar) fillPositionals(args Arguments) {
	for _, pos := range g.Positionals {
		if pos.Repeated {
			args[pos.Key()] = []string{}
			continue
		}
		args[pos.Key()] = nil
	}
}
