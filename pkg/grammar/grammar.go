package grammar

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

// Kind defines the value type an Option binds to.
type Kind int

const (
	// Bool options take no value and resolve to true when present.
	Bool Kind = iota
	// String options take a single value.
	String
	// StringList options may be repeated, every occurrence is collected.
	StringList
)

type (
	// Grammar is the declared argument schema of one parsing scope:
	// either the global scope or a single command.
	Grammar struct {
		// Name is the command literal which occupies the first positional slot.
		// It is empty for the global scope.
		Name string
		// Summary is a one-line description printed on top of the usage text.
		Summary string
		// Synopsis holds the usage patterns, one per line.
		Synopsis string

		Options     []Option
		Positionals []Positional
		Exclusive   []Group
	}

	// Option defines a single `--name` flag of the Grammar.
	Option struct {
		Name     string
		Short    string
		Kind     Kind
		Default  string
		Required bool
		// Terminal options short-circuit validation of required options and positionals,
		// which allows things like `--help` or `--version` to be used on their own.
		Terminal bool
		// Usage is rendered into the options table, a back-quoted word is used as value placeholder.
		Usage string
	}

	// Positional defines a positional `<name>` slot of the Grammar.
	Positional struct {
		Name     string
		Optional bool
		// Repeated positional collects all remaining arguments, it must be the last one.
		Repeated bool
	}

	// Group defines a set of mutually exclusive options.
	Group struct {
		Options []string
		// Required group needs exactly one of its options to be present.
		Required bool
	}
)

// Key returns the name under which Option value is stored in Arguments.
func (o Option) Key() string {
	return "--" + o.Name
}

// Key returns the name under which Positional value is stored in Arguments.
func (p Positional) Key() string {
	return "<" + p.Name + ">"
}

// Validate checks whether the Grammar declaration itself is consistent.
func (g *Grammar) Validate() error {
	var (
		names  = make(map[string]bool)
		shorts = make(map[string]bool)
	)

	for _, opt := range g.Options {
		if len(opt.Name) == 0 {
			return errors.New("option without a name")
		}

		if names[opt.Name] {
			return errors.Errorf("option --%s is declared twice", opt.Name)
		}
		names[opt.Name] = true

		if len(opt.Short) > 1 {
			return errors.Errorf("option --%s has multi-character shorthand %q", opt.Name, opt.Short)
		}

		if len(opt.Short) == 1 {
			if shorts[opt.Short] {
				return errors.Errorf("shorthand -%s is declared twice", opt.Short)
			}
			shorts[opt.Short] = true
		}
	}

	for i, pos := range g.Positionals {
		if len(pos.Name) == 0 {
			return errors.Errorf("positional #%d without a name", i)
		}

		if pos.Repeated && i != len(g.Positionals)-1 {
			return errors.Errorf("repeated positional <%s> must be the last one", pos.Name)
		}
	}

	for _, group := range g.Exclusive {
		if len(group.Options) < 2 {
			return errors.Errorf("exclusive group %v must contain at least two options", group.Options)
		}

		for _, name := range group.Options {
			if !names[name] {
				return errors.Errorf("exclusive group refers to undeclared option --%s", name)
			}
		}
	}

	return nil
}

// MustValidate is like Validate but panics on inconsistent declaration.
func (g *Grammar) MustValidate() *Grammar {
	if err := g.Validate(); err != nil {
		panic(errors.Wrapf(err, "invalid grammar %q", g.Name))
	}

	return g
}

// Usage renders the usage text of the Grammar.
func (g *Grammar) Usage() string {
	var b strings.Builder

	if len(g.Summary) != 0 {
		b.WriteString(g.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n")
	for _, line := range strings.Split(strings.TrimSpace(g.Synopsis), "\n") {
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}

	if len(g.Options) != 0 {
		b.WriteString("\nOptions:\n")
		b.WriteString(g.flagSet().FlagUsages())
	}

	return b.String()
}

func (g *Grammar) scope() string {
	if len(g.Name) == 0 {
		return "global"
	}

	return g.Name
}

func (g *Grammar) option(name string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.Name == name {
			return opt, true
		}
	}

	return Option{}, false
}

func (g *Grammar) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(g.scope(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	for _, opt := range g.Options {
		switch opt.Kind {
		case Bool:
			fs.BoolP(opt.Name, opt.Short, false, opt.Usage)
		case String:
			fs.StringP(opt.Name, opt.Short, opt.Default, opt.Usage)
		case StringList:
			fs.StringArrayP(opt.Name, opt.Short, []string{}, opt.Usage)
		}
	}

	return fs
}
