package dispatch

import (
	"context"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
)

// Handler executes the command logic upon resolved arguments, writing its output to `out`.
type Handler func(ctx context.Context, args grammar.Arguments, out io.Writer) error

type entry struct {
	grammar *grammar.Grammar
	handler Handler
}

// Registry maps command names to their Grammar and Handler.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds command declared by `g` to the Registry.
// It panics on invalid grammar, nil handler or duplicate command name.
func (r *Registry) Register(g *grammar.Grammar, handler Handler) {
	if len(g.Name) == 0 {
		panic("command grammar without a name")
	}

	if handler == nil {
		panic(errors.Errorf("nil handler for '%s' command", g.Name))
	}

	if _, exists := r.entries[g.Name]; exists {
		panic(errors.Errorf("'%s' command is registered twice", g.Name))
	}

	r.entries[g.Name] = entry{
		grammar: g.MustValidate(),
		handler: handler,
	}
}

// Lookup finds Grammar of the command by its `name`.
func (r *Registry) Lookup(name string) (*grammar.Grammar, bool) {
	e, ok := r.entries[name]
	return e.grammar, ok
}

// Names returns sorted names of all registered commands.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
