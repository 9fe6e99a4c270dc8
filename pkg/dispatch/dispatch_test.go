package dispatch

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
	"github.com/vsyslabs/vsysctl/pkg/resolve"
	"github.com/vsyslabs/vsysctl/pkg/term"
)

var sendGrammar = &grammar.Grammar{
	Name:     "send",
	Synopsis: "prog send --to=<addr>",
	Options: []grammar.Option{
		{Name: "to", Kind: grammar.String, Required: true},
	},
}

func newTestDispatcher(t *testing.T, handler Handler) (*Dispatcher, *bytes.Buffer) {
	var (
		out      bytes.Buffer
		registry = NewRegistry()
		logger   = term.NewLogger(logging.INFO, term.WithStderr(io.Discard), term.WithColor(false))
	)

	registry.Register(sendGrammar, handler)

	return NewDispatcher(registry, logger, WithStdout(&out)), &out
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, grammar.Arguments, io.Writer) error { return nil }

	registry.Register(sendGrammar, noop)
	registry.Register(&grammar.Grammar{Name: "account"}, noop)

	g, ok := registry.Lookup("send")
	assert.True(t, ok)
	assert.Same(t, sendGrammar, g)

	_, ok = registry.Lookup("bogus")
	assert.False(t, ok)

	assert.Equal(t, []string{"account", "send"}, registry.Names())

	assert.Panics(t, func() { registry.Register(sendGrammar, noop) }, "duplicate")
	assert.Panics(t, func() { registry.Register(&grammar.Grammar{}, noop) }, "unnamed")
	assert.Panics(t, func() { registry.Register(&grammar.Grammar{Name: "query"}, nil) }, "nil handler")
	assert.Panics(t, func() {
		registry.Register(&grammar.Grammar{
			Name:    "lease",
			Options: []grammar.Option{{Name: "a"}, {Name: "a"}},
		}, noop)
	}, "invalid grammar")
}

func TestDispatcher_Dispatch(t *testing.T) {
	var received grammar.Arguments

	d, out := newTestDispatcher(t, func(_ context.Context, args grammar.Arguments, out io.Writer) error {
		received = args
		_, err := io.WriteString(out, "sent\n")
		return err
	})

	err := d.Dispatch(context.Background(), resolve.Invocation{Command: "send", Args: []string{"--to=X"}})
	require.NoError(t, err)
	assert.Equal(t, grammar.Arguments{"--to": "X"}, received)
	assert.Equal(t, "sent\n", out.String())
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t, func(context.Context, grammar.Arguments, io.Writer) error {
		t.Fatal("handler must not be called")
		return nil
	})

	resolved := false
	d.resolve = func(*grammar.Grammar, string, []string, *term.Logger) resolve.Result {
		resolved = true
		return resolve.Result{}
	}

	err := d.Dispatch(context.Background(), resolve.Invocation{Command: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	assert.Equal(t, "'bogus' is not one of [send]: unknown command", err.Error())
	assert.False(t, resolved)
}

func TestDispatcher_UsageError(t *testing.T) {
	d, out := newTestDispatcher(t, func(context.Context, grammar.Arguments, io.Writer) error {
		t.Fatal("handler must not be called")
		return nil
	})

	err := d.Dispatch(context.Background(), resolve.Invocation{Command: "send", Args: []string{"--amount=1"}})
	require.Error(t, err)

	var usageErr *grammar.UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, sendGrammar.Usage(), usageErr.Usage)
	assert.Empty(t, out.String())
}

func TestDispatcher_CommandHelp(t *testing.T) {
	d, out := newTestDispatcher(t, func(context.Context, grammar.Arguments, io.Writer) error {
		t.Fatal("handler must not be called")
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), resolve.Invocation{Command: "send", Args: []string{"-h"}}))
	assert.Equal(t, sendGrammar.Usage(), out.String())
}

func TestDispatcher_HandlerError(t *testing.T) {
	failure := errors.New("node unreachable")

	d, _ := newTestDispatcher(t, func(context.Context, grammar.Arguments, io.Writer) error {
		return failure
	})

	err := d.Dispatch(context.Background(), resolve.Invocation{Command: "send", Args: []string{"--to=X"}})
	assert.Equal(t, failure, err)
}
