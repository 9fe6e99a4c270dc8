package grammar

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func globalGrammar() *Grammar {
	return (&Grammar{
		Synopsis: "prog [--debug] [--config=<path>] <command> [<args>...]",
		Options: []Option{
			{Name: "debug", Kind: Bool},
			{Name: "help", Short: "h", Kind: Bool, Terminal: true},
			{Name: "version", Kind: Bool, Terminal: true},
			{Name: "config", Kind: String},
		},
		Positionals: []Positional{
			{Name: "command"},
			{Name: "args", Optional: true, Repeated: true},
		},
	}).MustValidate()
}

func sendGrammar() *Grammar {
	return (&Grammar{
		Name:     "send",
		Synopsis: "prog send --to=<addr> --amount=<n> [--tag=<t>...]",
		Options: []Option{
			{Name: "to", Kind: String, Required: true},
			{Name: "amount", Kind: String, Required: true},
			{Name: "fee", Kind: String, Default: "100"},
			{Name: "tag", Kind: StringList},
		},
	}).MustValidate()
}

func TestParse_OptionsFirst(t *testing.T) {
	args, err := globalGrammar().Parse(
		[]string{"--debug", "send", "--to=X", "--debug", "extra"},
		OptionsFirst,
	)
	require.NoError(t, err)

	assert.True(t, args.Bool("--debug"))
	assert.False(t, args.Bool("--help"))
	cmd, ok := args.String("<command>")
	assert.True(t, ok)
	assert.Equal(t, "send", cmd)
	assert.Equal(t, []string{"--to=X", "--debug", "extra"}, args.Strings("<args>"))
	assert.Nil(t, args["--config"])
}

func TestParse_OptionsFirst_SeparateValue(t *testing.T) {
	args, err := globalGrammar().Parse([]string{"--config", "cfg.yaml", "query"}, OptionsFirst)
	require.NoError(t, err)

	path, ok := args.String("--config")
	assert.True(t, ok)
	assert.Equal(t, "cfg.yaml", path)
	assert.Equal(t, []string{}, args.Strings("<args>"))
}

func TestParse_Interspersed(t *testing.T) {
	args, err := sendGrammar().Parse(
		[]string{"send", "--to=X", "--amount", "5", "--tag=a", "--tag=b,c"},
		Interspersed,
	)
	require.NoError(t, err)

	assert.Equal(t, Arguments{
		"--to":     "X",
		"--amount": "5",
		"--fee":    "100",
		"--tag":    []string{"a", "b,c"},
	}, args)
}

func TestParse_Terminal(t *testing.T) {
	args, err := globalGrammar().Parse([]string{"--version"}, OptionsFirst)
	require.NoError(t, err)

	assert.True(t, args.Bool("--version"))
	assert.Nil(t, args["<command>"])

	for _, flag := range []string{"--help=false", "--version=false"} {
		args, err = globalGrammar().Parse([]string{flag, "send", "--to=X"}, OptionsFirst)
		require.NoError(t, err, flag)

		cmd, ok := args.String("<command>")
		assert.True(t, ok, flag)
		assert.Equal(t, "send", cmd, flag)
		assert.Equal(t, []string{"--to=X"}, args.Strings("<args>"), flag)
	}

	_, err = globalGrammar().Parse([]string{"--help=false"}, OptionsFirst)
	assert.Error(t, err, "disabled terminal option does not skip validation")
}

func TestParse_Help(t *testing.T) {
	_, err := sendGrammar().Parse([]string{"send", "--help"}, Interspersed)
	assert.True(t, errors.Is(err, ErrHelp))

	_, err = sendGrammar().Parse([]string{"send", "-h"}, Interspersed)
	assert.True(t, errors.Is(err, ErrHelp))
}

func TestParse_UsageErrors(t *testing.T) {
	cases := []struct {
		name    string
		grammar *Grammar
		argv    []string
		mode    Mode
		message string
	}{
		{
			name:    "unknown flag before command",
			grammar: globalGrammar(),
			argv:    []string{"--bogus", "send"},
			mode:    OptionsFirst,
			message: "unknown flag: --bogus",
		},
		{
			name:    "missing value",
			grammar: globalGrammar(),
			argv:    []string{"--config"},
			mode:    OptionsFirst,
			message: "flag needs an argument",
		},
		{
			name:    "missing command",
			grammar: globalGrammar(),
			argv:    []string{"--debug"},
			mode:    OptionsFirst,
			message: "missing required argument <command>",
		},
		{
			name:    "missing required option",
			grammar: sendGrammar(),
			argv:    []string{"send", "--to=X"},
			mode:    Interspersed,
			message: "missing required option --amount",
		},
		{
			name:    "command literal mismatch",
			grammar: sendGrammar(),
			argv:    []string{"lease", "--to=X", "--amount=1"},
			mode:    Interspersed,
			message: `expected command "send"`,
		},
		{
			name:    "unexpected positional",
			grammar: sendGrammar(),
			argv:    []string{"send", "--to=X", "--amount=1", "more"},
			mode:    Interspersed,
			message: `unexpected argument "more"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := tc.grammar.Parse(tc.argv, tc.mode)
			assert.Nil(t, args)
			require.Error(t, err)

			var usageErr *UsageError
			require.True(t, errors.As(err, &usageErr))
			assert.Contains(t, usageErr.Error(), tc.message)
			assert.Equal(t, tc.grammar.Usage(), usageErr.Usage)
		})
	}
}

func TestParse_Exclusive(t *testing.T) {
	g := (&Grammar{
		Name: "query",
		Options: []Option{
			{Name: "address", Kind: String},
			{Name: "tx", Kind: String},
		},
		Exclusive: []Group{{Options: []string{"address", "tx"}, Required: true}},
	}).MustValidate()

	_, err := g.Parse([]string{"query", "--address=A", "--tx=T"}, Interspersed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options --address and --tx are mutually exclusive")

	_, err = g.Parse([]string{"query"}, Interspersed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one of --address | --tx is required")

	args, err := g.Parse([]string{"query", "--tx=T"}, Interspersed)
	require.NoError(t, err)
	assert.Equal(t, Arguments{"--address": nil, "--tx": "T"}, args)
}
