package account

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/shared"
	"github.com/vsyslabs/vsysctl/pkg/dispatch"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
)

var networks = map[string]bool{
	"mainnet": true,
	"testnet": true,
}

// Grammar declares arguments of the account command.
var Grammar = &grammar.Grammar{
	Name:     "account",
	Summary:  "Derive the wallet account from a seed phrase.",
	Synopsis: "vsysctl account [--seed=<seed>] [--nonce=<n>] [--network=<net>]",
	Options: []grammar.Option{
		{
			Name:  "seed",
			Short: "s",
			Kind:  grammar.String,
			Usage: "Wallet seed `phrase`, a new one is generated when omitted",
		},
		{
			Name:    "nonce",
			Short:   "n",
			Kind:    grammar.String,
			Default: "0",
			Usage:   "Account `index` derived from the seed",
		},
		{
			Name:  "network",
			Kind:  grammar.String,
			Usage: "Target `network`: mainnet or testnet",
		},
	},
}

// Request is the account derivation resolved from account arguments.
type Request struct {
	Network      string `json:"network"`
	Nonce        uint32 `json:"nonce"`
	SeedProvided bool   `json:"seedProvided"`
}

// AddTo registers account command in the `registry`.
func AddTo(registry *dispatch.Registry) {
	registry.Register(Grammar, account)
}

func account(_ context.Context, args grammar.Arguments, out io.Writer) error {
	network, ok := args.String("--network")
	if !ok {
		network = viper.GetString("network.name")
	}

	if !networks[network] {
		return grammar.NewUsageError(Grammar, "unsupported network %q", network)
	}

	nonce, _ := args.String("--nonce")
	n, err := strconv.ParseUint(nonce, 10, 32)
	if err != nil {
		return grammar.NewUsageError(Grammar, "--nonce must be a non-negative integer, got %q", nonce)
	}

	return shared.PrintYAML(out, Request{
		Network:      network,
		Nonce:        uint32(n),
		SeedProvided: args.Has("--seed"),
	})
}
