package query

import (
	"context"
	"io"

	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/shared"
	"github.com/vsyslabs/vsysctl/pkg/dispatch"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
)

// Grammar declares arguments of the query command.
var Grammar = &grammar.Grammar{
	Name:     "query",
	Summary:  "Look up an address balance or a transaction on the ledger.",
	Synopsis: "vsysctl query (--address=<addr> | --tx=<id>) [--node=<url>...]",
	Options: []grammar.Option{
		{
			Name:  "address",
			Kind:  grammar.String,
			Usage: "Account `address` to look up",
		},
		{
			Name:  "tx",
			Kind:  grammar.String,
			Usage: "Transaction `id` to look up",
		},
		{
			Name:  "node",
			Kind:  grammar.StringList,
			Usage: "Node API `url`, may be repeated",
		},
	},
	Exclusive: []grammar.Group{
		{Options: []string{"address", "tx"}, Required: true},
	},
}

// Request is the ledger lookup resolved from query arguments.
type Request struct {
	Subject string   `json:"subject"`
	ID      string   `json:"id"`
	Nodes   []string `json:"nodes"`
}

// AddTo registers query command in the `registry`.
func AddTo(registry *dispatch.Registry) {
	registry.Register(Grammar, query)
}

func query(_ context.Context, args grammar.Arguments, out io.Writer) error {
	var req = Request{
		Nodes: args.Strings("--node"),
	}

	if len(req.Nodes) == 0 {
		req.Nodes = viper.GetStringSlice("network.nodes")
	}

	if address, ok := args.String("--address"); ok {
		req.Subject, req.ID = "balance", address
	} else {
		tx, _ := args.String("--tx")
		req.Subject, req.ID = "transaction", tx
	}

	return shared.PrintYAML(out, req)
}
