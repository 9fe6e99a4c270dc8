package send

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/cmd/vsysctl/shared"
	"github.com/vsyslabs/vsysctl/pkg/dispatch"
	"github.com/vsyslabs/vsysctl/pkg/grammar"
)

const maxAttachmentSize = 140

// Grammar declares arguments of the send command.
var Grammar = &grammar.Grammar{
	Name:     "send",
	Summary:  "Transfer tokens from the wallet account to another address.",
	Synopsis: "vsysctl send --to=<addr> --amount=<n> [--fee=<n>] [--attachment=<text>]",
	Options: []grammar.Option{
		{
			Name:     "to",
			Short:    "t",
			Kind:     grammar.String,
			Required: true,
			Usage:    "Recipient `address`",
		},
		{
			Name:     "amount",
			Short:    "a",
			Kind:     grammar.String,
			Required: true,
			Usage:    "Amount to transfer in minimal `units`",
		},
		{
			Name:  "fee",
			Short: "f",
			Kind:  grammar.String,
			Usage: "Transaction fee in minimal `units`, network default when omitted",
		},
		{
			Name:  "attachment",
			Kind:  grammar.String,
			Usage: "Short `text` attached to the transaction, up to 140 bytes",
		},
	},
}

// Request is the payment transaction resolved from send arguments.
type Request struct {
	Network    string `json:"network"`
	Recipient  string `json:"recipient"`
	Amount     uint64 `json:"amount"`
	Fee        uint64 `json:"fee"`
	Attachment string `json:"attachment,omitempty"`
}

// AddTo registers send command in the `registry`.
func AddTo(registry *dispatch.Registry) {
	registry.Register(Grammar, send)
}

func send(_ context.Context, args grammar.Arguments, out io.Writer) error {
	req, err := requestFrom(args)
	if err != nil {
		return err
	}

	return shared.PrintYAML(out, req)
}

func requestFrom(args grammar.Arguments) (*Request, error) {
	var (
		req = &Request{
			Network: viper.GetString("network.name"),
		}
		err error
	)

	if req.Recipient, _ = args.String("--to"); len(req.Recipient) == 0 {
		return nil, grammar.NewUsageError(Grammar, "--to must not be empty")
	}

	amount, _ := args.String("--amount")
	if req.Amount, err = positive("--amount", amount); err != nil {
		return nil, err
	}

	fee, ok := args.String("--fee")
	if !ok {
		fee = viper.GetString("network.fee")
	}

	if req.Fee, err = positive("--fee", fee); err != nil {
		return nil, err
	}

	if req.Attachment, _ = args.String("--attachment"); len(req.Attachment) > maxAttachmentSize {
		return nil, grammar.NewUsageError(Grammar, "--attachment exceeds %d bytes", maxAttachmentSize)
	}

	return req, nil
}

func positive(name, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil || n == 0 {
		return 0, grammar.NewUsageError(Grammar, "%s must be a positive integer, got %q", name, value)
	}

	return n, nil
}
