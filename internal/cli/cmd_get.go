package cli

import (
	"context"
	"errors"

	"github.com/ringfs/ringfs/internal/ringconfig"

	flag "github.com/spf13/pflag"
)

// GetCmd fetches the item stored at a given slot name.
func GetCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "get <name>",
		Short: "Fetch the item stored at a slot",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errors.New("get requires exactly one argument: the slot name")
			}

			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			return printEvent(o, r.Get(args[0]))
		},
	}
}
