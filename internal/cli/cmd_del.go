package cli

import (
	"context"
	"errors"

	"github.com/ringfs/ringfs/internal/ringconfig"

	flag "github.com/spf13/pflag"
)

// DelCmd removes (or empties, per the configured delete strategy) the slot
// at a given name.
func DelCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("del", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "del <name>",
		Short: "Delete the item stored at a slot",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return errors.New("del requires exactly one argument: the slot name")
			}

			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			return printEvent(o, r.Del(args[0]))
		},
	}
}
