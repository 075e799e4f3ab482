package cli

import (
	"context"

	"github.com/ringfs/ringfs/internal/ringconfig"

	flag "github.com/spf13/pflag"
)

// LsCmd lists every occupied slot name.
func LsCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "ls",
		Short: "List occupied slot names",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			return printEvent(o, r.List())
		},
	}
}
