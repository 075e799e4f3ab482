package cli

import (
	"context"

	"github.com/ringfs/ringfs/internal/ringconfig"

	flag "github.com/spf13/pflag"
)

// VacuumCmd sweeps the ring for broken slots and reclaims them.
func VacuumCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("vacuum", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "vacuum",
		Short: "Reclaim broken slots",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			return printEvent(o, r.Vacuum())
		},
	}
}
