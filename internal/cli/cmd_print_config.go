package cli

import (
	"context"

	"github.com/ringfs/ringfs/internal/ringconfig"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd shows the resolved configuration, useful for confirming
// what directory, checksum algorithm, and delete strategy a command will
// actually use before running something destructive.
func PrintConfigCmd(cfg ringconfig.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			o.Println("directory=" + cfg.Directory)
			o.Println("checksum_algorithm=" + cfg.ChecksumAlgo)
			o.Println("delete_strategy=" + cfg.DeleteStrategy)

			return nil
		},
	}
}
