package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ringfs/ringfs/internal/ringconfig"
	"github.com/ringfs/ringfs/pkg/ring"

	flag "github.com/spf13/pflag"
)

// PushCmd stores an item at a freshly chosen empty slot. The item is read
// from the positional argument, or from stdin when "-" is given (or no
// argument at all).
func PushCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("push", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "push [item|-]",
		Short: "Store an item at a freshly chosen empty slot",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			item, err := readItemArg(args)
			if err != nil {
				return err
			}

			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			ev := r.Push(ring.Item(item))

			return printEvent(o, ev)
		},
	}
}

// readItemArg resolves the item payload from args[0], or stdin if absent or
// "-".
func readItemArg(args []string) ([]byte, error) {
	if len(args) > 1 {
		return nil, errors.New("push takes at most one argument")
	}

	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}

	return []byte(args[0]), nil
}

// printEvent renders ev to o, returning a non-nil error only for outcomes
// that should produce a non-zero exit code.
func printEvent(o *IO, ev ring.Event) error {
	switch ev.Kind {
	case ring.EventSuccess:
		o.Println("ok")
		return nil

	case ring.EventItemGot:
		o.Printf("%s\n", ev.Item.Item)
		return nil

	case ring.EventNamesGot:
		for _, n := range ev.Names {
			o.Println(string(n))
		}

		return nil

	case ring.EventBrokenItemsRemoved:
		o.Printf("removed %d broken item(s)\n", ev.Count)
		return nil

	case ring.EventNoEntry:
		return fmt.Errorf("no entry: %s", ev.Name)

	case ring.EventBroken:
		return fmt.Errorf("broken: %s", ev.Name)

	case ring.EventAgain:
		return errors.New("transient failure, retry")

	case ring.EventTooManyItemsAlready:
		return errors.New("ring is full")

	case ring.EventBadRequest:
		return fmt.Errorf("bad request: %s", ev.Message)

	case ring.EventNoPerm:
		return fmt.Errorf("permission denied: %s", ev.Message)

	default:
		return fmt.Errorf("unexpected error: %s", ev.Message)
	}
}
