package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ringfs/ringfs/internal/ringconfig"
	"github.com/ringfs/ringfs/pkg/ring"

	flag "github.com/spf13/pflag"
)

// ReplCmd starts an interactive readline shell over the configured ring,
// modeled on sloty's REPL (cmd/sloty/main.go): a liner.State for
// history/completion, one Go switch per verb, Print* output straight to
// stdout rather than through [IO] since the loop is interactive, not
// single-shot.
func ReplCmd(cfg ringconfig.Config) *Command {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "repl",
		Short: "Start an interactive shell over the ring",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			r, err := ringconfig.Build(cfg)
			if err != nil {
				return err
			}

			repl := &ringREPL{ring: r, dir: cfg.Directory}

			return repl.run()
		},
	}
}

type ringREPL struct {
	ring  *ring.Ring
	dir   string
	liner *liner.State
}

func replHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".ringctl_history")
}

var replCommands = []string{
	"push", "get", "del", "delete", "ls", "list", "vacuum",
	"help", "exit", "quit", "q",
}

func (r *ringREPL) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(replHistoryFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Printf("ringctl - ring buffer shell (directory=%s)\n", r.dir)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("ringctl> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "push":
			r.cmdPush(args)

		case "get":
			r.cmdGet(args)

		case "del", "delete":
			r.cmdDel(args)

		case "ls", "list":
			r.cmdList()

		case "vacuum":
			r.cmdVacuum()

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *ringREPL) saveHistory() {
	if path := replHistoryFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.liner.WriteHistory(f)
			_ = f.Close()
		}
	}
}

func (r *ringREPL) completer(line string) []string {
	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range replCommands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *ringREPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  push <item>     Store item at a freshly chosen empty slot")
	fmt.Println("  get <name>      Fetch the item stored at a slot")
	fmt.Println("  del <name>      Delete (or empty) a slot")
	fmt.Println("  ls              List occupied slot names")
	fmt.Println("  vacuum          Reclaim broken slots")
	fmt.Println("  help            Show this help")
	fmt.Println("  exit / quit / q Exit")
}

func (r *ringREPL) cmdPush(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: push <item>")

		return
	}

	item := strings.Join(args, " ")

	r.printEvent(r.ring.Push(ring.Item(item)))
}

func (r *ringREPL) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: get <name>")

		return
	}

	r.printEvent(r.ring.Get(args[0]))
}

func (r *ringREPL) cmdDel(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: del <name>")

		return
	}

	r.printEvent(r.ring.Del(args[0]))
}

func (r *ringREPL) cmdList() {
	r.printEvent(r.ring.List())
}

func (r *ringREPL) cmdVacuum() {
	r.printEvent(r.ring.Vacuum())
}

// printEvent renders ev directly to stdout, one line per outcome kind. The
// REPL has no concept of an exit code per command, unlike the one-shot
// subcommands' printEvent in cmd_push.go.
func (r *ringREPL) printEvent(ev ring.Event) {
	switch ev.Kind {
	case ring.EventSuccess:
		fmt.Println("ok")

	case ring.EventItemGot:
		fmt.Printf("%s: %s\n", ev.Item.Name, ev.Item.Item)

	case ring.EventNamesGot:
		if len(ev.Names) == 0 {
			fmt.Println("(empty)")

			return
		}

		for _, n := range ev.Names {
			fmt.Println(string(n))
		}

	case ring.EventBrokenItemsRemoved:
		fmt.Printf("removed %d broken item(s)\n", ev.Count)

	case ring.EventNoEntry:
		fmt.Printf("no entry: %s\n", ev.Name)

	case ring.EventBroken:
		fmt.Printf("broken: %s\n", ev.Name)

	case ring.EventAgain:
		fmt.Println("transient failure, retry")

	case ring.EventTooManyItemsAlready:
		fmt.Println("ring is full")

	case ring.EventBadRequest:
		fmt.Printf("bad request: %s\n", ev.Message)

	case ring.EventNoPerm:
		fmt.Printf("permission denied: %s\n", ev.Message)

	default:
		fmt.Printf("unexpected error: %s\n", ev.Message)
	}
}
