package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Resources() []string
	Use(ctx context.Context, name string) error
	Modes(ctx context.Context) error
	Mode(ctx context.Context, name string) error
	Set(ctx context.Context, key, value string) error
	Unset(ctx context.Context, key string) error
	Search(ctx context.Context) error
	Sort(ctx context.Context, by, dir string) error
	Find(ctx context.Context, term string) error
	Filter(ctx context.Context, category string) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	History(ctx context.Context) error
}

const helpText = `Available commands:
  use <resource>          switch screen (%s)
  modes                   list query modes of the current screen
  mode <name>             select a query mode and fetch
  set <param> <value>     set a query parameter (applied by 'search')
  unset <param>           clear a query parameter
  search                  fetch with the current mode and parameters
  sort <field> [asc|desc] sort and fetch
  find [text]             filter the loaded rows locally
  filter <category|all>   filter the loaded rows by category
  (l)ist                  show the loaded rows
  refresh                 fetch again
  add                     create a record
  edit <id>               edit a record
  delete <id>             delete a record
  history                 show recent writes
  exit | quit             leave the program`

// readLine reads one line without the trailing newline. ok is false at EOF
// with nothing read.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// runREPL starts a read–eval–print loop over reader.
//
// It reads a line, parses the first token as the command and dispatches to
// methods on 'a'. Unknown commands and missing arguments are reported back to
// the user. The loop exits on EOF, on "exit"/"quit", or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sa %s> ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

		switch cmd {
		case "help":
			printlnFn(fmt.Sprintf(helpText, strings.Join(a.Resources(), ", ")))

		case "use":
			if len(args) != 1 {
				printlnFn("Usage: use <resource>")
				continue
			}
			_ = a.Use(ctx, args[0])

		case "modes":
			_ = a.Modes(ctx)

		case "mode":
			if len(args) != 1 {
				printlnFn("Usage: mode <name>")
				continue
			}
			_ = a.Mode(ctx, args[0])

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <param> <value>")
				continue
			}
			value := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))
			_ = a.Set(ctx, args[0], value)

		case "unset":
			if len(args) != 1 {
				printlnFn("Usage: unset <param>")
				continue
			}
			_ = a.Unset(ctx, args[0])

		case "search":
			_ = a.Search(ctx)

		case "sort":
			if len(args) < 1 || len(args) > 2 {
				printlnFn("Usage: sort <field> [asc|desc]")
				continue
			}
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}
			_ = a.Sort(ctx, args[0], dir)

		case "find":
			_ = a.Find(ctx, rest)

		case "filter":
			if len(args) != 1 {
				printlnFn("Usage: filter <category|all>")
				continue
			}
			_ = a.Filter(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "history":
			_ = a.History(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
