package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/moodscreen/internal/client/router"
	"github.com/dmitrijs2005/moodscreen/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	hasCredential(ctx context.Context) bool
	Open(ctx context.Context, path string) error
	History(ctx context.Context, args []string) error
	Total(ctx context.Context) error
	Logout(ctx context.Context) error
	Routes() error
	Stats() error
}

// screenCommands maps REPL commands to the route they open.
var screenCommands = map[string]string{
	"login":         router.LoginPath,
	"register":      router.RegisterPath,
	"home":          router.HomePath,
	"face":          router.FaceDetectionPath,
	"questionnaire": router.QuestionnairePath,
	"q":             router.QuestionnairePath,
	"result":        router.ResultPath,
	"combined":      router.CombinedResultPath,
}

// runREPL reads commands line by line from in and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Screen commands
// (login, register, home, face, questionnaire, result, combined, go <path>)
// are navigations, so the guard decides where they end up. Command errors are
// logged and the loop carries on. The loop exits on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, log logging.Logger) {
	for {
		printlnFn(fmt.Sprintf("ms %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error

		switch cmd {
		case "help":
			if a.hasCredential(ctx) {
				printlnFn("Available commands: home, face, (q)uestionnaire, result, combined, history [page [size]], total, go <path>, routes, stats, logout, exit")
			} else {
				printlnFn("Available commands: login, register, go <path>, routes, stats, exit")
			}

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			cmdErr = a.Open(ctx, args[0])

		case "history":
			cmdErr = a.History(ctx, args)

		case "total":
			cmdErr = a.Total(ctx)

		case "routes":
			cmdErr = a.Routes()

		case "stats":
			cmdErr = a.Stats()

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			path, ok := screenCommands[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			cmdErr = a.Open(ctx, path)
		}

		if cmdErr != nil {
			log.Error(ctx, "command failed", "command", cmd, "error", cmdErr)
		}

		if err != nil {
			return
		}
	}
}
