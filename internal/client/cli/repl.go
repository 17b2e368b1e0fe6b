package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Quotes(ctx context.Context) error
	QuoteStatus(ctx context.Context, args []string) error
	Tasks(ctx context.Context) error
	TaskStatus(ctx context.Context, args []string) error
	Next(ctx context.Context, args []string) error
	Feedback(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login [staff|client], next <kind> <status>, feedback <token>, stats, exit"
	helpSignedIn  = "Available commands: whoami, quotes, quote-status <id> <status>, tasks, task-status <id> <status>, next <kind> <status>, feedback <token>, stats, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the bizadmin CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Commands that prompt for more input read from the same reader, so reader
// must be the App's own. Unknown commands are reported back to the user. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Command errors are printed and the loop continues. An error caused by an
// ended session is not printed again: the session-ended hook has already
// told the user where to sign in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ba %s > ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "login":
			err = a.Login(ctx, args)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "q", "quotes":
			err = a.Quotes(ctx)

		case "quote-status":
			err = a.QuoteStatus(ctx, args)

		case "t", "tasks":
			err = a.Tasks(ctx)

		case "task-status":
			err = a.TaskStatus(ctx, args)

		case "next":
			err = a.Next(ctx, args)

		case "feedback":
			err = a.Feedback(ctx, args)

		case "stats":
			err = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		report(err)
	}
}

func report(err error) {
	if err == nil || errors.Is(err, client.ErrSessionEnded) {
		return
	}
	printlnFn("Error:", err)
}
