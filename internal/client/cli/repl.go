package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Open(ctx context.Context, n int) error
	Profile(ctx context.Context) error
	Lang(ctx context.Context, lang string) error
	Back(ctx context.Context) error
	Render(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the account client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'; the current view is rendered after every
// command that may have changed it. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	  - help             show available commands
//	  - go <path>        navigate to a path, e.g. go /activate/1234
//	  - home             show the user list
//	  - signup           fill in and submit the sign-up form
//	  - login            fill in and submit the login form
//	  - next | prev      page through the user list
//	  - open <n>         show the n-th user of the current page
//	  - lang <en|tr>     switch the interface language
//	  - back             return to the previous path
//	  - exit | quit      leave the program
//
//	Logged in, additionally:
//	  - profile          show your own profile
//	  - logout           log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ac %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <path>, home, next, prev, open <n>, profile, logout, lang <en|tr>, back, exit")
			} else {
				printlnFn("Available commands: go <path>, home, signup, login, next, prev, open <n>, lang <en|tr>, back, exit")
			}
			continue

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "home":
			_ = a.Go(ctx, "/")

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "open":
			n, err := strconv.Atoi(firstArg(args))
			if err != nil || n < 1 {
				printlnFn("Usage: open <n>")
				continue
			}
			_ = a.Open(ctx, n)

		case "profile":
			_ = a.Profile(ctx)

		case "lang":
			if len(args) == 0 {
				printlnFn("Usage: lang <en|tr>")
				continue
			}
			_ = a.Lang(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		a.Render(ctx)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
