package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Stats(ctx context.Context, date string) error
	AddMeal(ctx context.Context) error
	AddWorkout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the nutritrack client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help            show available commands
//	  - register        create an account
//	  - login           authenticate
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - help            show available commands
//	  - profile         show the profile and goals
//	  - stats [date]    daily summary, today by default
//	  - addmeal         log a meal
//	  - addworkout      log a workout
//	  - logout          log out
//	  - exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nt %s> ", statusFn(ctx)))
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
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: profile, stats [YYYY-MM-DD], addmeal, addworkout, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "stats":
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			_ = a.Stats(ctx, date)

		case "addmeal":
			_ = a.AddMeal(ctx)

		case "addworkout":
			_ = a.AddWorkout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
