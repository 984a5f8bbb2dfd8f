package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowAll(ctx context.Context) error
	ShowFavorites(ctx context.Context) error
	ShowMine(ctx context.Context) error
	Refresh(ctx context.Context) error
	Submit(ctx context.Context) error
	Star(ctx context.Context, arg string) error
	Unstar(ctx context.Context, arg string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("snooze %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: all, favorites, mine, refresh, submit, star <n>, unstar <n>, logout, exit")
			} else {
				printlnFn("Available commands: all, refresh, login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "all", "home":
			_ = a.ShowAll(ctx)

		case "favorites", "favs":
			_ = a.ShowFavorites(ctx)

		case "mine", "my":
			_ = a.ShowMine(ctx)

		case "refresh", "r":
			_ = a.Refresh(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "star":
			if len(args) == 0 {
				printlnFn("Usage: star <n>")
				continue
			}
			_ = a.Star(ctx, args[0])

		case "unstar":
			if len(args) == 0 {
				printlnFn("Usage: unstar <n>")
				continue
			}
			_ = a.Unstar(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
