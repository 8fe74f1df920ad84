package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	TeacherLogin(ctx context.Context) error
	StudentLogin(ctx context.Context) error
	Signup(ctx context.Context, role models.Role, mode services.Mode) error
	RemoteLogin(ctx context.Context, role models.Role) error
	Voice(ctx context.Context) error
	MicTest(ctx context.Context) error
	Back(ctx context.Context) error
	Help(ctx context.Context) error
	FontStep(ctx context.Context, increase bool) error
	ToggleContrast(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
}

// parseRoleArg resolves the role argument of signup/inline/remote commands.
func parseRoleArg(args []string) (models.Role, bool) {
	if len(args) == 0 {
		return "", false
	}
	role, err := models.ParseRole(args[0])
	if err != nil {
		return "", false
	}
	return role, true
}

// runREPL starts a simple read-eval-print loop for the Autoscribe client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	teacher | t            — teacher login form
//	student | s            — student login form
//	signup <role>          — full signup form for teacher or student
//	inline <role>          — compact signup form
//	remote <role>          — login against the auth endpoint
//	voice | v              — capture one voice command
//	mic                    — microphone test
//	back | esc             — return to the login options
//	help | h               — list commands and speak the shortcuts
//	+ / -                  — grow or shrink the font
//	contrast               — toggle high contrast
//	whoami                 — show the persisted session
//	logout                 — clear the session
//	reset                  — wipe local storage, preferences included
//	exit | quit            — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("autoscribe %s> ", statusFn()))
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
		case "help", "h":
			_ = a.Help(ctx)

		case "teacher", "t":
			_ = a.TeacherLogin(ctx)

		case "student", "s":
			_ = a.StudentLogin(ctx)

		case "signup":
			role, ok := parseRoleArg(args)
			if !ok {
				printlnFn("Usage: signup <teacher|student>")
				continue
			}
			_ = a.Signup(ctx, role, services.ModeSignup)

		case "inline":
			role, ok := parseRoleArg(args)
			if !ok {
				printlnFn("Usage: inline <teacher|student>")
				continue
			}
			_ = a.Signup(ctx, role, services.ModeInlineSignup)

		case "remote":
			role, ok := parseRoleArg(args)
			if !ok {
				printlnFn("Usage: remote <teacher|student>")
				continue
			}
			_ = a.RemoteLogin(ctx, role)

		case "voice", "v":
			_ = a.Voice(ctx)

		case "mic":
			_ = a.MicTest(ctx)

		case "back", "esc":
			_ = a.Back(ctx)

		case "+":
			_ = a.FontStep(ctx, true)

		case "-":
			_ = a.FontStep(ctx, false)

		case "contrast":
			_ = a.ToggleContrast(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
