package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophsession/internal/client/navigation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen() navigation.Screen
	Submit(ctx context.Context) error
	Open(screen navigation.Screen) error
	WhoAmI() error
	Logout(ctx context.Context) error
}

// screenCommands lists what can be typed on each screen.
var screenCommands = map[navigation.Screen][]string{
	navigation.ScreenSplash: {"help", "exit"},
	navigation.ScreenLogin:  {"submit", "signup", "help", "exit"},
	navigation.ScreenSignup: {"submit", "login", "help", "exit"},
	navigation.ScreenHome:   {"whoami", "logout", "help", "exit"},
}

// runREPL starts a simple read–eval–print loop for the GophSession CLI.
//
// Commands depend on the current screen:
//
//	Log in:  submit (enter email and password), signup, help, exit
//	Sign up: submit (enter name, email and password), login, help, exit
//	Home:    whoami, logout, help, exit
//
// "quit" is accepted as an alias of "exit" everywhere. A command that does
// not belong to the current screen is reported as unknown. Handler errors
// are ignored here; handlers print their own messages. The loop exits on
// input EOF, on exit, or once ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("gs (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		available := screenCommands[a.Screen()]
		if !slices.Contains(available, cmd) {
			printlnFn("Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(available, ", "))

		case "submit":
			_ = a.Submit(ctx)

		case "signup":
			_ = a.Open(navigation.ScreenSignup)

		case "login":
			_ = a.Open(navigation.ScreenLogin)

		case "whoami":
			_ = a.WhoAmI()

		case "logout":
			_ = a.Logout(ctx)
		}
	}
}
