package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the menu loop needs.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Authenticate(ctx context.Context) error
	List(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}

const menu = `
Biometric Two-Factor Authentication
  1) register      register a new user
  2) auth          authenticate a user
  3) list          list registered users
  4) deleteall     delete all users
  5) exit
`

// runMenu reads one choice per iteration and dispatches to a. Both the
// menu numbers and the command words are accepted. The loop exits on
// EOF or when the user chooses exit; command errors are reported by the
// commands themselves and never stop the loop.
func runMenu(ctx context.Context, reader *bufio.Reader, w io.Writer, a execIface) {
	for {
		fmt.Fprint(w, menu+"> ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1", "register":
			_ = a.Register(ctx)
		case "2", "auth", "authenticate":
			_ = a.Authenticate(ctx)
		case "3", "list":
			_ = a.List(ctx)
		case "4", "deleteall":
			_ = a.DeleteAll(ctx)
		case "5", "exit", "quit":
			fmt.Fprintln(w, "Bye.")
			return
		case "":
			// ignore empty input
		default:
			fmt.Fprintln(w, "Invalid choice, try again.")
		}

		if err != nil {
			// EOF after a final command
			return
		}
	}
}
