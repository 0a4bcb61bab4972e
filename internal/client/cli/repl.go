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

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Detail(ctx context.Context) error
	Home(ctx context.Context) error
	Profile(ctx context.Context) error
	BMI(ctx context.Context) error
	Learn(ctx context.Context, topic, material string) error
	EditProfile(ctx context.Context) error
	Info(ctx context.Context) error
	Forum(ctx context.Context) error
	Telehealth(ctx context.Context) error
	Terms(ctx context.Context) error
	Privacy(ctx context.Context) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, info, terms, privacy, back, exit"
	helpSignedIn  = "Available commands: home, profile, edit, bmi, detail, learn [topic [material]], forum, telehealth, info, terms, privacy, back, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows the current status (from statusFn). Commands that need a
// session are refused while signed out and vice versa. Errors returned by
// handlers are ignored here; handlers render their own alerts. The loop exits
// on EOF, on "exit" or "quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("genfit %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue
		case "terms":
			_ = a.Terms(ctx)
			continue
		case "privacy":
			_ = a.Privacy(ctx)
			continue
		case "info":
			_ = a.Info(ctx)
			continue
		case "back":
			_ = a.Back(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if a.isLoggedIn() {
			dispatchSignedIn(ctx, a, cmd, args)
		} else {
			dispatchSignedOut(ctx, a, cmd)
		}
	}
}

func dispatchSignedOut(ctx context.Context, a execIface, cmd string) {
	switch cmd {
	case "register":
		_ = a.Register(ctx)
	case "login":
		_ = a.Login(ctx)
	case "home", "profile", "edit", "bmi", "detail", "learn", "forum", "telehealth", "logout":
		printlnFn("Silakan login terlebih dahulu.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchSignedIn(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "home":
		_ = a.Home(ctx)
	case "profile":
		_ = a.Profile(ctx)
	case "bmi":
		_ = a.BMI(ctx)
	case "detail":
		_ = a.Detail(ctx)
	case "learn":
		var topic, material string
		if len(args) > 0 {
			topic = args[0]
		}
		if len(args) > 1 {
			material = args[1]
		}
		_ = a.Learn(ctx, topic, material)
	case "edit":
		_ = a.EditProfile(ctx)
	case "forum":
		_ = a.Forum(ctx)
	case "telehealth":
		_ = a.Telehealth(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "register", "login":
		printlnFn("Anda sudah login.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}
