package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// onlineCheckInterval is how often the prompt's online indicator is
// refreshed.
const onlineCheckInterval = 5 * time.Second

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive command loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to TeyvatDex CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, onlineCheckInterval)
	}()

	for {
		fmt.Printf("tdx %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
				fmt.Println("Available commands: characters, show <id>, portrait <id>, fav <id>, unfav <id>, favs, check <id>, me, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, characters, show <id>, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "me":
			a.Me(ctx)
		case "characters", "list":
			a.Characters(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <id>")
				continue
			}
			a.Character(ctx, args[0])
		case "portrait":
			if len(args) == 0 {
				fmt.Println("Usage: portrait <id>")
				continue
			}
			a.Portrait(ctx, args[0])
		case "fav":
			if len(args) == 0 {
				fmt.Println("Usage: fav <id>")
				continue
			}
			a.Fav(ctx, args[0])
		case "unfav":
			if len(args) == 0 {
				fmt.Println("Usage: unfav <id>")
				continue
			}
			a.Unfav(ctx, args[0])
		case "favs":
			a.Favs(ctx)
		case "check":
			if len(args) == 0 {
				fmt.Println("Usage: check <id>")
				continue
			}
			a.Check(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
