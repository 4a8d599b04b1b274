package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/teyvatdex/teyvatdex/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates an account. On success
// the fresh session is cached and the user is signed in immediately.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Register(ctx, userName, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = session.Username
	fmt.Println("Registered as", session.Username)
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// and the favorite set are cached for offline use.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = session.Username
	fmt.Println("Logged in as", session.Username)
	return nil
}

// Logout wipes the cached session and favorites.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}

// Me shows the account behind the current session.
func (a *App) Me(ctx context.Context) error {
	user, err := a.authService.Me(ctx)
	if err != nil {
		log.Printf("Session check unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("id: %d\nusername: %s\nemail: %s\n", user.ID, user.Username, user.Email)
	return nil
}
