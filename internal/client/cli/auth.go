package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
	"github.com/dmitrijs2005/yogastudio/internal/common"
)

// Register prompts for the account fields and creates the account. It
// does not log in. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Email: email, FirstName: firstName, LastName: lastName, Password: string(password)}
	if err := a.authService.Register(ctx, req); err != nil {
		a.log.Warn(ctx, "register failed", "email", email, "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials and logs in. On failure the auth state is
// left unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(identity))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func displayName(identity models.Identity) string {
	if identity.FirstName != "" {
		return identity.FirstName
	}
	return identity.Username
}
