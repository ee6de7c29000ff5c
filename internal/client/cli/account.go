package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/client/authstate"
)

// Me prints the account of the logged-in user.
func (a *App) Me(ctx context.Context) error {
	user, err := a.accountService.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Name: %s %s\n", user.FirstName, strings.ToUpper(user.LastName))
	fmt.Fprintf(a.out, "Email: %s\n", user.Email)
	if user.Admin {
		fmt.Fprintln(a.out, "You are admin")
	}
	fmt.Fprintf(a.out, "Created: %s\n", formatTimestamp(user.CreatedAt))
	fmt.Fprintf(a.out, "Last update: %s\n", formatTimestamp(user.UpdatedAt))
	return nil
}

// DeleteAccount asks for confirmation, deletes the logged-in user's
// account and logs out.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete your account? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.accountService.DeleteAccount(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Your account has been deleted !")
	return nil
}

// WhoAmI prints the stored identity and what its token claims.
func (a *App) WhoAmI(ctx context.Context) error {
	identity, ok := a.store.Identity()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "User: %s (id %d)\n", identity.Username, identity.ID)
	fmt.Fprintf(a.out, "Name: %s %s\n", identity.FirstName, identity.LastName)
	fmt.Fprintf(a.out, "Admin: %s\n", yesNo(identity.Admin))

	claims, err := authstate.TokenClaims(identity.Token)
	if err != nil {
		a.log.Debug(ctx, "token claims unavailable", "error", err)
		fmt.Fprintln(a.out, "Token: unreadable")
		return nil
	}
	if claims.Subject != "" {
		fmt.Fprintf(a.out, "Token subject: %s\n", claims.Subject)
	}
	switch {
	case claims.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Token expires: never")
	case claims.Expired(time.Now()):
		fmt.Fprintf(a.out, "Token expired at %s\n", claims.ExpiresAt.Local().Format(time.DateTime))
	default:
		fmt.Fprintf(a.out, "Token expires at %s\n", claims.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}
