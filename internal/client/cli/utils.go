package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/yogastudio/internal/client/api"
	"github.com/dmitrijs2005/yogastudio/internal/client/services"
	"github.com/dmitrijs2005/yogastudio/internal/timex"
)

const dateLayout = "2006-01-02"

// userMessage turns a command error into the line shown to the user.
func userMessage(err error) string {
	var se *api.StatusError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, services.ErrNotLoggedIn):
		return "please log in first"
	case errors.Is(err, services.ErrIdentityChanged):
		return "you logged out or switched account while the request was running"
	case errors.Is(err, services.ErrForbidden):
		return "this command is reserved to admins"
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	case errors.Is(err, api.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, api.ErrNotFound):
		return "not found"
	}
	return err.Error()
}

func formatDate(t timex.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func formatTimestamp(t timex.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
