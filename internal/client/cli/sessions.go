package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
	"github.com/dmitrijs2005/yogastudio/internal/timex"
)

func (a *App) currentUserID() int64 {
	identity, _ := a.store.Identity()
	return identity.ID
}

// Sessions lists all sessions and marks the ones the user is booked on.
func (a *App) Sessions(ctx context.Context) error {
	list, err := a.sessionService.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No sessions yet")
		return nil
	}

	me := a.currentUserID()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tNAME\tATTENDEES\tBOOKED")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", s.ID, formatDate(s.Date), s.Name, len(s.Users), yesNo(s.HasParticipant(me)))
	}
	return tw.Flush()
}

// Session prints one session with its teacher.
func (a *App) Session(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id")
	if err != nil {
		return err
	}

	d, err := a.sessionService.Detail(ctx, id)
	if err != nil {
		return err
	}
	s := d.Session

	fmt.Fprintf(a.out, "%s (#%d)\n", s.Name, s.ID)
	fmt.Fprintf(a.out, "Date: %s\n", formatDate(s.Date))
	if d.Teacher.ID != 0 {
		fmt.Fprintf(a.out, "Teacher: %s\n", d.Teacher.FullName())
	}
	fmt.Fprintf(a.out, "%s\n", plural(len(s.Users), "attendee"))
	if s.HasParticipant(a.currentUserID()) {
		fmt.Fprintln(a.out, "You are booked on this session")
	}
	if s.Description != "" {
		fmt.Fprintf(a.out, "Description:\n%s\n", s.Description)
	}
	fmt.Fprintf(a.out, "Created: %s\n", formatTimestamp(s.CreatedAt))
	fmt.Fprintf(a.out, "Last update: %s\n", formatTimestamp(s.UpdatedAt))
	return nil
}

func (a *App) Teachers(ctx context.Context) error {
	list, err := a.sessionService.Teachers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, t := range list {
		fmt.Fprintf(tw, "%d\t%s\n", t.ID, t.FullName())
	}
	return tw.Flush()
}

// CreateSession prompts for a new session and creates it.
func (a *App) CreateSession(ctx context.Context) error {
	s, err := a.inputSession(ctx, models.Session{})
	if err != nil {
		return err
	}

	created, err := a.sessionService.Create(ctx, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Session created (#%d)\n", created.ID)
	return nil
}

// UpdateSession prompts for new values, keeping the current ones on
// empty input, and saves the session.
func (a *App) UpdateSession(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id")
	if err != nil {
		return err
	}

	d, err := a.sessionService.Detail(ctx, id)
	if err != nil {
		return err
	}

	s, err := a.inputSession(ctx, d.Session)
	if err != nil {
		return err
	}

	if _, err := a.sessionService.Update(ctx, id, s); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session updated !")
	return nil
}

func (a *App) DeleteSession(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id to delete")
	if err != nil {
		return err
	}
	if err := a.sessionService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session deleted !")
	return nil
}

func (a *App) Participate(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id")
	if err != nil {
		return err
	}
	if err := a.sessionService.Participate(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "You are booked on this session")
	return nil
}

func (a *App) UnParticipate(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id")
	if err != nil {
		return err
	}
	if err := a.sessionService.UnParticipate(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Your booking has been cancelled")
	return nil
}

// inputSession fills the editable fields of cur from user input. An empty
// answer keeps the current value; a new session needs every field but the
// description.
func (a *App) inputSession(ctx context.Context, cur models.Session) (models.Session, error) {
	s := cur

	name, err := getSimpleText(a.reader, withCurrent("Enter name", cur.Name), a.out)
	if err != nil {
		return s, err
	}
	if name != "" {
		s.Name = name
	}

	date, err := getSimpleText(a.reader, withCurrent("Enter date (YYYY-MM-DD)", formatOptionalDate(cur.Date)), a.out)
	if err != nil {
		return s, err
	}
	if date != "" {
		d, err := timex.ParseTime(date)
		if err != nil {
			return s, fmt.Errorf("invalid date %q", date)
		}
		s.Date = d
	}

	if err := a.Teachers(ctx); err != nil {
		return s, err
	}
	teacher, err := getSimpleText(a.reader, withCurrent("Enter teacher id", optionalID(cur.TeacherID)), a.out)
	if err != nil {
		return s, err
	}
	if teacher != "" {
		id, err := strconv.ParseInt(teacher, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid teacher id %q", teacher)
		}
		s.TeacherID = id
	}

	description, err := getMultiline(a.reader, withCurrent("Enter description", cur.Description), a.out)
	if err != nil {
		return s, err
	}
	if description != "" {
		s.Description = description
	}

	switch {
	case s.Name == "":
		return s, errors.New("name is required")
	case s.Date.IsZero():
		return s, errors.New("date is required")
	case s.TeacherID == 0:
		return s, errors.New("teacher is required")
	}
	return s, nil
}

func withCurrent(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

func formatOptionalDate(t timex.Time) string {
	if t.IsZero() {
		return ""
	}
	return formatDate(t)
}

func optionalID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
