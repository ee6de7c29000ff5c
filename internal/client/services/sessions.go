package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

// SessionDetail is a session together with its teacher. Teacher is the
// zero value when the session has none.
type SessionDetail struct {
	Session models.Session
	Teacher models.Teacher
}

// SessionService lists, books and manages yoga sessions.
//
// Create, Update and Delete require an admin identity and return
// ErrForbidden otherwise without calling the API. Participate and
// UnParticipate act for the current identity.
type SessionService interface {
	List(ctx context.Context) ([]models.Session, error)
	Detail(ctx context.Context, id string) (SessionDetail, error)
	Teachers(ctx context.Context) ([]models.Teacher, error)
	Create(ctx context.Context, session models.Session) (models.Session, error)
	Update(ctx context.Context, id string, session models.Session) (models.Session, error)
	Delete(ctx context.Context, id string) error
	Participate(ctx context.Context, id string) error
	UnParticipate(ctx context.Context, id string) error
}

type sessionService struct {
	sessions SessionsAPI
	teachers TeachersAPI
	store    IdentityStore
}

func NewSessionService(sessions SessionsAPI, teachers TeachersAPI, store IdentityStore) SessionService {
	return &sessionService{sessions: sessions, teachers: teachers, store: store}
}

func (s *sessionService) List(ctx context.Context) ([]models.Session, error) {
	list, err := s.sessions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions error: %w", err)
	}
	return list, nil
}

// Detail fetches the session first, then its teacher.
func (s *sessionService) Detail(ctx context.Context, id string) (SessionDetail, error) {
	session, err := s.sessions.Detail(ctx, id)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("get session error: %w", err)
	}

	d := SessionDetail{Session: session}
	if session.TeacherID == 0 {
		return d, nil
	}

	d.Teacher, err = s.teachers.Detail(ctx, strconv.FormatInt(session.TeacherID, 10))
	if err != nil {
		return SessionDetail{}, fmt.Errorf("get teacher error: %w", err)
	}
	return d, nil
}

func (s *sessionService) Teachers(ctx context.Context) ([]models.Teacher, error) {
	list, err := s.teachers.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers error: %w", err)
	}
	return list, nil
}

func (s *sessionService) Create(ctx context.Context, session models.Session) (models.Session, error) {
	if err := s.requireAdmin(); err != nil {
		return models.Session{}, err
	}
	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return models.Session{}, fmt.Errorf("create session error: %w", err)
	}
	return created, nil
}

func (s *sessionService) Update(ctx context.Context, id string, session models.Session) (models.Session, error) {
	if err := s.requireAdmin(); err != nil {
		return models.Session{}, err
	}
	updated, err := s.sessions.Update(ctx, id, session)
	if err != nil {
		return models.Session{}, fmt.Errorf("update session error: %w", err)
	}
	return updated, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session error: %w", err)
	}
	return nil
}

func (s *sessionService) Participate(ctx context.Context, id string) error {
	userID, err := s.currentUserID()
	if err != nil {
		return err
	}
	if err := s.sessions.Participate(ctx, id, userID); err != nil {
		return fmt.Errorf("participate error: %w", err)
	}
	return nil
}

func (s *sessionService) UnParticipate(ctx context.Context, id string) error {
	userID, err := s.currentUserID()
	if err != nil {
		return err
	}
	if err := s.sessions.UnParticipate(ctx, id, userID); err != nil {
		return fmt.Errorf("unparticipate error: %w", err)
	}
	return nil
}

func (s *sessionService) currentUserID() (string, error) {
	identity, ok := s.store.Identity()
	if !ok {
		return "", ErrNotLoggedIn
	}
	return strconv.FormatInt(identity.ID, 10), nil
}

func (s *sessionService) requireAdmin() error {
	identity, ok := s.store.Identity()
	if !ok {
		return ErrNotLoggedIn
	}
	if !identity.Admin {
		return ErrForbidden
	}
	return nil
}
