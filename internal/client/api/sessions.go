package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

const resourceSession = "session"

// SessionsClient manages yoga sessions and their participants.
type SessionsClient struct {
	c *Client
}

// All lists every session.
func (s *SessionsClient) All(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.c.do(ctx, resourceSession, http.MethodGet, nil, &sessions, "api", "session"); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Detail fetches one session by id.
func (s *SessionsClient) Detail(ctx context.Context, id string) (models.Session, error) {
	var session models.Session
	if err := s.c.do(ctx, resourceSession, http.MethodGet, nil, &session, "api", "session", url.PathEscape(id)); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Create returns the session as stored by the backend.
func (s *SessionsClient) Create(ctx context.Context, session models.Session) (models.Session, error) {
	var created models.Session
	if err := s.c.do(ctx, resourceSession, http.MethodPost, session, &created, "api", "session"); err != nil {
		return models.Session{}, err
	}
	return created, nil
}

// Update replaces session id and returns the stored result.
func (s *SessionsClient) Update(ctx context.Context, id string, session models.Session) (models.Session, error) {
	var updated models.Session
	if err := s.c.do(ctx, resourceSession, http.MethodPut, session, &updated, "api", "session", url.PathEscape(id)); err != nil {
		return models.Session{}, err
	}
	return updated, nil
}

// Delete removes session id.
func (s *SessionsClient) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, resourceSession, http.MethodDelete, nil, nil, "api", "session", url.PathEscape(id))
}

// Participate books userID on session id.
func (s *SessionsClient) Participate(ctx context.Context, id, userID string) error {
	return s.c.do(ctx, resourceSession, http.MethodPost, nil, nil,
		"api", "session", url.PathEscape(id), "participate", url.PathEscape(userID))
}

// UnParticipate cancels the booking of userID on session id.
func (s *SessionsClient) UnParticipate(ctx context.Context, id, userID string) error {
	return s.c.do(ctx, resourceSession, http.MethodDelete, nil, nil,
		"api", "session", url.PathEscape(id), "participate", url.PathEscape(userID))
}
