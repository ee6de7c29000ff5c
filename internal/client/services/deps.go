package services

import (
	"context"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type UsersAPI interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type TeachersAPI interface {
	All(ctx context.Context) ([]models.Teacher, error)
	Detail(ctx context.Context, id string) (models.Teacher, error)
}

type SessionsAPI interface {
	All(ctx context.Context) ([]models.Session, error)
	Detail(ctx context.Context, id string) (models.Session, error)
	Create(ctx context.Context, session models.Session) (models.Session, error)
	Update(ctx context.Context, id string, session models.Session) (models.Session, error)
	Delete(ctx context.Context, id string) error
	Participate(ctx context.Context, id, userID string) error
	UnParticipate(ctx context.Context, id, userID string) error
}

// IdentityStore is the part of the auth state store services write to
// and read the current identity from.
type IdentityStore interface {
	LogIn(identity models.Identity)
	LogOut()
	Identity() (models.Identity, bool)
}
