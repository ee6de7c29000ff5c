package services

import (
	"context"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

// ---- fake API clients ----

type fakeAuthAPI struct {
	LoginRet    models.Identity
	LoginErr    error
	RegisterErr error

	LastLogin    models.LoginRequest
	LastRegister models.RegisterRequest
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	f.LastRegister = req
	return f.RegisterErr
}

type fakeUsersAPI struct {
	GetRet    models.User
	GetErr    error
	DeleteErr error
	// OnGet runs while the request is "in flight".
	OnGet func()

	GetIDs    []string
	DeleteIDs []string
}

func (f *fakeUsersAPI) GetByID(ctx context.Context, id string) (models.User, error) {
	f.GetIDs = append(f.GetIDs, id)
	if f.OnGet != nil {
		f.OnGet()
	}
	return f.GetRet, f.GetErr
}

func (f *fakeUsersAPI) Delete(ctx context.Context, id string) error {
	f.DeleteIDs = append(f.DeleteIDs, id)
	return f.DeleteErr
}

type fakeTeachersAPI struct {
	AllRet    []models.Teacher
	AllErr    error
	DetailRet models.Teacher
	DetailErr error

	DetailIDs []string
	calls     *[]string
}

func (f *fakeTeachersAPI) All(ctx context.Context) ([]models.Teacher, error) {
	return f.AllRet, f.AllErr
}

func (f *fakeTeachersAPI) Detail(ctx context.Context, id string) (models.Teacher, error) {
	f.DetailIDs = append(f.DetailIDs, id)
	if f.calls != nil {
		*f.calls = append(*f.calls, "teacher")
	}
	return f.DetailRet, f.DetailErr
}

type fakeSessionsAPI struct {
	AllRet    []models.Session
	AllErr    error
	DetailRet models.Session
	DetailErr error
	WriteRet  models.Session
	Err       error

	Calls []string
	Last  models.Session
	IDs   [][2]string
}

func (f *fakeSessionsAPI) record(call, id, userID string) {
	f.Calls = append(f.Calls, call)
	f.IDs = append(f.IDs, [2]string{id, userID})
}

func (f *fakeSessionsAPI) All(ctx context.Context) ([]models.Session, error) {
	f.record("all", "", "")
	return f.AllRet, f.AllErr
}

func (f *fakeSessionsAPI) Detail(ctx context.Context, id string) (models.Session, error) {
	f.record("session", id, "")
	return f.DetailRet, f.DetailErr
}

func (f *fakeSessionsAPI) Create(ctx context.Context, session models.Session) (models.Session, error) {
	f.record("create", "", "")
	f.Last = session
	return f.WriteRet, f.Err
}

func (f *fakeSessionsAPI) Update(ctx context.Context, id string, session models.Session) (models.Session, error) {
	f.record("update", id, "")
	f.Last = session
	return f.WriteRet, f.Err
}

func (f *fakeSessionsAPI) Delete(ctx context.Context, id string) error {
	f.record("delete", id, "")
	return f.Err
}

func (f *fakeSessionsAPI) Participate(ctx context.Context, id, userID string) error {
	f.record("participate", id, userID)
	return f.Err
}

func (f *fakeSessionsAPI) UnParticipate(ctx context.Context, id, userID string) error {
	f.record("unparticipate", id, userID)
	return f.Err
}
