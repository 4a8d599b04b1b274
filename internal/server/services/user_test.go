package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, rm *fakeRepoManager) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { _ = db.Close() })
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 24 * time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func fastHash(t *testing.T) func() {
	t.Helper()
	orig := hashPassword
	hashPassword = func(password string) ([]byte, error) {
		return bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	}
	return func() { hashPassword = orig }
}

func TestRegister_Success(t *testing.T) {
	defer fastHash(t)()

	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrNotFound}}
	s := newUserService(t, rm)

	res, err := s.Register(context.Background(), "ayaka", "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("empty token")
	}
	if res.User.Username != "ayaka" || res.User.ID == 0 {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if res.User.PasswordHash == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newUserService(t, rm)

	for _, in := range [][3]string{
		{"", "a@x.com", "pw"},
		{"ayaka", "", "pw"},
		{"ayaka", "a@x.com", ""},
	} {
		if _, err := s.Register(context.Background(), in[0], in[1], in[2]); !errors.Is(err, common.ErrValidation) {
			t.Fatalf("want common.ErrValidation for %v, got %v", in, err)
		}
	}
}

func TestRegister_EmailAlreadyRegistered(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailOut: &models.User{ID: 1, Email: "a@x.com"}}}
	s := newUserService(t, rm)

	_, err := s.Register(context.Background(), "ayaka", "a@x.com", "pw")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
}

func TestRegister_RaceSurfacesAsConflict(t *testing.T) {
	defer fastHash(t)()

	// The pre-check sees no user, but the insert races with another
	// registration and hits the unique constraint.
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrNotFound, createErr: common.ErrConflict}}
	s := newUserService(t, rm)

	_, err := s.Register(context.Background(), "ayaka", "a@x.com", "pw")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		byEmailOut: &models.User{ID: 7, Username: "ayaka", Email: "a@x.com", PasswordHash: string(hash)},
	}}
	s := newUserService(t, rm)

	res, err := s.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Token == "" || res.User.ID != 7 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrNotFound}}
	s := newUserService(t, rm)

	_, err := s.Login(context.Background(), "nouser@x.com", "x")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		byEmailOut: &models.User{ID: 7, Email: "a@x.com", PasswordHash: string(hash)},
	}}
	s := newUserService(t, rm)

	_, err = s.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("want common.ErrInvalidCredentials, got %v", err)
	}
}

func TestIdentify_RoundTrip(t *testing.T) {
	defer fastHash(t)()

	user := &models.User{ID: 7, Username: "ayaka", Email: "a@x.com"}
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrNotFound, byIDOut: user}}
	s := newUserService(t, rm)

	res, err := s.Register(context.Background(), "ayaka", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := s.Identify(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("Identify error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestIdentify_BadToken(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newUserService(t, rm)

	_, err := s.Identify(context.Background(), "not.a.token")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want common.ErrUnauthorized, got %v", err)
	}
}

func TestIdentify_UserGone(t *testing.T) {
	defer fastHash(t)()

	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmailErr: common.ErrNotFound, byIDErr: common.ErrNotFound}}
	s := newUserService(t, rm)

	res, err := s.Register(context.Background(), "ayaka", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err = s.Identify(context.Background(), res.Token)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("want common.ErrUnauthorized, got %v", err)
	}
}
