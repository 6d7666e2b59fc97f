package login

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tunnelworks/termin/pkg/api"
	"github.com/tunnelworks/termin/pkg/session"
)

type fakeAuth struct {
	needs2FA  bool
	gotCode   string
	loginErr  error
	verifyErr error
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (*api.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.needs2FA {
		return &api.LoginResult{Status: "2fa_required", UserID: 7, Email: email, Role: "member"}, nil
	}
	// The backend's success payload omits the email.
	return &api.LoginResult{Status: "ok", UserID: 7, Role: "member"}, nil
}

func (f *fakeAuth) Verify2FA(_ context.Context, _, code string) (*api.LoginResult, error) {
	f.gotCode = code
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &api.LoginResult{Status: "ok", UserID: 7, Role: "member"}, nil
}

type memStore struct {
	saved *session.Session
}

func (m *memStore) Current() (session.Session, error) {
	if m.saved == nil {
		return session.Session{}, session.ErrNoSession
	}
	return *m.saved, nil
}
func (m *memStore) Save(s session.Session) error { m.saved = &s; return nil }
func (m *memStore) Clear() error                 { m.saved = nil; return nil }

func TestLoginWithout2FA(t *testing.T) {
	store := &memStore{}
	l := &Login{
		Email:    "a@b.de",
		Password: "geheim",
		Backend:  &fakeAuth{},
		Store:    store,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.saved == nil || store.saved.UserID != 7 || store.saved.Email != "a@b.de" {
		t.Fatalf("session not persisted: %+v", store.saved)
	}
}

func TestLoginWith2FAPrompt(t *testing.T) {
	auth := &fakeAuth{needs2FA: true}
	store := &memStore{}
	l := &Login{
		Email:    "a@b.de",
		Password: "geheim",
		In:       strings.NewReader("123456\n"),
		Backend:  auth,
		Store:    store,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.gotCode != "123456" {
		t.Fatalf("code not forwarded, got %q", auth.gotCode)
	}
	if store.saved == nil {
		t.Fatal("session not persisted after 2fa")
	}
	if store.saved.Email != "a@b.de" {
		t.Fatalf("session email lost, got %q", store.saved.Email)
	}
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	store := &memStore{}
	l := &Login{
		Email:    "a@b.de",
		Password: "falsch",
		Backend:  &fakeAuth{loginErr: errors.New("backend returned 400: Incorrect password")},
		Store:    store,
	}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if store.saved != nil {
		t.Fatalf("failed login must not persist a session: %+v", store.saved)
	}
}

func TestLoginEmptyCode(t *testing.T) {
	l := &Login{
		Email:    "a@b.de",
		Password: "geheim",
		In:       strings.NewReader("\n"),
		Backend:  &fakeAuth{needs2FA: true},
		Store:    &memStore{},
	}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected error for empty 2fa code")
	}
}
