package login

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/api"
	"github.com/tunnelworks/termin/pkg/session"
)

// Authenticator is the slice of the API client that handles login.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Verify2FA(ctx context.Context, email, code string) (*api.LoginResult, error)
}

// Login authenticates against the backend and persists the session.
// When the backend asks for a second factor the code is read from In.
type Login struct {
	Email    string
	Password string

	In      io.Reader
	Backend Authenticator
	Store   session.Store
}

func (l *Login) Do(ctx context.Context) error {
	res, err := l.Backend.Login(ctx, l.Email, l.Password)
	if err != nil {
		return err
	}

	if res.TwoFARequired() {
		code, err := l.promptCode()
		if err != nil {
			return err
		}
		res, err = l.Backend.Verify2FA(ctx, l.Email, code)
		if err != nil {
			return err
		}
	}

	// The success payload carries no email, only the 2fa_required
	// interstitial does. The address the user logged in with is the
	// identity either way.
	email := res.Email
	if email == "" {
		email = l.Email
	}

	sess := session.Session{UserID: res.UserID, Email: email, Role: res.Role}
	if sess.UserID == 0 {
		return fmt.Errorf("backend returned no user id")
	}
	if err := l.Store.Save(sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	_, _ = color.New(color.FgGreen).Printf("✔ angemeldet als %s\n", sess.Email)
	return nil
}

func (l *Login) promptCode() (string, error) {
	in := l.In
	if in == nil {
		in = os.Stdin
	}
	fmt.Print("2FA-Code: ")
	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && code == "" {
		return "", fmt.Errorf("read 2fa code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("a 2fa code is required")
	}
	return code, nil
}
