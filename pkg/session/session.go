// Package session holds the logged-in user. The mobile client kept
// user_id, user_email and role in an ambient key value store; here the
// session is an explicit value loaded once per command and injected, so
// tests can supply a fixed one.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// ErrNoSession means no user is logged in.
var ErrNoSession = errors.New("not logged in, run: termin login")

const currentKey = "session"

// Session identifies the logged-in user.
type Session struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"user_email"`
	Role   string `json:"role,omitempty"`
}

// Store persists the session between command invocations.
type Store interface {
	Current() (Session, error)
	Save(s Session) error
	Clear() error
}

// Open returns a Store backed by diskv under the configured base path.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := homedir.Expand(cfg.BasePath())
	if err != nil {
		return nil, fmt.Errorf("expand session path: %w", err)
	}

	return &store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024,
	})}, nil
}

type store struct {
	d *diskv.Diskv
}

func (s *store) Current() (Session, error) {
	if !s.d.Has(currentKey) {
		return Session{}, ErrNoSession
	}
	data, err := s.d.Read(currentKey)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	if sess.UserID == 0 {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

func (s *store) Save(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.d.Write(currentKey, data)
}

func (s *store) Clear() error {
	if !s.d.Has(currentKey) {
		return nil
	}
	return s.d.Erase(currentKey)
}
