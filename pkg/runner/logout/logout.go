package logout

import (
	"context"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/session"
)

// Logout drops the persisted session.
type Logout struct {
	Store session.Store
}

func (l *Logout) Do(_ context.Context) error {
	if err := l.Store.Clear(); err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Println("abgemeldet")
	return nil
}
