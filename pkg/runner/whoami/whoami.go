package whoami

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/session"
)

// WhoAmI prints the logged-in user.
type WhoAmI struct {
	Store session.Store
}

func (w *WhoAmI) Do(_ context.Context) error {
	sess, err := w.Store.Current()
	if err != nil {
		return err
	}
	fmt.Printf("%s", sess.Email)
	_, _ = color.New(color.Faint).Printf("  (id %d, %s)\n", sess.UserID, sess.Role)
	return nil
}
