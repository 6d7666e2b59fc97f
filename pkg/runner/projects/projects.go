package projects

import (
	"context"

	"github.com/tunnelworks/termin/pkg/printers"
	"github.com/tunnelworks/termin/pkg/session"
	"github.com/tunnelworks/termin/pkg/task"
)

// Lister is the slice of the API client that lists projects.
type Lister interface {
	Projects(ctx context.Context, userID int64) ([]task.Project, error)
}

// Projects prints the projects visible to the session user.
type Projects struct {
	Backend Lister
	Session session.Session
}

func (p *Projects) Do(ctx context.Context) error {
	list, err := p.Backend.Projects(ctx, p.Session.UserID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Projekte", len(list))
	pp.Projects(list)
	return nil
}
