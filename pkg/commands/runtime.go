package commands

import (
	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/api"
	"github.com/tunnelworks/termin/pkg/session"
)

// environment resolves config, session store and API client for a
// command invocation.
func environment() (session.Config, session.Store, *api.Client, error) {
	cfg, err := session.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := session.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, api.New(cfg.Server()), nil
}

// calendar builds the loader and mutation gate for the logged-in user.
func calendar() (*aggregate.Loader, *aggregate.Gate, error) {
	_, store, client, err := environment()
	if err != nil {
		return nil, nil, err
	}
	sess, err := store.Current()
	if err != nil {
		return nil, nil, err
	}

	l := &aggregate.Loader{Backend: client, Session: sess}
	g := &aggregate.Gate{Backend: client, Session: sess}
	return l, g, nil
}
