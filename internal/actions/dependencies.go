// Package actions implements the commands behind the zd command tree.
package actions

import (
	"github.com/dialog-tools/zenity/internal/app"
	"github.com/dialog-tools/zenity/internal/config"
	"github.com/dialog-tools/zenity/internal/history"
	"github.com/dialog-tools/zenity/internal/paths"
	"github.com/dialog-tools/zenity/internal/ui"
)

// Dependencies carries what actions need to run, so tests can substitute
// fakes.
type Dependencies struct {
	Writer      *ui.Writer
	ConfigGet   func(key string) (string, bool)
	Config      *config.Provider
	OpenHistory func() (*history.Store, error)
	Version     func() string
}

func defaultDeps() Dependencies {
	return Dependencies{
		Writer:    ui.NewWriter(ui.WithConfigGetter(config.Get)),
		ConfigGet: config.Get,
		Config:    config.NewProvider(),
		OpenHistory: func() (*history.Store, error) {
			return history.New(paths.HistoryDBPath())
		},
		Version: func() string { return app.Version },
	}
}
