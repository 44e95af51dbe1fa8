// Package msg defines the tea.Msg types exchanged between the folio program,
// its background commands, and main. It imports nothing from ui or app to
// avoid import cycles.
package msg

import (
	"github.com/miosa/folio/client"
	"github.com/miosa/folio/config"
)

// CollectionsLoaded carries the result of client.FetchAll. Cols holds
// whatever loaded even when Err is set.
type CollectionsLoaded struct {
	Cols *client.Collections
	Err  error
}

// ConfigReloaded is sent by the config watcher after the file changed.
type ConfigReloaded struct {
	Config *config.Config
	Err    error
}
