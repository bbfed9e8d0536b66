// Package plugins provides sizeguard core plugins.
package plugins

import (
	// Default sizeguard plugins to include for sizeguard functionality.
	_ "github.com/launchrctl/sizeguard/plugins/guardcmd"
	_ "github.com/launchrctl/sizeguard/plugins/verbosity"
)
