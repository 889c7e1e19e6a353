package embedded

import _ "embed"

// DefaultConfig replays the demo tournament when no config file is given.
//
//go:embed "configs/tracker.toml"
var DefaultConfig []byte
