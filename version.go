package keeper

import _ "embed"

// Version is the library version, read from the VERSION file.
//
//go:embed VERSION
var Version string
