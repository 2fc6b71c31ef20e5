package appfs

import "embed"

// FS holds the files shipped inside the binary.
//
//go:embed seed
var FS embed.FS
