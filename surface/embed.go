package surface

import "embed"

// Sources are the package sources, they are compiled into standalone
// programs together with generated code.
//
//go:embed *.go
var Sources embed.FS
