// Package projectpath resolves the repository root at build time, so the .env file is
// found regardless of the working directory tests run in.
package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root folder of this project
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
