package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/tinytest"

	// DemoPackage is the package built by BuildDemo.
	DemoPackage = "./cmd/tinytest-demo"

	// BinPath is the output path of the demo binary.
	BinPath = "./bin/tinytest-demo"

	// ProjectRoot is the root directory of the project.
	ProjectRoot string
)

// Initialize records the project root and makes sure bin/ exists.
// Call this from the Magefile init() function.
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}

	binDir := filepath.Join(ProjectRoot, "bin")
	if err := os.MkdirAll(binDir, 0o750); err != nil {
		return err
	}

	return nil
}
