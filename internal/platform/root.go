package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/keeper/pkg/adapters/fs"
)

// rootIndicators mark a directory as a book root.
var rootIndicators = []string{fs.DefaultSystemDir, "keeper.yaml", fs.DefaultFile}

// FindRoot looks upwards from startDir for a book root and returns its
// absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range rootIndicators {
			if hasFile(dir, name) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no contact book found above %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
