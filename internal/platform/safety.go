package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveBookPath determines the directory actually used for the book.
// When forceTemp is set, paths outside the system temp directory are
// re-rooted under $TMPDIR/keeper-dev so development runs never touch a real
// contact book.
func ResolveBookPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	cleanUserPath := filepath.Clean(userPath)
	tempRoot := os.TempDir()

	// Paths already under the temp root (e.g. t.TempDir()) are trusted.
	if filepath.IsAbs(cleanUserPath) {
		if rel, err := filepath.Rel(tempRoot, cleanUserPath); err == nil && !strings.HasPrefix(rel, "..") {
			return cleanUserPath
		}
	}

	subName := filepath.Base(cleanUserPath)
	if userPath == "" || subName == "." || subName == string(os.PathSeparator) {
		subName = "default"
	}
	return filepath.Join(tempRoot, "keeper-dev", subName)
}
