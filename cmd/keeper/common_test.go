package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildKeeperBinary builds the keeper binary into dir and returns its path.
func buildKeeperBinary(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping CLI build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	keeperBin := filepath.Join(dir, "keeper.exe")
	buildCmd := exec.Command("go", "build", "-o", keeperBin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build keeper: %v\n%s", err, string(out))
	}
	return keeperBin
}

// cliEnv isolates the binary from the user's keeper.yaml and KEEPER_* variables
// and silences logging.
func cliEnv(home string) []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "KEEPER_") || strings.HasPrefix(kv, "HOME=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "HOME="+home, "KEEPER_LOG_LEVEL=error")
}

// newCmd runs the binary against the book in dir.
func newCmd(dir, home, name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, append(args, "--book="+dir)...)
	cmd.Dir = dir
	cmd.Env = cliEnv(home)
	return cmd
}

// runCmd runs the binary in dir and returns its combined output.
func runCmd(t *testing.T, dir, home, name string, args ...string) string {
	t.Helper()
	out, err := newCmd(dir, home, name, args...).CombinedOutput()
	if err != nil {
		t.Fatalf("Command %v failed in %s: %v\n%s", args, dir, err, out)
	}
	return string(out)
}

// runCmdFail runs the binary and expects a non-zero exit.
func runCmdFail(t *testing.T, dir, home, name string, args ...string) string {
	t.Helper()
	out, err := newCmd(dir, home, name, args...).CombinedOutput()
	if err == nil {
		t.Fatalf("Command %v succeeded in %s, expected failure:\n%s", args, dir, out)
	}
	return string(out)
}
