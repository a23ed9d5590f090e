package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	binaryPath     string
	binaryBuildErr error
	binaryOnce     sync.Once
	sharedTempDir  string
)

// TestMain sets up and tears down shared test resources.
func TestMain(m *testing.M) {
	var err error
	sharedTempDir, err = os.MkdirTemp("", "sqlbridge-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	terminatePostgres()
	_ = os.RemoveAll(sharedTempDir)

	os.Exit(code)
}

// buildBinary compiles the sqlbridge binary once per test run.
// Returns the path to the compiled binary.
func buildBinary(t *testing.T) string {
	t.Helper()

	binaryOnce.Do(func() {
		binaryPath = filepath.Join(sharedTempDir, "sqlbridge")

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sqlbridge")
		cmd.Dir = getProjectRoot(t)
		output, err := cmd.CombinedOutput()
		if err != nil {
			binaryBuildErr = fmt.Errorf("build binary: %w\nOutput: %s", err, output)
			return
		}
	})

	if binaryBuildErr != nil {
		t.Fatalf("failed to build binary: %v", binaryBuildErr)
	}

	return binaryPath
}

// getProjectRoot returns the root directory of the module.
func getProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err, "get working directory")

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// createConfigFile writes a config file pointing at connection.
func createConfigFile(t *testing.T, connection string) string {
	t.Helper()

	content := fmt.Sprintf(`database:
  connection: %q
query:
  limit: 100
output:
  format: json
log:
  level: error
env: prod
`, connection)

	configPath := filepath.Join(t.TempDir(), "sqlbridge.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600), "write config file")
	return configPath
}

// cli runs the binary with the given config file and stdin.
type cli struct {
	t          *testing.T
	binary     string
	configPath string
}

func newCLI(t *testing.T, connection string) *cli {
	t.Helper()
	return &cli{
		t:          t,
		binary:     buildBinary(t),
		configPath: createConfigFile(t, connection),
	}
}

// run executes a command and returns stdout and the process error.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()

	cmd := exec.Command(c.binary, append([]string{"--config", c.configPath}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		c.t.Logf("sqlbridge %v: %v\nstderr: %s", args, err, stderr.String())
	}
	return stdout.String(), err
}

// mustRun executes a command and fails the test on a non-zero exit.
func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()

	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, "sqlbridge %v", args)
	return out
}
