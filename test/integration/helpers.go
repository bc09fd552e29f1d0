//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Email      string
	APIKey     string
	Endpoint   string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Email:      os.Getenv("FASTBILL_EMAIL"),
		APIKey:     os.Getenv("FASTBILL_API_KEY"),
		Endpoint:   os.Getenv("FASTBILL_ENDPOINT"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("FASTBILL_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the fastbill binary.
func getBinaryPath() string {
	if path := os.Getenv("FASTBILL_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../fastbill",
		"./fastbill",
		"../fastbill",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "fastbill"
}

// SkipIfMissingConfig skips test if required config is missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Email == "" || config.APIKey == "" {
		t.Skip("FASTBILL_EMAIL or FASTBILL_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("fastbill binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs fastbill commands against an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a fastbill command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...) //nolint:gosec // test binary path
	cmd.Env = append(os.Environ(),
		"FASTBILL_EMAIL="+runner.config.Email,
		"FASTBILL_API_KEY="+runner.config.APIKey,
		"FASTBILL_ENDPOINT="+runner.config.Endpoint,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes the result into v.
func (runner *CommandRunner) RunJSON(v any, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), v)
}

// CreateResource creates a resource and returns its id.
func (runner *CommandRunner) CreateResource(resource, idField, body string) int64 {
	runner.t.Helper()

	var result map[string]int64

	require.NoError(runner.t, runner.RunJSON(&result, resource, "create", "--data", body))
	require.NotZero(runner.t, result[idField])

	return result[idField]
}

// CleanupResource attempts to delete a test resource.
func (runner *CommandRunner) CleanupResource(resource string, id int64) {
	stdout, stderr, err := runner.Run(resource, "delete", fmt.Sprint(id))
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %d: %s\nStderr: %s", resource, id, stdout, stderr)
	}
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}
