package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command from the repository root with the given stdin
// and arguments, returning stdout, stderr and the process error.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command("go", append([]string{"run", "../../main.go"}, args...)...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestCLI_StdinPretty(t *testing.T) {
	stdout, _, err := runCLI(t, `{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\":\n        1\n}\n", stdout)
}

func TestCLI_FileInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`[1, 2]`), 0o644))

	_, stderr, err := runCLI(t, "", "-i", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Output written to")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[\n    1,\n    2\n]\n", string(got))
}

func TestCLI_Compact(t *testing.T) {
	stdout, _, err := runCLI(t, `{"a": 1, "b": [true]}`, "--compact")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[true]}`+"\n", stdout)
}

func TestCLI_KeyCase(t *testing.T) {
	stdout, _, err := runCLI(t, `{"userId": 7}`, "--compact", "-k", "snake")
	require.NoError(t, err)
	assert.Equal(t, `{"user_id":7}`+"\n", stdout)
}

func TestCLI_IndentWidth(t *testing.T) {
	stdout, _, err := runCLI(t, `{"a": 1}`, "--indent", "2")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\":\n    1\n}\n", stdout)
}

func TestCLI_CheckValid(t *testing.T) {
	stdout, stderr, err := runCLI(t, `[1, 2, 3]`, "--check")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "input is valid")
}

func TestCLI_CheckInvalid(t *testing.T) {
	_, stderr, err := runCLI(t, `{"a":`, "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "syntax error at offset")
}

func TestCLI_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".jsonpeg.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("indent: 2\n"), 0o644))

	stdout, _, err := runCLI(t, `{"a": 1}`, "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\":\n    1\n}\n", stdout)
}

func TestCLI_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "", "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jsonpeg version")
}

func TestCLI_Help(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--compact")
}
