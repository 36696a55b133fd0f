package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workflow-manager/internal/auth"
	"workflow-manager/internal/config"
)

// runCommand executes one CLI invocation against the given database and
// export directories, the way a user would run the binary.
func runCommand(t *testing.T, authorizer auth.Authorizer, dbDir, exportDir string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(config.NewConfig(), authorizer)

	buf := &bytes.Buffer{}
	root.SetOutput(buf)
	root.SetArgs(append([]string{"--db-dir", dbDir, "--export-dir", exportDir}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_EndToEnd(t *testing.T) {
	tmp := t.TempDir()
	dbDir := filepath.Join(tmp, "db")
	exportDir := filepath.Join(tmp, "exports")
	allow := auth.NewAllowAll()

	out, err := runCommand(t, allow, dbDir, exportDir, "add-employee", "Alice", "--role", "manager")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, allow, dbDir, exportDir, "list-employees")
	require.NoError(t, err)
	assert.Equal(t, "#  1 | Alice                | manager  | active\n", out)

	out, err = runCommand(t, allow, dbDir, exportDir, "add-task", "Write report", "--assignee", "1")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, allow, dbDir, exportDir, "update-task", "1", "done")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = runCommand(t, allow, dbDir, exportDir, "list-tasks", "--status", "done")
	require.NoError(t, err)
	assert.Equal(t, "#  1 | Write report              | Alice           | done         | -\n", out)
}

func TestRootCommand_UpdateMissingTaskIsSilent(t *testing.T) {
	tmp := t.TempDir()
	dbDir := filepath.Join(tmp, "db")
	exportDir := filepath.Join(tmp, "exports")

	out, err := runCommand(t, auth.NewAllowAll(), dbDir, exportDir, "update-task", "999", "done")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCommand_RejectsBadArguments(t *testing.T) {
	tmp := t.TempDir()
	dbDir := filepath.Join(tmp, "db")
	exportDir := filepath.Join(tmp, "exports")
	allow := auth.NewAllowAll()

	_, err := runCommand(t, allow, dbDir, exportDir, "update-task", "abc", "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task id")

	_, err = runCommand(t, allow, dbDir, exportDir, "update-task", "1", "finished")
	require.Error(t, err)

	_, err = runCommand(t, allow, dbDir, exportDir, "add-employee", "Alice", "--role", "intern")
	require.Error(t, err)

	_, err = runCommand(t, allow, dbDir, exportDir, "list-tasks", "--status", "blocked")
	require.Error(t, err)
}

func TestRootCommand_Export(t *testing.T) {
	tmp := t.TempDir()
	dbDir := filepath.Join(tmp, "db")
	exportDir := filepath.Join(tmp, "exports")
	allow := auth.NewAllowAll()

	_, err := runCommand(t, allow, dbDir, exportDir, "add-employee", "Alice", "--role", "staff")
	require.NoError(t, err)

	out, err := runCommand(t, allow, dbDir, exportDir, "export")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Exported to "), "unexpected output: %q", out)
	require.True(t, strings.HasSuffix(out, "/\n"), "unexpected output: %q", out)

	outDir := strings.TrimSuffix(strings.TrimPrefix(out, "Exported to "), "/\n")
	for _, file := range []string{"employees.csv", "tasks.csv", "shifts.csv"} {
		_, statErr := os.Stat(filepath.Join(outDir, file))
		assert.NoError(t, statErr, "missing %s", file)
	}
}

type denyAll struct{}

func (denyAll) Authorize(ctx context.Context, command string) error {
	return stderrors.New("access denied")
}

func TestRootCommand_AuthorizerGatesMutatingCommands(t *testing.T) {
	tmp := t.TempDir()
	dbDir := filepath.Join(tmp, "db")
	exportDir := filepath.Join(tmp, "exports")

	_, err := runCommand(t, auth.NewAllowAll(), dbDir, exportDir, "add-employee", "Alice", "--role", "staff")
	require.NoError(t, err)

	_, err = runCommand(t, denyAll{}, dbDir, exportDir, "add-task", "Write report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")

	// Read-only commands are exempt from the check
	out, err := runCommand(t, denyAll{}, dbDir, exportDir, "list-employees")
	require.NoError(t, err)
	assert.Equal(t, "#  1 | Alice                | staff    | active\n", out)
}

func TestEnsureDatabaseDir(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "nested", "wfm")

	require.NoError(t, EnsureDatabaseDir(cfg))

	info, err := os.Stat(cfg.Database.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
