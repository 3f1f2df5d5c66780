package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-flex-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=1\n")

	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
	assert.False(t, Exists(dir), "a directory is not an env file")
}

func TestReadLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\r\n# comment\n\nB=2\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A=1", "# comment", "", "B=2"}, lines)
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\nB=2")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A=1", "B=2"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadEnvFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_TerminatesEveryLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, Write(path, []string{"A=1", "", "# c"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n\n# c\n", string(content))
}

func TestWrite_KeepsPermissions(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\n")
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, Write(path, []string{"A=2"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=1\n")

	require.NoError(t, Write(path, []string{"A=2"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".env", entries[0].Name())
}

func TestWrite_MissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "nope", ".env"), []string{"A=1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteEnvFile)
}

func TestUpdate_RewritesMatchedLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "# header\nA=1\nB=2\n")

	require.NoError(t, Update(path, models.Answers{"B": "3"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# header\nA=1\nB=3\n", string(content))
}

func TestUpdate_Idempotent(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\nB=2")
	answers := models.Answers{"A": "x"}

	require.NoError(t, Update(path, answers))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Update(path, answers))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestUpdate_MissingFile(t *testing.T) {
	err := Update(filepath.Join(t.TempDir(), ".env"), models.Answers{"A": "1"})
	assert.ErrorIs(t, err, ErrReadEnvFile)
}

func TestCreateFromTemplate_CopiesTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, ".env-template", "A=\nB=default\n")
	env := filepath.Join(dir, ".env")

	require.NoError(t, CreateFromTemplate(env, tmpl))

	content, err := os.ReadFile(env)
	require.NoError(t, err)
	assert.Equal(t, "A=\nB=default\n", string(content))
}

func TestCreateFromTemplate_FallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")

	require.NoError(t, CreateFromTemplate(env, filepath.Join(dir, ".env-template")))

	content, err := os.ReadFile(env)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, string(content))
	assert.Contains(t, DefaultTemplate, "REACT_APP_SHARETRIBE_SDK_CLIENT_ID=")
}

func TestCreateFromTemplate_UnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	err := CreateFromTemplate(filepath.Join(dir, "missing", ".env"), filepath.Join(dir, ".env-template"))
	assert.ErrorIs(t, err, ErrCreateEnvFile)
}
