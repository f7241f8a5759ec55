package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs verifies all required directories are created and
// that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "protdb"),
		filepath.Join(tmpDir, ".local", "share", "protdb"),
		filepath.Join(tmpDir, ".local", "share", "protdb", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

// TestTouchDirError verifies a file in the way of a directory is reported.
func TestTouchDirError(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := touchDir(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

// TestEnsureConfigFile verifies the embedded config is written once and
// never overwrites user changes.
func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "protdb", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	custom := "database:\n  type: postgres\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

// TestConfigYAML_Embedded verifies embedded config has every section.
func TestConfigYAML_Embedded(t *testing.T) {
	for _, v := range []string{"database:", "sources:", "log:", "jobs_number:"} {
		assert.Contains(t, ConfigYAML, v)
	}
}

func TestReadAccessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	data := "# hemoglobins\n1a3n\n\n  4HHB  \n# end\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	ids, err := ReadAccessions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1a3n", "4HHB"}, ids)

	_, err = ReadAccessions(filepath.Join(t.TempDir(), "none.txt"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}
