package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a", "b", "genfit.db")

	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Join(root, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDir_NoDirComponent(t *testing.T) {
	assert.NoError(t, EnsureParentDir("genfit.db"))
	assert.NoError(t, EnsureParentDir(":memory:"))
	assert.NoError(t, EnsureParentDir(""))
}
