package dig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlanFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	require.NoError(t, os.WriteFile(path, []byte("R 2 (#ff0000)\nD 2 (#00ff00)\nL 2 (#0000ff)\nU 2 (#ffffff)\n"), 0o644))

	plan, err := LoadPlanFromFile(path)
	require.NoError(t, err)
	assert.Len(t, plan, 4)
}

func TestLoadPlanFromFile_Missing(t *testing.T) {
	_, err := LoadPlanFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadPlanFromFile_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	require.NoError(t, os.WriteFile(path, []byte("R 2 (#ff0000)\nR two (#ff0000)\n"), 0o644))

	_, err := LoadPlanFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
