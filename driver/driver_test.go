package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kacricon/pasquim/config"
	"github.com/kacricon/pasquim/rts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageWritesAssemblyAndRuntime(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs)

	cfg := config.Config{OutputDir: "/out"}
	res, err := d.Stage(cfg, "movl $4, %eax\nret\n")
	require.NoError(t, err)

	assert.Equal(t, "/out", res.OutputDir)
	assert.False(t, res.Owned)
	assert.Equal(t, "/out/compiled.s", res.AssemblyPath)
	assert.Equal(t, "/out/"+rts.Filename, res.RuntimePath)

	asm, err := afero.ReadFile(fs, res.AssemblyPath)
	require.NoError(t, err)
	assert.Contains(t, string(asm), "movl $4, %eax")

	rtsContents, err := afero.ReadFile(fs, res.RuntimePath)
	require.NoError(t, err)
	assert.Equal(t, rts.Source, rtsContents)
}

func TestStageMintsOwnedDirectoryWhenOutputDirEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs)

	res, err := d.Stage(config.Config{}, "ret\n")
	require.NoError(t, err)

	assert.True(t, res.Owned)
	assert.NotEmpty(t, res.OutputDir)

	exists, err := afero.Exists(fs, res.AssemblyPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBuildFailsFastAndRollsBackOwnedDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs)

	cfg := config.Config{CC: "pasquim-definitely-not-a-real-compiler"}
	res, err := d.Build(context.Background(), cfg, "ret\n")
	require.Error(t, err)
	assert.Equal(t, Result{}, res)

	leftovers, err := afero.Glob(fs, filepath.Join(os.TempDir(), "pasquim-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "driver-minted directory should be removed on failure")
}

func TestBuildFailsFastLeavesCallerDirectoryButRemovesStagedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := New(fs)

	cfg := config.Config{OutputDir: "/caller-owned", CC: "pasquim-definitely-not-a-real-compiler"}
	_, err := d.Build(context.Background(), cfg, "ret\n")
	require.Error(t, err)

	asmExists, err := afero.Exists(fs, "/caller-owned/compiled.s")
	require.NoError(t, err)
	assert.False(t, asmExists, "staged assembly should be rolled back on failure")

	dirExists, err := afero.DirExists(fs, "/caller-owned")
	require.NoError(t, err)
	assert.True(t, dirExists, "caller-supplied directory must survive rollback")
}
