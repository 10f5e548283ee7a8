package scaffolder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pds-go/skeleton/internal/adapters/outbound/scaffolder"
	"github.com/pds-go/skeleton/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSScaffolder_CreatesDirectoriesAndFiles(t *testing.T) {
	root := t.TempDir()
	targets := []domain.ScaffoldTarget{
		{Category: domain.CategoryTests, Kind: domain.KindDirectory, Path: "tests"},
		{Category: domain.CategoryLicense, Kind: domain.KindFile, Path: "LICENSE.md"},
	}

	created, err := scaffolder.New().Create(root, targets)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "tests", created[0].Path)
	assert.Equal(t, "LICENSE.md", created[1].Path)

	info, err := os.Stat(filepath.Join(root, "tests"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat(filepath.Join(root, "LICENSE.md"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Zero(t, info.Size())
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestFSScaffolder_NeverOverwritesFiles(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0644))

	created, err := scaffolder.New().Create(root, []domain.ScaffoldTarget{
		{Category: domain.CategoryReadme, Kind: domain.KindFile, Path: "README.md"},
	})
	assert.Error(t, err)
	assert.Empty(t, created)

	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "keep me", string(data))
}

func TestFSScaffolder_PartialFailureContinues(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0755))

	targets := []domain.ScaffoldTarget{
		{Category: domain.CategoryDocumentationFiles, Kind: domain.KindDirectory, Path: "docs"},
		{Category: domain.CategorySourceFiles, Kind: domain.KindDirectory, Path: "src"},
		{Category: domain.CategoryReadme, Kind: domain.KindFile, Path: "README.md"},
	}

	created, err := scaffolder.New().Create(root, targets)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Contains(t, err.Error(), "creating directory docs")

	require.Len(t, created, 2)
	assert.Equal(t, "src", created[0].Path)
	assert.Equal(t, "README.md", created[1].Path)

	failures := domain.Failures(err)
	require.Len(t, failures, 1)
	assert.Equal(t, "docs", failures[0].Target.Path)
}

func TestFSScaffolder_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")

	created, err := scaffolder.New().Create(root, []domain.ScaffoldTarget{
		{Category: domain.CategoryTests, Kind: domain.KindDirectory, Path: "tests"},
		{Category: domain.CategoryLicense, Kind: domain.KindFile, Path: "LICENSE.md"},
	})
	assert.Empty(t, created)
	assert.Len(t, domain.Failures(err), 2)
}
