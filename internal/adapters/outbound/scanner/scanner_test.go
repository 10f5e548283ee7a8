package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pds-go/skeleton/internal/adapters/outbound/scanner"
	"github.com/pds-go/skeleton/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/packages"

func makeRoot(t *testing.T, dirs []string, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), nil, 0644))
	}
	return root
}

func TestDirScanner_MarksDirectories(t *testing.T) {
	root := makeRoot(t, []string{"src", "tests"}, []string{"README.md", "LICENSE"})

	listing, err := scanner.New().List(root)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{"LICENSE", "README.md", "src/", "tests/"}, listing)
}

func TestDirScanner_SortedByName(t *testing.T) {
	root := makeRoot(t, []string{"tests", "test"}, nil)

	listing, err := scanner.New().List(root)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{"test/", "tests/"}, listing)
}

func TestDirScanner_OnlyTopLevel(t *testing.T) {
	root := makeRoot(t, []string{"src"}, nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "LICENSE"), nil, 0644))

	listing, err := scanner.New().List(root)
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{"src/"}, listing)
}

func TestDirScanner_FollowsDirectorySymlinks(t *testing.T) {
	root := makeRoot(t, []string{"real-docs"}, nil)
	if err := os.Symlink(filepath.Join(root, "real-docs"), filepath.Join(root, "docs")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	listing, err := scanner.New().List(root)
	require.NoError(t, err)
	assert.Contains(t, listing, "docs/")
}

func TestDirScanner_IgnorePatterns(t *testing.T) {
	root := makeRoot(t, []string{"vendor", "src", "node_modules"}, []string{"README.md", "notes.bak"})

	listing, err := scanner.New().List(root, "vendor/", "node_modules", "*.bak")
	require.NoError(t, err)
	assert.Equal(t, domain.Listing{"README.md", "src/"}, listing)
}

func TestDirScanner_MissingRoot(t *testing.T) {
	_, err := scanner.New().List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestDirScanner_CompliantFixture(t *testing.T) {
	listing, err := scanner.New().List(filepath.Join(fixtureDir, "compliant"))
	require.NoError(t, err)
	assert.True(t, domain.Validate(listing).Compliant)
}

func TestDirScanner_LegacyFixture(t *testing.T) {
	listing, err := scanner.New().List(filepath.Join(fixtureDir, "legacy"))
	require.NoError(t, err)

	report := domain.Validate(listing)
	assert.False(t, report.Compliant)

	res, ok := report.Lookup("tests/")
	require.True(t, ok)
	assert.Equal(t, "test/", res.Actual)
}
