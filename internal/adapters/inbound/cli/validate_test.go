package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pds-go/skeleton/internal/adapters/inbound/cli"
	"github.com/pds-go/skeleton/internal/domain"
)

func TestValidateCmd_Compliant(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join(fixtureDir, "compliant"))
	require.NoError(t, err)

	assert.Contains(t, out, "- Source files: Correct src/ present")
	assert.Contains(t, out, "- License: Correct LICENSE present")
	assert.Contains(t, out, "Package layout is compliant.")
	assert.Equal(t, 12, strings.Count(out, "\n"), "11 category lines and one verdict")
}

func TestValidateCmd_LegacyNotCompliant(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join(fixtureDir, "legacy"))
	require.ErrorIs(t, err, cli.ErrNotCompliant)

	assert.Contains(t, out, "- Tests: Incorrect test/ present")
	assert.Contains(t, out, "- License: Incorrect COPYING present")
	assert.Contains(t, out, "- Public web server files: Optional public/ not present")
	assert.Contains(t, out, "not compliant")
}

func TestValidateCmd_JSON(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join(fixtureDir, "legacy"), "--format", "json")
	require.ErrorIs(t, err, cli.ErrNotCompliant)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Compliant)
	require.Len(t, report.Results, 11)

	changelog, ok := report.Lookup("CHANGELOG")
	require.True(t, ok)
	assert.Equal(t, domain.StateIncorrectPresent, changelog.State)
	assert.Equal(t, "HISTORY.md", changelog.Actual)
}

func TestValidateCmd_Table(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join(fixtureDir, "compliant"), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "tests/")
	assert.Contains(t, strings.ToLower(out), "compliant")
}

func TestValidateCmd_FormatFromConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "LICENSE"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".pds-skeleton.yaml"), []byte("output: json\n"), 0644))

	out, err := execute(t, "validate", root)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON output, got %q", out)
}

func TestValidateCmd_InvalidFormat(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(fixtureDir, "compliant"), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestValidateCmd_MissingLicenseIsRecommended(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "validate", root)
	require.ErrorIs(t, err, cli.ErrNotCompliant)
	assert.Contains(t, out, "- License: Recommended LICENSE not present")
	assert.Contains(t, out, "- Readme: Optional README not present")
}

func TestValidateCmd_MissingRoot(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrNotCompliant)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateCmd_TooManyArgs(t *testing.T) {
	_, err := execute(t, "validate", "a", "b")
	assert.Error(t, err)
}
