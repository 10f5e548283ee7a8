package cli_test

import (
	"bytes"
	"testing"

	"github.com/pds-go/skeleton/internal/adapters/inbound/cli"
)

const fixtureDir = "../../../../testdata/packages"

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
