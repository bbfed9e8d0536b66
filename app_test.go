package sizeguard

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/launchrctl/sizeguard/test"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"sizeguard": RunAndExit,
	})
}

func TestScriptCommon(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir:                 "test/testdata/common",
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
		Setup:               test.SetupEnvConfig,
		Cmds:                test.CmdsTestScript(),
	})
}

func TestScriptGuard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir:                 "test/testdata/guard",
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
		Setup:               test.SetupEnvConfig,
		Cmds:                test.CmdsTestScript(),
	})
}
