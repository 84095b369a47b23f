package magetasks

import (
	"strings"

	"github.com/magefile/mage/sh"
)

// DemoArgs lists the flag sets RunDemo exercises, one run each.
var DemoArgs = [][]string{
	{},
	{"-s"},
	{"-s", "-S", "-B"},
}

// RunDemo builds the demo binary and runs it once per entry in DemoArgs.
// The demo's tests all pass, so any non-zero exit is reported as an error.
func RunDemo() error {
	if err := BuildDemo(); err != nil {
		return err
	}
	for _, args := range DemoArgs {
		PrintH2Header("tinytest-demo " + joinArgs(args))
		if err := sh.RunV(BinPath, args...); err != nil {
			PrintError("Demo run failed")
			return err
		}
	}
	PrintSuccess("Demo runs complete")
	return nil
}

func joinArgs(args []string) string {
	if len(args) == 0 {
		return "(no flags)"
	}
	return strings.Join(args, " ")
}
