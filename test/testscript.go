// Package test contains functionality to test the application with testscript.
package test

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/launchrctl/sizeguard/internal/sizeguard"
)

// CmdsTestScript provides custom commands for testscript execution.
func CmdsTestScript() map[string]func(ts *testscript.TestScript, neg bool, args []string) {
	return map[string]func(ts *testscript.TestScript, neg bool, args []string){
		// sleep pauses execution for a specified duration
		// Usage:
		//  sleep <duration>
		// Examples:
		//	sleep 1s
		//	sleep 500ms
		"sleep": CmdSleep,
		// waitfile waits until a file content matches a regular expression.
		// Usage:
		//	waitfile [-timeout=<duration>] <file> <regexp>
		"waitfile": CmdWaitFile,
	}
}

// SetupEnvConfig isolates the application config directory in the work dir.
func SetupEnvConfig(env *testscript.Env) error {
	cfgDir := filepath.Join(env.WorkDir, ".sizeguard")
	env.Vars = append(
		env.Vars,
		sizeguard.EnvVarConfigDir.EnvString(cfgDir),
		"CONFIG_DIR="+cfgDir,
	)
	return nil
}

// CmdSleep pauses execution for a specified duration
func CmdSleep(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("sleep does not support negation")
	}

	if len(args) != 1 {
		ts.Fatalf("sleep: usage: sleep <duration>")
	}

	duration, err := parseDuration(args[0])
	if err != nil {
		ts.Fatalf("sleep: invalid duration %q: %v", args[0], err)
	}
	time.Sleep(duration)
}

// CmdWaitFile polls a file until its content matches a pattern or the timeout is reached.
func CmdWaitFile(ts *testscript.TestScript, neg bool, args []string) {
	timeout := 10 * time.Second
	if len(args) > 0 {
		if v, ok := strings.CutPrefix(args[0], "-timeout="); ok {
			d, err := parseDuration(v)
			if err != nil {
				ts.Fatalf("waitfile: invalid timeout %q: %v", v, err)
			}
			timeout = d
			args = args[1:]
		}
	}
	if len(args) != 2 {
		ts.Fatalf("waitfile: usage: waitfile [-timeout=<duration>] <file> <regexp>")
	}
	re, err := regexp.Compile(args[1])
	ts.Check(err)

	path := ts.MkAbs(args[0])
	deadline := time.Now().Add(timeout)
	for {
		data, err := os.ReadFile(path) //nolint:gosec // G304 The path is given by the test.
		matched := err == nil && re.Match(data)
		if matched != neg {
			return
		}
		if time.Now().After(deadline) {
			if neg {
				ts.Fatalf("waitfile: %s still matches %q after %s", args[0], args[1], timeout)
			}
			ts.Fatalf("waitfile: %s doesn't match %q after %s:\n%s", args[0], args[1], timeout, data)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func parseDuration(s string) (time.Duration, error) {
	duration, err := time.ParseDuration(s)
	if err != nil {
		// Try parsing as seconds if it's just a number
		seconds, numErr := strconv.ParseFloat(s, 64)
		if numErr != nil {
			return 0, err
		}
		duration = time.Duration(seconds * float64(time.Second))
	}
	if duration < 0 {
		return 0, strconv.ErrRange
	}
	return duration, nil
}
