// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// osascriptBin runs the mail-automation script that regenerates the
// digest file from the local mail client.
const osascriptBin = "osascript"

// executor abstracts command execution for testing.
type executor interface {
	Run(name string, args ...string) (combined string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

var defaultExec executor = osExecutor{}

// Fetch invokes the mail-automation script with a message count to
// regenerate the digest file. The script reports success with a literal
// "Success" marker on stdout; anything else surfaces the combined output
// as a diagnostic. Callers should still attempt the parse on error, since
// an earlier digest file may be present.
func Fetch(script string, count int) error {
	return fetch(defaultExec, script, count)
}

func fetch(e executor, script string, count int) error {
	out, err := e.Run(osascriptBin, script, strconv.Itoa(count))
	if err != nil {
		return fmt.Errorf("mail fetch script failed: %v: %s", err, strings.TrimSpace(out))
	}
	if !strings.Contains(out, "Success") {
		return fmt.Errorf("mail fetch script did not report success: %s", strings.TrimSpace(out))
	}
	return nil
}
