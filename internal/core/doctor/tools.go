package doctor

import (
	"context"
	"os/exec"
	"strings"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// OpenerCheck verifies that the command used to open Things URLs is available
// on $PATH.
type OpenerCheck struct {
	command string
}

// NewOpenerCheck creates a new opener check. command is the full opener
// command line; only its first word is looked up.
func NewOpenerCheck(command string) *OpenerCheck {
	return &OpenerCheck{command: command}
}

func (c *OpenerCheck) Name() string {
	return "URL Opener"
}

func (c *OpenerCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	fields := strings.Fields(c.command)
	if len(fields) == 0 {
		result.add(fail("opener", "no opener command configured"))
		return result
	}

	name := fields[0]
	path, err := lookPathFunc(name)
	if err != nil {
		result.add(fail(name, "not found on PATH (set 'opener' in config)"))
		return result
	}

	result.add(pass(name, path))

	return result
}
