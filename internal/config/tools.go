// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config

import (
	"os/exec"

	"github.com/juju/errors"
)

// The external executables the pipeline shells out to.
const (
	MongodumpTool = "mongodump"
	AgeTool       = "age"
	RcloneTool    = "rclone"
)

// RequiredTools lists the executables a full backup run needs. tar is
// invoked too but not checked up front; it is assumed present on any
// host this runs on.
var RequiredTools = []string{MongodumpTool, AgeTool, RcloneTool}

var lookPath = exec.LookPath

// CheckTools confirms each named executable resolves on the execution
// PATH, failing on the first that does not. With no arguments it
// checks RequiredTools.
func CheckTools(tools ...string) error {
	if len(tools) == 0 {
		tools = RequiredTools
	}
	for _, tool := range tools {
		if _, err := lookPath(tool); err != nil {
			return errors.Annotatef(err, "missing %q", tool)
		}
	}
	return nil
}
