// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package version holds the mgobackup version.
package version

import (
	semversion "github.com/juju/version/v2"
)

const version = "1.0.0"

// Current is the version of the running tool.
var Current = semversion.MustParse(version)
