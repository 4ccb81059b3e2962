// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package retention

import (
	"regexp"
	"strconv"
	"time"
)

// Artifact names embed their creation time as a unix timestamp just
// before the extension, as in "dump-1700000000.tgz.enc". The last run
// of digits directly followed by a dot is the timestamp.
var timestampExpr = regexp.MustCompile(`([0-9]+)\.`)

// CreationTime returns the creation time embedded in an artifact name.
// It returns false for names that carry no recognisable timestamp;
// such names never qualify for pruning.
func CreationTime(name string) (time.Time, bool) {
	matches := timestampExpr.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return time.Time{}, false
	}
	seconds, err := strconv.ParseInt(matches[len(matches)-1][1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(seconds, 0), true
}
