// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package backup_test

import (
	gc "gopkg.in/check.v1"

	"github.com/juju/mgobackup/internal/backup"
)

type stageSuite struct{}

var _ = gc.Suite(&stageSuite{})

func (s *stageSuite) TestString(c *gc.C) {
	for i, test := range []struct {
		stage    backup.Stage
		expected string
	}{
		{backup.StageValidating, "validating"},
		{backup.StageDumping, "dumping"},
		{backup.StageArchiving, "archiving"},
		{backup.StageEncrypting, "encrypting"},
		{backup.StageUploading, "uploading"},
		{backup.StagePruning, "pruning"},
		{backup.StageDone, "done"},
		{backup.Stage(42), "unknown"},
	} {
		c.Logf("test %d", i)
		c.Check(test.stage.String(), gc.Equals, test.expected)
	}
}
