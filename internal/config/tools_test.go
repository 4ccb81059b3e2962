// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/mgobackup/internal/config"
)

type toolsSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&toolsSuite{})

func (s *toolsSuite) TestCheckToolsAllPresent(c *gc.C) {
	var checked []string
	s.PatchValue(config.LookPath, func(tool string) (string, error) {
		checked = append(checked, tool)
		return "/usr/bin/" + tool, nil
	})
	c.Assert(config.CheckTools(), jc.ErrorIsNil)
	c.Check(checked, jc.DeepEquals, []string{"mongodump", "age", "rclone"})
}

func (s *toolsSuite) TestCheckToolsMissing(c *gc.C) {
	s.PatchValue(config.LookPath, func(tool string) (string, error) {
		if tool == config.AgeTool {
			return "", errors.New("executable file not found in $PATH")
		}
		return "/usr/bin/" + tool, nil
	})
	err := config.CheckTools()
	c.Assert(err, gc.ErrorMatches, `missing "age": executable file not found in \$PATH`)
}

func (s *toolsSuite) TestCheckToolsStopsAtFirstMissing(c *gc.C) {
	var checked []string
	s.PatchValue(config.LookPath, func(tool string) (string, error) {
		checked = append(checked, tool)
		return "", errors.New("not found")
	})
	err := config.CheckTools()
	c.Assert(err, gc.ErrorMatches, `missing "mongodump": not found`)
	c.Check(checked, jc.DeepEquals, []string{"mongodump"})
}

func (s *toolsSuite) TestCheckToolsSubset(c *gc.C) {
	var checked []string
	s.PatchValue(config.LookPath, func(tool string) (string, error) {
		checked = append(checked, tool)
		return "/usr/bin/" + tool, nil
	})
	c.Assert(config.CheckTools(config.RcloneTool), jc.ErrorIsNil)
	c.Check(checked, jc.DeepEquals, []string{"rclone"})
}
