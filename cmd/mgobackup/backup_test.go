// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/mgobackup/internal/config"
)

type backupCommandSuite struct {
	baseSuite
}

var _ = gc.Suite(&backupCommandSuite{})

func (s *backupCommandSuite) TestRun(c *gc.C) {
	s.setEnv(c, nil)
	var got config.Config
	s.PatchValue(&runBackup, func(cfg config.Config) error {
		got = cfg
		return nil
	})

	ctx, err := cmdtesting.RunCommand(c, newBackupCommand())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(got.Database, gc.Equals, "app")
	c.Check(got.Collection, gc.Equals, "events")
	c.Check(got.RetentionPeriod, gc.Equals, "7d")
	c.Check(cmdtesting.Stderr(ctx), jc.Contains, "backup complete")
}

func (s *backupCommandSuite) TestRunMissingConfig(c *gc.C) {
	s.setEnv(c, map[string]string{config.PublicKeyEnv: ""})
	called := false
	s.PatchValue(&runBackup, func(cfg config.Config) error {
		called = true
		return nil
	})

	_, err := cmdtesting.RunCommand(c, newBackupCommand())
	c.Assert(err, gc.ErrorMatches, "ENCRYPTION_PUBLIC_KEY not set")
	c.Check(called, jc.IsFalse)
}

func (s *backupCommandSuite) TestRunPipelineFailure(c *gc.C) {
	s.setEnv(c, nil)
	s.PatchValue(&runBackup, func(cfg config.Config) error {
		return errors.New("dumping: mongodump failed: connection refused")
	})

	ctx, err := cmdtesting.RunCommand(c, newBackupCommand())
	c.Assert(err, gc.ErrorMatches, "dumping: mongodump failed: connection refused")
	c.Check(cmdtesting.Stderr(ctx), gc.Not(jc.Contains), "backup complete")
}

func (s *backupCommandSuite) TestRejectsArguments(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, newBackupCommand(), "extra")
	c.Assert(err, gc.ErrorMatches, `unrecognized args: \["extra"\]`)
}
