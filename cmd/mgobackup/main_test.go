// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/cmd/v4/cmdtesting"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/mgobackup/internal/config"
)

// baseSuite seeds the environment every command reads its
// configuration from.
type baseSuite struct {
	testing.IsolationSuite
}

func (s *baseSuite) setEnv(c *gc.C, overrides map[string]string) {
	env := map[string]string{
		config.RcloneConfEnv: "/etc/rclone/rclone.conf",
		config.ServiceEnv:    "oss",
		config.BucketEnv:     "backups",
		config.PathEnv:       "mongo/daily",
		config.DatabaseEnv:   "app",
		config.CollectionEnv: "events",
		config.URIEnv:        "mongodb://mongo.internal:27017",
		config.UsernameEnv:   "backup-ro",
		config.PasswordEnv:   "sekrit",
		config.PublicKeyEnv:  "age1qqnl8gyu3mkpl90nmrts4zvnja7vlxycyrmhifzayp7ghvdpufcsehr0rq",
		config.RetentionEnv:  "7d",
	}
	for name, value := range overrides {
		env[name] = value
	}
	for name, value := range env {
		s.PatchEnvironment(name, value)
	}
}

type mainSuite struct {
	baseSuite
}

var _ = gc.Suite(&mainSuite{})

func (s *mainSuite) TestVersion(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, newMgobackupCommand(), "version")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(cmdtesting.Stdout(ctx), gc.Equals, "1.0.0\n")
}

func (s *mainSuite) TestHelpCommands(c *gc.C) {
	ctx, err := cmdtesting.RunCommand(c, newMgobackupCommand(), "help", "commands")
	c.Assert(err, jc.ErrorIsNil)
	out := cmdtesting.Stdout(ctx)
	for _, name := range []string{"backup", "list", "prune", "version"} {
		c.Check(out, jc.Contains, name)
	}
}

func (s *mainSuite) TestUnknownCommand(c *gc.C) {
	_, err := cmdtesting.RunCommand(c, newMgobackupCommand(), "bogus")
	c.Assert(err, gc.ErrorMatches, "unrecognized command: mgobackup bogus")
}

func (s *mainSuite) TestBackupRegistered(c *gc.C) {
	s.setEnv(c, nil)
	called := false
	s.PatchValue(&runBackup, func(cfg config.Config) error {
		called = true
		return nil
	})
	_, err := cmdtesting.RunCommand(c, newMgobackupCommand(), "backup")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(called, jc.IsTrue)
}
