// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"

	"github.com/juju/mgobackup/internal/backup"
	"github.com/juju/mgobackup/internal/config"
	"github.com/juju/mgobackup/internal/remote"
)

const backupDoc = `
backup runs the full pipeline: dump the configured collection, pack
and encrypt the dump, upload the result, then prune remote artifacts
older than RETENTION_PERIOD.

Intermediate artifacts are staged in a private working directory that
is removed when the run finishes, however it finishes.
`

// runBackup executes a full pipeline run.
var runBackup = func(cfg config.Config) error {
	b, err := backup.New(cfg, remote.NewClient(cfg), clock.WallClock)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Errorf("removing workspace: %v", err)
		}
	}()
	return errors.Trace(b.Run())
}

type backupCommand struct {
	cmd.CommandBase
}

func newBackupCommand() cmd.Command {
	return &backupCommand{}
}

// Info implements cmd.Command.
func (c *backupCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "backup",
		Purpose: "dump, encrypt and upload the configured collection",
		Doc:     backupDoc,
	}
}

// Init implements cmd.Command.
func (c *backupCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *backupCommand) Run(ctx *cmd.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return errors.Trace(err)
	}
	if err := runBackup(cfg); err != nil {
		return errors.Trace(err)
	}
	ctx.Infof("backup complete")
	return nil
}
