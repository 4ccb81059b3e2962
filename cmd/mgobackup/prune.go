// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"

	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/mgobackup/internal/config"
	"github.com/juju/mgobackup/internal/remote"
	"github.com/juju/mgobackup/internal/retention"
)

const pruneDoc = `
prune deletes every remote artifact older than RETENTION_PERIOD. With
--dry-run it only reports what a deletion pass would remove.

The backup command prunes automatically after uploading; this command
applies a changed retention period, or previews a pass, without taking
a new backup.
`

var checkTools = config.CheckTools

// pruneArtifacts applies the retention period to the remote artifacts.
var pruneArtifacts = func(cfg config.Config, dryRun bool) ([]string, error) {
	return retention.Prune(retention.PruneParams{
		Remote: remote.NewClient(cfg),
		Period: cfg.RetentionPeriod,
		Clock:  clock.WallClock,
		DryRun: dryRun,
	})
}

type pruneCommand struct {
	cmd.CommandBase

	dryRun bool
}

func newPruneCommand() cmd.Command {
	return &pruneCommand{}
}

// Info implements cmd.Command.
func (c *pruneCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "prune",
		Purpose: "delete remote artifacts older than the retention period",
		Doc:     pruneDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *pruneCommand) SetFlags(f *gnuflag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "report what would be deleted without deleting")
}

// Init implements cmd.Command.
func (c *pruneCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *pruneCommand) Run(ctx *cmd.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return errors.Trace(err)
	}
	if err := checkTools(config.RcloneTool); err != nil {
		return errors.Trace(err)
	}
	deleted, err := pruneArtifacts(cfg, c.dryRun)
	if err != nil {
		return errors.Trace(err)
	}
	if c.dryRun {
		for _, name := range deleted {
			fmt.Fprintln(ctx.Stdout, name)
		}
		ctx.Infof("would delete %d artifacts", len(deleted))
		return nil
	}
	ctx.Infof("deleted %d artifacts", len(deleted))
	return nil
}
