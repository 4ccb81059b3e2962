// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/juju/mgobackup/internal/config"
	"github.com/juju/mgobackup/internal/remote"
	"github.com/juju/mgobackup/internal/retention"
)

const listDoc = `
list shows the artifacts at the remote destination, with the creation
time and age embedded in each name when one is present.
`

// listArtifacts returns the remote artifact names.
var listArtifacts = func(cfg config.Config) ([]string, error) {
	return remote.NewClient(cfg).List()
}

// artifactEntry is one row of list output.
type artifactEntry struct {
	Name    string `json:"name" yaml:"name"`
	Created string `json:"created,omitempty" yaml:"created,omitempty"`
	Age     string `json:"age,omitempty" yaml:"age,omitempty"`
}

type listCommand struct {
	cmd.CommandBase

	out   cmd.Output
	clock clock.Clock
}

func newListCommand() cmd.Command {
	return &listCommand{clock: clock.WallClock}
}

// Info implements cmd.Command.
func (c *listCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "list",
		Purpose: "show the artifacts at the remote destination",
		Doc:     listDoc,
	}
}

// SetFlags implements cmd.Command.
func (c *listCommand) SetFlags(f *gnuflag.FlagSet) {
	c.out.AddFlags(f, "smart", cmd.DefaultFormatters.Formatters())
}

// Init implements cmd.Command.
func (c *listCommand) Init(args []string) error {
	return cmd.CheckEmpty(args)
}

// Run implements cmd.Command.
func (c *listCommand) Run(ctx *cmd.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return errors.Trace(err)
	}
	if err := checkTools(config.RcloneTool); err != nil {
		return errors.Trace(err)
	}
	names, err := listArtifacts(cfg)
	if err != nil {
		return errors.Trace(err)
	}
	now := c.clock.Now()
	entries := make([]artifactEntry, 0, len(names))
	for _, name := range set.NewStrings(names...).SortedValues() {
		entry := artifactEntry{Name: name}
		if created, ok := retention.CreationTime(name); ok {
			entry.Created = created.UTC().Format(time.RFC3339)
			entry.Age = humanize.RelTime(created, now, "old", "")
		}
		entries = append(entries, entry)
	}
	return errors.Trace(c.out.Write(ctx, entries))
}
