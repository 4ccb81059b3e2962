// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package retention decides which uploaded artifacts have outlived
// the configured retention period and deletes them from the remote
// destination.
package retention

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("mgobackup.retention")

// Remote is the view of the artifact store that pruning needs.
type Remote interface {
	// List returns the names of all artifacts at the destination.
	List() ([]string, error)

	// Delete removes the named artifact from the destination.
	Delete(name string) error
}

// PruneParams holds the dependencies and options for a prune pass.
type PruneParams struct {
	// Remote is the artifact store to prune.
	Remote Remote

	// Period is the retention period string, e.g. "7d".
	Period string

	// Clock supplies the current time.
	Clock clock.Clock

	// DryRun reports the artifacts that would be deleted without
	// deleting anything.
	DryRun bool
}

// Prune deletes every remote artifact strictly older than the retention
// period and returns the names it deleted, in listing order. Artifacts
// aged exactly the retention period are retained, as are artifacts
// whose names carry no creation time. Any listing or deletion failure
// aborts the pass.
func Prune(p PruneParams) ([]string, error) {
	threshold, err := ParsePeriod(p.Period)
	if err != nil {
		return nil, errors.Trace(err)
	}
	now := p.Clock.Now()
	cutoff := now.Add(-threshold)

	names, err := p.Remote.List()
	if err != nil {
		return nil, errors.Annotate(err, "listing remote artifacts")
	}
	logger.Debugf("listed %d artifacts, pruning those created before %s", len(names), cutoff.Format(time.RFC3339))

	var deleted []string
	for _, name := range names {
		created, ok := CreationTime(name)
		if !ok {
			logger.Debugf("skipping %q: no creation time in name", name)
			continue
		}
		if !created.Before(cutoff) {
			continue
		}
		age := humanize.RelTime(created, now, "old", "")
		if p.DryRun {
			logger.Infof("would delete %s (%s)", name, age)
			deleted = append(deleted, name)
			continue
		}
		logger.Infof("deleting %s (%s)", name, age)
		if err := p.Remote.Delete(name); err != nil {
			return deleted, errors.Annotatef(err, "deleting %s", name)
		}
		deleted = append(deleted, name)
	}
	return deleted, nil
}
