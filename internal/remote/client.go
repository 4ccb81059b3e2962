// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package remote copies, lists and deletes backup artifacts at an
// object storage destination through rclone.
package remote

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/utils/v4"
	"github.com/kballard/go-shellquote"

	"github.com/juju/mgobackup/internal/config"
)

var logger = loggo.GetLogger("mgobackup.remote")

var runCommand = utils.RunCommand

// Client drives rclone against a single destination. Credentials live
// in the rclone configuration file and are never passed inline.
type Client struct {
	// ConfigPath is the path of the rclone configuration file.
	ConfigPath string

	// Service is the rclone remote name of the storage service.
	Service string

	// Bucket and Prefix locate the artifact directory within the
	// service.
	Bucket string
	Prefix string
}

// NewClient returns a Client for the destination cfg describes.
func NewClient(cfg config.Config) Client {
	return Client{
		ConfigPath: cfg.RcloneConf,
		Service:    cfg.Service,
		Bucket:     cfg.Bucket,
		Prefix:     cfg.Path,
	}
}

// Destination returns the rclone path of the artifact directory.
func (c Client) Destination() string {
	return fmt.Sprintf("%s:%s/%s", c.Service, c.Bucket, c.Prefix)
}

// run invokes rclone with the client's configuration file and returns
// the combined output.
func (c Client) run(args ...string) (string, error) {
	args = append([]string{"--config", c.ConfigPath}, args...)
	logger.Debugf("running %s", shellquote.Join(append([]string{config.RcloneTool}, args...)...))
	output, err := runCommand(config.RcloneTool, args...)
	logger.Tracef("output: %v", output)
	return output, err
}

// Copy uploads the file at path to the destination.
func (c Client) Copy(path string) error {
	output, err := c.run("copy", path, c.Destination())
	if err != nil {
		return errors.Annotatef(err, "rclone copy failed: %s", strings.TrimSpace(output))
	}
	return nil
}

// List returns the names of the artifacts at the destination, as
// reported by the server.
func (c Client) List() ([]string, error) {
	output, err := c.run("lsf", c.Destination())
	if err != nil {
		return nil, errors.Annotatef(err, "rclone lsf failed: %s", strings.TrimSpace(output))
	}
	var names []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Delete removes the named artifact from the destination.
func (c Client) Delete(name string) error {
	output, err := c.run("deletefile", c.Destination()+"/"+name)
	if err != nil {
		return errors.Annotatef(err, "rclone deletefile failed: %s", strings.TrimSpace(output))
	}
	return nil
}
