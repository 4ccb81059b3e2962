// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package backup

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/juju/errors"
)

const workspacePrefix = "mgobackup-"

var exit = os.Exit

// Workspace is the process-exclusive temporary directory intermediate
// artifacts are staged in. It is removed on Close and, through a
// signal watcher, when the process is interrupted or terminated.
type Workspace struct {
	dir string

	interrupted chan os.Signal
	closeOnce   sync.Once
	closeErr    error
}

// NewWorkspace creates the workspace directory and registers its
// removal on SIGINT and SIGTERM.
func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", workspacePrefix)
	if err != nil {
		return nil, errors.Annotate(err, "creating workspace directory")
	}
	ws := &Workspace{
		dir:         dir,
		interrupted: make(chan os.Signal, 1),
	}
	signal.Notify(ws.interrupted, os.Interrupt, syscall.SIGTERM)
	go ws.watch()
	logger.Debugf("created workspace %s", dir)
	return ws, nil
}

func (ws *Workspace) watch() {
	sig, ok := <-ws.interrupted
	if !ok {
		return
	}
	logger.Errorf("caught %v, removing workspace %s", sig, ws.dir)
	if err := os.RemoveAll(ws.dir); err != nil {
		logger.Errorf("removing workspace: %v", err)
	}
	exit(1)
}

// Dir returns the workspace directory path.
func (ws *Workspace) Dir() string {
	return ws.dir
}

// Path returns the path of name inside the workspace.
func (ws *Workspace) Path(name string) string {
	return filepath.Join(ws.dir, name)
}

// Close removes the workspace directory and stops the signal watcher.
// It is safe to call more than once.
func (ws *Workspace) Close() error {
	ws.closeOnce.Do(func() {
		signal.Stop(ws.interrupted)
		close(ws.interrupted)
		ws.closeErr = os.RemoveAll(ws.dir)
	})
	return errors.Trace(ws.closeErr)
}
