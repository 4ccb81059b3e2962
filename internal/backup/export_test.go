// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package backup

import (
	"os"
)

var (
	RunCommand = &runCommand
	CheckTools = &checkTools
	Exit       = &exit

	ElidePassword = elidePassword
)

// WorkspaceDir returns the run's workspace directory.
func (b *Backup) WorkspaceDir() string {
	return b.ws.Dir()
}

// ArtifactName returns the name the uploaded artifact will carry.
func (b *Backup) ArtifactName() string {
	return b.name + ".tgz.enc"
}

// Interrupt delivers sig to the workspace signal watcher.
func (ws *Workspace) Interrupt(sig os.Signal) {
	ws.interrupted <- sig
}
