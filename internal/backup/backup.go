// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package backup runs the dump, archive, encrypt, upload, prune
// pipeline for a single MongoDB collection.
package backup

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/utils/v4"
	"github.com/juju/utils/v4/hash"
	"github.com/kballard/go-shellquote"

	"github.com/juju/mgobackup/internal/config"
	"github.com/juju/mgobackup/internal/retention"
)

var logger = loggo.GetLogger("mgobackup.backup")

var (
	runCommand = utils.RunCommand
	checkTools = config.CheckTools
)

const (
	tarTool = "tar"

	// authDatabase is the database mongodump authenticates against.
	authDatabase = "admin"
)

// Remote is the view of the artifact store the pipeline needs: upload
// for the new artifact, listing and deletion for pruning old ones.
type Remote interface {
	retention.Remote

	// Copy uploads the file at path to the destination.
	Copy(path string) error
}

// Backup is a single run of the pipeline. Runs are single use: create
// one with New, Run it, Close it.
type Backup struct {
	cfg    config.Config
	remote Remote
	clock  clock.Clock
	ws     *Workspace

	// name is the artifact stem, dump-<unixtime>. The dump directory,
	// the archive and the ciphertext all derive their paths from it,
	// and at most one of the three exists at any moment.
	name string
}

// New creates the workspace for a run. The caller must Close the
// returned Backup to remove the workspace again, whether or not Run
// succeeds.
func New(cfg config.Config, remote Remote, clk clock.Clock) (*Backup, error) {
	ws, err := NewWorkspace()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Backup{
		cfg:    cfg,
		remote: remote,
		clock:  clk,
		ws:     ws,
		name:   fmt.Sprintf("dump-%d", clk.Now().Unix()),
	}, nil
}

// Close removes the workspace and everything still in it.
func (b *Backup) Close() error {
	return errors.Trace(b.ws.Close())
}

func (b *Backup) dumpDir() string {
	return b.ws.Path(b.name)
}

func (b *Backup) archivePath() string {
	return b.dumpDir() + ".tgz"
}

func (b *Backup) cipherPath() string {
	return b.archivePath() + ".enc"
}

// Run executes the pipeline stages strictly in order. The first
// failure aborts the run; nothing is retried.
func (b *Backup) Run() error {
	if err := b.validate(); err != nil {
		return errors.Annotatef(err, "%s", StageValidating)
	}
	if err := b.dump(); err != nil {
		return errors.Annotatef(err, "%s", StageDumping)
	}
	if err := b.archive(); err != nil {
		return errors.Annotatef(err, "%s", StageArchiving)
	}
	if err := b.encrypt(); err != nil {
		return errors.Annotatef(err, "%s", StageEncrypting)
	}
	if err := b.upload(); err != nil {
		return errors.Annotatef(err, "%s", StageUploading)
	}
	if err := b.prune(); err != nil {
		return errors.Annotatef(err, "%s", StagePruning)
	}
	logger.Infof("backup of %s.%s %s", b.cfg.Database, b.cfg.Collection, StageDone)
	return nil
}

// validate confirms the configuration is complete and the external
// tools are present before any of them is invoked.
func (b *Backup) validate() error {
	if err := b.cfg.Validate(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(checkTools())
}

// dump runs mongodump into the workspace. The password reaches the
// tool on its command line but is elided from the logged one.
func (b *Backup) dump() error {
	args := []string{
		"--uri", b.cfg.URI,
		"--authenticationDatabase", authDatabase,
		"--db", b.cfg.Database,
		"--collection", b.cfg.Collection,
		"--username", b.cfg.Username,
		"--password", b.cfg.Password,
		"--out", b.dumpDir(),
	}
	logger.Infof("dumping %s.%s", b.cfg.Database, b.cfg.Collection)
	logger.Debugf("running %s", shellquote.Join(append([]string{config.MongodumpTool}, elidePassword(args)...)...))
	output, err := runCommand(config.MongodumpTool, args...)
	if err != nil {
		return errors.Annotatef(err, "mongodump failed: %s", strings.TrimSpace(output))
	}
	return nil
}

// archive packs the dump directory's contents into a gzipped tar
// archive alongside it, then removes the directory. The directory
// only goes once the archive is confirmed on disk.
func (b *Backup) archive() error {
	dumpDir, archivePath := b.dumpDir(), b.archivePath()
	logger.Infof("archiving %s", filepath.Base(dumpDir))
	output, err := runCommand(tarTool, "-czf", archivePath, "-C", dumpDir, ".")
	if err != nil {
		return errors.Annotatef(err, "tar failed: %s", strings.TrimSpace(output))
	}
	info, err := os.Stat(archivePath)
	if err != nil {
		return errors.Annotate(err, "archive missing after tar")
	}
	if err := os.RemoveAll(dumpDir); err != nil {
		return errors.Annotate(err, "removing dump directory")
	}
	logger.Infof("created %s (%s)", filepath.Base(archivePath), humanize.IBytes(uint64(info.Size())))
	return nil
}

// encrypt seals the archive to the configured recipient, then removes
// the plaintext. The plaintext only goes once the ciphertext is
// confirmed on disk.
func (b *Backup) encrypt() error {
	archivePath, cipherPath := b.archivePath(), b.cipherPath()
	logger.Infof("encrypting %s", filepath.Base(archivePath))
	output, err := runCommand(config.AgeTool, "-r", b.cfg.PublicKey, "-o", cipherPath, archivePath)
	if err != nil {
		return errors.Annotatef(err, "age failed: %s", strings.TrimSpace(output))
	}
	if _, err := os.Stat(cipherPath); err != nil {
		return errors.Annotate(err, "ciphertext missing after age")
	}
	if err := os.Remove(archivePath); err != nil {
		return errors.Annotate(err, "removing plaintext archive")
	}
	sum, err := fileChecksum(cipherPath)
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("created %s (sha1 %s)", filepath.Base(cipherPath), sum)
	return nil
}

// upload copies the ciphertext to the remote destination. The local
// copy stays where it is; workspace teardown owns its removal.
func (b *Backup) upload() error {
	cipherPath := b.cipherPath()
	logger.Infof("uploading %s to %s:%s/%s", filepath.Base(cipherPath), b.cfg.Service, b.cfg.Bucket, b.cfg.Path)
	return errors.Trace(b.remote.Copy(cipherPath))
}

// prune applies the retention period to the remote artifacts,
// including the one just uploaded.
func (b *Backup) prune() error {
	logger.Infof("pruning artifacts older than %s", b.cfg.RetentionPeriod)
	deleted, err := retention.Prune(retention.PruneParams{
		Remote: b.remote,
		Period: b.cfg.RetentionPeriod,
		Clock:  b.clock,
	})
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("pruned %d artifacts", len(deleted))
	return nil
}

// elidePassword returns a copy of args with the value following each
// --password flag replaced, for logging.
func elidePassword(args []string) []string {
	elided := append([]string(nil), args...)
	for i := 0; i < len(elided)-1; i++ {
		if elided[i] == "--password" {
			elided[i+1] = "*****"
		}
	}
	return elided
}

// fileChecksum returns the base64 encoded SHA-1 digest of the file at
// path.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Trace(err)
	}
	defer f.Close()
	hasher := hash.NewHashingWriter(io.Discard, sha1.New())
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errors.Annotate(err, "checksumming ciphertext")
	}
	return hasher.Base64Sum(), nil
}
