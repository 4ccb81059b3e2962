// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/juju/cmd/v4"
	"github.com/juju/loggo/v2"

	"github.com/juju/mgobackup/version"
)

var logger = loggo.GetLogger("mgobackup.cmd")

const (
	startupLoggingConfigEnvKey = "MGOBACKUP_STARTUP_LOGGING_CONFIG"
	loggingConfigEnvKey        = "MGOBACKUP_LOGGING_CONFIG"
)

func init() {
	// If the environment key is empty, ConfigureLoggers returns nil
	// and does nothing.
	err := loggo.ConfigureLoggers(os.Getenv(startupLoggingConfigEnvKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR parsing %s: %s\n\n", startupLoggingConfigEnvKey, err)
	}
}

var mgobackupDoc = `
mgobackup dumps one MongoDB collection with mongodump, packs the dump
into a gzipped tar archive, encrypts the archive to an age recipient,
uploads the result to object storage with rclone and finally deletes
uploaded artifacts older than the retention period.

All configuration is read from the environment. A full backup run
requires:

    RCLONE_CONF            path of the rclone configuration file
    OSS                    rclone remote name of the storage service
    OSS_BUCKET             destination bucket
    OSS_PATH               object path prefix inside the bucket
    MONGO_DB               database to dump
    MONGO_COL              collection to dump
    MONGO_URI              MongoDB connection string, without credentials
    MONGO_RO_USERNAME      read-only user the dump runs as
    MONGO_RO_PASSWORD      password of the read-only user
    ENCRYPTION_PUBLIC_KEY  age recipient artifacts are encrypted to
    RETENTION_PERIOD       maximum artifact age: "7d", "12h", "45m"
`

// Main runs the mgobackup command with the given argument list and
// returns the process exit code.
func Main(args []string) int {
	ctx, err := cmd.DefaultContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return cmd.Main(newMgobackupCommand(), ctx, args[1:])
}

func newMgobackupCommand() cmd.Command {
	backupCmd := cmd.NewSuperCommand(cmd.SuperCommandParams{
		Name:    "mgobackup",
		Doc:     mgobackupDoc,
		Purpose: "back up a MongoDB collection to object storage",
		Log: &cmd.Log{
			DefaultConfig: os.Getenv(loggingConfigEnvKey),
		},
		Version:   version.Current.String(),
		NotifyRun: runNotifier,
	})
	backupCmd.Register(newBackupCommand())
	backupCmd.Register(newPruneCommand())
	backupCmd.Register(newListCommand())
	return backupCmd
}

func runNotifier(name string) {
	logger.Infof("running %s [%s %s %s]", name, version.Current, runtime.Compiler, runtime.Version())
}

func main() {
	os.Exit(Main(os.Args))
}
