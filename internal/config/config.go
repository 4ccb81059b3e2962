// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package config assembles a backup run's configuration from the
// process environment.
package config

import (
	"os"

	"github.com/juju/errors"
)

// The environment variable names every run requires.
const (
	RcloneConfEnv = "RCLONE_CONF"
	ServiceEnv    = "OSS"
	BucketEnv     = "OSS_BUCKET"
	PathEnv       = "OSS_PATH"
	DatabaseEnv   = "MONGO_DB"
	CollectionEnv = "MONGO_COL"
	URIEnv        = "MONGO_URI"
	UsernameEnv   = "MONGO_RO_USERNAME"
	PasswordEnv   = "MONGO_RO_PASSWORD"
	PublicKeyEnv  = "ENCRYPTION_PUBLIC_KEY"
	RetentionEnv  = "RETENTION_PERIOD"
)

// RequiredEnv lists the environment variables a run must have set, in
// the order they are reported when missing.
var RequiredEnv = []string{
	RcloneConfEnv,
	ServiceEnv,
	BucketEnv,
	PathEnv,
	DatabaseEnv,
	CollectionEnv,
	URIEnv,
	UsernameEnv,
	PasswordEnv,
	PublicKeyEnv,
	RetentionEnv,
}

// Config holds everything a backup run reads from the environment.
type Config struct {
	// RcloneConf is the path of the rclone configuration file.
	RcloneConf string

	// Service is the rclone remote name of the object storage
	// service.
	Service string

	// Bucket is the bucket uploads land in.
	Bucket string

	// Path is the object path prefix inside the bucket.
	Path string

	// Database and Collection identify what gets dumped.
	Database   string
	Collection string

	// URI is the MongoDB connection string. Credentials are carried
	// separately in Username and Password, never in the URI.
	URI string

	// Username and Password authenticate the read-only dump user.
	Username string
	Password string

	// PublicKey is the age recipient artifacts are encrypted to.
	PublicKey string

	// RetentionPeriod bounds the age of remote artifacts, e.g. "7d".
	RetentionPeriod string
}

// FromEnv reads the configuration from the process environment,
// failing on the first required name that is unset or empty.
func FromEnv() (Config, error) {
	cfg := Config{
		RcloneConf:      os.Getenv(RcloneConfEnv),
		Service:         os.Getenv(ServiceEnv),
		Bucket:          os.Getenv(BucketEnv),
		Path:            os.Getenv(PathEnv),
		Database:        os.Getenv(DatabaseEnv),
		Collection:      os.Getenv(CollectionEnv),
		URI:             os.Getenv(URIEnv),
		Username:        os.Getenv(UsernameEnv),
		Password:        os.Getenv(PasswordEnv),
		PublicKey:       os.Getenv(PublicKeyEnv),
		RetentionPeriod: os.Getenv(RetentionEnv),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}
	return cfg, nil
}

// Validate returns an error naming the first required value that is
// empty.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{RcloneConfEnv, c.RcloneConf},
		{ServiceEnv, c.Service},
		{BucketEnv, c.Bucket},
		{PathEnv, c.Path},
		{DatabaseEnv, c.Database},
		{CollectionEnv, c.Collection},
		{URIEnv, c.URI},
		{UsernameEnv, c.Username},
		{PasswordEnv, c.Password},
		{PublicKeyEnv, c.PublicKey},
		{RetentionEnv, c.RetentionPeriod},
	} {
		if f.value == "" {
			return errors.Errorf("%s not set", f.name)
		}
	}
	return nil
}
