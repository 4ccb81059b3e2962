// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package backup

// Stage identifies a step of the backup pipeline.
type Stage int

const (
	StageValidating Stage = iota
	StageDumping
	StageArchiving
	StageEncrypting
	StageUploading
	StagePruning
	StageDone
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageValidating:
		return "validating"
	case StageDumping:
		return "dumping"
	case StageArchiving:
		return "archiving"
	case StageEncrypting:
		return "encrypting"
	case StageUploading:
		return "uploading"
	case StagePruning:
		return "pruning"
	case StageDone:
		return "done"
	}
	return "unknown"
}
