// Package mirror pushes and pulls the aggregate backup snapshot to an
// S3-compatible object store. Every operation is best effort: failures are
// reported as a Status value, never as an error, so callers fold the outcome
// into their own response instead of aborting.
package mirror

import (
	"context"

	"parking-backend/internal/config"
	"parking-backend/internal/models"
)

// Reason values carried by Status when OK is false.
const (
	ReasonNotConfigured  = "not_configured"
	ReasonNotFound       = "not_found"
	ReasonUploadFailed   = "upload_failed"
	ReasonDownloadFailed = "download_failed"
)

// Status is the outcome of a mirror operation. not_configured and not_found
// are legitimate non-error outcomes, not faults.
type Status struct {
	OK     bool
	Reason string
}

type Mirror interface {
	Push(ctx context.Context, snap *models.BackupSnapshot) Status
	Pull(ctx context.Context) (*models.BackupSnapshot, Status)
}

// New returns the S3-backed mirror when the remote trio is configured and a
// disabled no-op otherwise, so callers never branch on configuration.
func New(cfg *config.Config) Mirror {
	if !cfg.MirrorConfigured() {
		return &Disabled{}
	}
	return NewS3Mirror(cfg)
}
