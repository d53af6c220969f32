package mirror

import (
	"context"

	"parking-backend/internal/models"
)

// Disabled satisfies Mirror when no remote storage is configured. Both calls
// report not_configured.
type Disabled struct{}

func (d *Disabled) Push(ctx context.Context, snap *models.BackupSnapshot) Status {
	return Status{OK: false, Reason: ReasonNotConfigured}
}

func (d *Disabled) Pull(ctx context.Context) (*models.BackupSnapshot, Status) {
	return nil, Status{OK: false, Reason: ReasonNotConfigured}
}
