package services

import (
	"context"
	"log"

	"parking-backend/internal/mirror"
	"parking-backend/internal/models"
	"parking-backend/internal/repository"
	"parking-backend/internal/store"
)

const backupDoc = "backup"

// BackupService reconciles the local collection documents with the remote
// mirror. Local writes are authoritative; the mirror is advisory — a remote
// failure never fails a save, and a remote pull failure only cascades a load
// to the local backup document.
type BackupService struct {
	store        *store.Store
	mirror       mirror.Mirror
	vehicleRepo  *repository.VehicleRepository
	clientRepo   *repository.ClientRepository
	settingsRepo *repository.SettingsRepository
	statsRepo    *repository.StatsRepository
}

func NewBackupService(
	s *store.Store,
	m mirror.Mirror,
	vehicleRepo *repository.VehicleRepository,
	clientRepo *repository.ClientRepository,
	settingsRepo *repository.SettingsRepository,
	statsRepo *repository.StatsRepository,
) *BackupService {
	return &BackupService{
		store:        s,
		mirror:       m,
		vehicleRepo:  vehicleRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
	}
}

// Save persists the snapshot verbatim to the local backup document,
// overwrites each live collection present in the snapshot and then attempts
// a mirror push. The returned bool reports whether the mirror accepted the
// snapshot; the save itself succeeds once the local writes succeed.
func (s *BackupService) Save(ctx context.Context, snap *models.BackupSnapshot) (bool, error) {
	if err := store.Write(s.store, backupDoc, snap); err != nil {
		return false, err
	}
	if err := s.applySnapshot(snap); err != nil {
		return false, err
	}

	status := s.mirror.Push(ctx, snap)
	if !status.OK && status.Reason != mirror.ReasonNotConfigured {
		log.Printf("Backup mirror push failed: %s", status.Reason)
	}
	return status.OK, nil
}

// Load returns the remote snapshot when the mirror has one; remote wins over
// local because it is the more durable copy. Any pull failure, including
// not_configured and not_found, silently falls back to the local backup
// document, defaulting to an empty snapshot.
func (s *BackupService) Load(ctx context.Context) (*models.BackupSnapshot, error) {
	if snap, status := s.mirror.Pull(ctx); status.OK {
		return snap, nil
	}

	snap, err := store.Read(s.store, backupDoc, models.BackupSnapshot{})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// RestoreFromRemote runs once at startup. When the mirror holds a snapshot,
// the live collections and the local backup document are overwritten from it
// so a freshly provisioned disk resumes from the last known remote state.
// Every failure is logged and swallowed; startup always proceeds.
func (s *BackupService) RestoreFromRemote(ctx context.Context) {
	snap, status := s.mirror.Pull(ctx)
	if !status.OK {
		if status.Reason != mirror.ReasonNotConfigured && status.Reason != mirror.ReasonNotFound {
			log.Printf("Startup restore skipped: %s", status.Reason)
		}
		return
	}

	if err := s.applySnapshot(snap); err != nil {
		log.Printf("Startup restore failed: %v", err)
		return
	}
	if err := store.Write(s.store, backupDoc, snap); err != nil {
		log.Printf("Startup restore failed: %v", err)
		return
	}
	log.Printf("Restored local data from remote backup")
}

// applySnapshot overwrites each live collection whose field is present in
// the snapshot. Absent fields leave the corresponding document alone.
func (s *BackupService) applySnapshot(snap *models.BackupSnapshot) error {
	if snap.Vehicles != nil {
		if err := s.vehicleRepo.ReplaceAll(snap.Vehicles); err != nil {
			return err
		}
	}
	if snap.PermanentClients != nil {
		if err := s.clientRepo.ReplaceAll(snap.PermanentClients); err != nil {
			return err
		}
	}
	if snap.Settings != nil {
		if err := s.settingsRepo.Put(*snap.Settings); err != nil {
			return err
		}
	}
	if snap.DailyStats != nil {
		if err := s.statsRepo.ReplaceAll(snap.DailyStats); err != nil {
			return err
		}
	}
	return nil
}
