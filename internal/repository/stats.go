package repository

import (
	"sync"

	"parking-backend/internal/models"
	"parking-backend/internal/store"
)

const statsDoc = "daily-stats"

type StatsRepository struct {
	store *store.Store
	mu    sync.Mutex
}

func NewStatsRepository(s *store.Store) *StatsRepository {
	return &StatsRepository{store: s}
}

func (r *StatsRepository) List() ([]models.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Read(r.store, statsDoc, []models.DailyStat{})
}

// Upsert replaces the record with a matching date or appends when none
// exists, keeping at most one record per calendar date.
func (r *StatsRepository) Upsert(stat models.DailyStat) (models.DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, err := store.Read(r.store, statsDoc, []models.DailyStat{})
	if err != nil {
		return models.DailyStat{}, err
	}

	replaced := false
	for i := range stats {
		if stats[i].Date == stat.Date {
			stats[i] = stat
			replaced = true
			break
		}
	}
	if !replaced {
		stats = append(stats, stat)
	}

	if err := store.Write(r.store, statsDoc, stats); err != nil {
		return models.DailyStat{}, err
	}
	return stat, nil
}

func (r *StatsRepository) ReplaceAll(stats []models.DailyStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return store.Write(r.store, statsDoc, stats)
}
