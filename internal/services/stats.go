package services

import (
	"parking-backend/internal/models"
	"parking-backend/internal/repository"
)

type StatsService struct {
	statsRepo *repository.StatsRepository
}

func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) GetAllStats() ([]models.DailyStat, error) {
	return s.statsRepo.List()
}

func (s *StatsService) UpsertStat(stat models.DailyStat) (models.DailyStat, error) {
	return s.statsRepo.Upsert(stat)
}
