package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"parking-backend/internal/models"
	"parking-backend/internal/services"
	"parking-backend/pkg/utils"
)

type StatsHandler struct {
	statsService *services.StatsService
	validator    *validator.Validate
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		validator:    validator.New(),
	}
}

// GetStats retrieves all daily stat records
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetAllStats()
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpsertStat inserts or replaces the record for the supplied date
func (h *StatsHandler) UpsertStat(c *gin.Context) {
	var stat models.DailyStat
	if err := c.ShouldBindJSON(&stat); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(&stat); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	stored, err := h.statsService.UpsertStat(stat)
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, stored)
}
