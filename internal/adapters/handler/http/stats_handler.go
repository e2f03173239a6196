package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

type StatsHandler struct {
	svc        *services.StatsService
	households *services.HouseholdService
}

func NewStatsHandler(svc *services.StatsService, households *services.HouseholdService) *StatsHandler {
	return &StatsHandler{
		svc:        svc,
		households: households,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/daily", h.GetDailyStats)
		stats.GET("/water", h.GetWaterKPIs)
		stats.GET("/workouts/weekly", h.GetWeeklyWorkoutStats)
		stats.GET("/workouts", h.GetWorkoutKPIs)
	}
}

func (h *StatsHandler) GetDailyStats(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	kind, ok := parseRangeKind(c)
	if !ok {
		return
	}

	stats, err := h.svc.DailyStats(c.Request.Context(), member.HouseholdID, kind)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": stats})
}

func (h *StatsHandler) GetWaterKPIs(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	kind, ok := parseRangeKind(c)
	if !ok {
		return
	}

	report, err := h.svc.WaterKPIs(c.Request.Context(), member.HouseholdID, kind)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *StatsHandler) GetWeeklyWorkoutStats(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	stats, err := h.svc.WeeklyWorkoutStats(c.Request.Context(), member.HouseholdID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": stats})
}

func (h *StatsHandler) GetWorkoutKPIs(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	report, err := h.svc.WorkoutKPIs(c.Request.Context(), member.HouseholdID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
