package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

type WorkoutHandler struct {
	svc        *services.WorkoutService
	households *services.HouseholdService
}

func NewWorkoutHandler(svc *services.WorkoutService, households *services.HouseholdService) *WorkoutHandler {
	return &WorkoutHandler{
		svc:        svc,
		households: households,
	}
}

type logWorkoutRequest struct {
	WorkoutType   string    `json:"workout_type" binding:"required"`
	DurationHours float64   `json:"duration_hours" binding:"required"`
	Notes         string    `json:"notes"`
	RecordedAt    time.Time `json:"recorded_at"`
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.POST("", h.Log)
		workouts.GET("", h.List)
		workouts.DELETE("/:id", h.Delete)
	}
}

func (h *WorkoutHandler) Log(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.svc.LogWorkout(c.Request.Context(), services.LogWorkoutInput{
		MemberID:      member.ID,
		WorkoutType:   req.WorkoutType,
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
		RecordedAt:    req.RecordedAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *WorkoutHandler) List(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if t := c.Query("to"); t != "" {
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			to = parsed
		}
	}
	if f := c.Query("from"); f != "" {
		if parsed, err := time.Parse(time.RFC3339, f); err == nil {
			from = parsed
		}
	}

	entries, err := h.svc.ListForRange(c.Request.Context(), member.HouseholdID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return
	}

	if err := h.svc.DeleteEntry(c.Request.Context(), c.Param("id"), member.ID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
