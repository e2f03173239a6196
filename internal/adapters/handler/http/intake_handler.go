package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

type IntakeHandler struct {
	svc        *services.IntakeService
	households *services.HouseholdService
}

func NewIntakeHandler(svc *services.IntakeService, households *services.HouseholdService) *IntakeHandler {
	return &IntakeHandler{
		svc:        svc,
		households: households,
	}
}

type logIntakeRequest struct {
	VolumeOz   float64   `json:"volume_oz" binding:"required"`
	RecordedAt time.Time `json:"recorded_at"`
}

type logBottlesRequest struct {
	Bottles int `json:"bottles" binding:"required,min=1"`
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	intake := router.Group("/intake")
	{
		intake.POST("", h.Log)
		intake.POST("/bottles", h.LogBottles)
		intake.GET("", h.List)
		intake.DELETE("/:id", h.Delete)
	}
}

// resolveMember is shared by every intake route: the URL never carries the
// member id, it always comes from the authenticated account.
func (h *IntakeHandler) resolveMember(c *gin.Context) (memberID, householdID string, ok bool) {
	member := currentMemberFor(c, h.households)
	if member == nil {
		return "", "", false
	}
	return member.ID, member.HouseholdID, true
}

func (h *IntakeHandler) Log(c *gin.Context) {
	memberID, _, ok := h.resolveMember(c)
	if !ok {
		return
	}

	var req logIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.svc.LogIntake(c.Request.Context(), services.LogIntakeInput{
		MemberID:   memberID,
		VolumeOz:   req.VolumeOz,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *IntakeHandler) LogBottles(c *gin.Context) {
	memberID, _, ok := h.resolveMember(c)
	if !ok {
		return
	}

	var req logBottlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.svc.LogBottles(c.Request.Context(), memberID, req.Bottles)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *IntakeHandler) List(c *gin.Context) {
	_, householdID, ok := h.resolveMember(c)
	if !ok {
		return
	}

	kind, ok := parseRangeKind(c)
	if !ok {
		return
	}

	entries, err := h.svc.ListForRange(c.Request.Context(), householdID, kind, time.Now().UTC(), time.UTC)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *IntakeHandler) Delete(c *gin.Context) {
	memberID, _, ok := h.resolveMember(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(c.Request.Context(), c.Param("id"), memberID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseRangeKind reads the ?range= query param, defaulting to week.
func parseRangeKind(c *gin.Context) (analytics.RangeKind, bool) {
	switch c.DefaultQuery("range", "week") {
	case "week":
		return analytics.RangeWeek, true
	case "month":
		return analytics.RangeMonth, true
	case "year":
		return analytics.RangeYear, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range (must be week, month or year)"})
		return analytics.RangeWeek, false
	}
}
