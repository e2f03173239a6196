package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http/middleware"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

type HouseholdHandler struct {
	svc *services.HouseholdService
}

func NewHouseholdHandler(svc *services.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{svc: svc}
}

type createHouseholdRequest struct {
	HouseholdName string  `json:"household_name" binding:"required"`
	DisplayName   string  `json:"display_name" binding:"required"`
	Color         string  `json:"color" binding:"required"`
	BottleSizeOz  float64 `json:"bottle_size_oz" binding:"required"`
}

type joinHouseholdRequest struct {
	InviteCode   string  `json:"invite_code" binding:"required"`
	DisplayName  string  `json:"display_name" binding:"required"`
	Color        string  `json:"color" binding:"required"`
	BottleSizeOz float64 `json:"bottle_size_oz" binding:"required"`
}

type renameHouseholdRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateMemberRequest struct {
	DisplayName  string  `json:"display_name" binding:"required"`
	Color        string  `json:"color" binding:"required"`
	BottleSizeOz float64 `json:"bottle_size_oz" binding:"required"`
	CardioGoal   float64 `json:"weekly_cardio_goal_hours"`
	StrengthGoal float64 `json:"weekly_strength_goal_hours"`
}

type updateSettingsRequest struct {
	Unit               string  `json:"unit" binding:"required"`
	DailyGoalVolumeOz  float64 `json:"daily_goal_volume_oz" binding:"required"`
	Timezone           string  `json:"timezone" binding:"required"`
	CelebrationEnabled bool    `json:"celebration_enabled"`
	SoundEnabled       bool    `json:"sound_enabled"`
}

type createInvitationRequest struct {
	Email *string `json:"email"`
}

func (h *HouseholdHandler) RegisterRoutes(router *gin.RouterGroup) {
	households := router.Group("/households")
	{
		households.POST("", h.Create)
		households.POST("/join", h.Join)
		households.GET("/me", h.GetMine)
		households.PUT("/me", h.Rename)
		households.GET("/me/settings", h.GetSettings)
		households.PUT("/me/settings", h.UpdateSettings)
		households.POST("/me/invitations", h.CreateInvitation)
		households.POST("/me/reset", h.ResetData)
	}

	members := router.Group("/members")
	{
		members.PUT("/me", h.UpdateMe)
		members.DELETE("/:id", h.RemoveMember)
	}
}

func (h *HouseholdHandler) currentMember(c *gin.Context) *domain.HouseholdUser {
	return currentMemberFor(c, h.svc)
}

func (h *HouseholdHandler) Create(c *gin.Context) {
	authUserID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	household, owner, err := h.svc.CreateHousehold(c.Request.Context(), services.CreateHouseholdInput{
		AuthUserID:    authUserID,
		HouseholdName: req.HouseholdName,
		DisplayName:   req.DisplayName,
		Color:         req.Color,
		BottleSizeOz:  req.BottleSizeOz,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"household": household,
		"member":    owner,
	})
}

func (h *HouseholdHandler) Join(c *gin.Context) {
	authUserID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req joinHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	member, err := h.svc.JoinHousehold(c.Request.Context(), services.JoinHouseholdInput{
		AuthUserID:   authUserID,
		InviteCode:   req.InviteCode,
		DisplayName:  req.DisplayName,
		Color:        req.Color,
		BottleSizeOz: req.BottleSizeOz,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *HouseholdHandler) GetMine(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	household, err := h.svc.GetHousehold(c.Request.Context(), member.HouseholdID)
	if err != nil {
		handleError(c, err)
		return
	}

	members, err := h.svc.ListMembers(c.Request.Context(), member.HouseholdID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"household": household,
		"member":    member,
		"members":   members,
	})
}

func (h *HouseholdHandler) Rename(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}
	if !member.IsOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can rename the household"})
		return
	}

	var req renameHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	household, err := h.svc.RenameHousehold(c.Request.Context(), member.HouseholdID, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, household)
}

func (h *HouseholdHandler) GetSettings(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	settings, err := h.svc.GetSettings(c.Request.Context(), member.HouseholdID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *HouseholdHandler) UpdateSettings(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	settings, err := h.svc.UpdateSettings(c.Request.Context(), services.UpdateSettingsInput{
		HouseholdID:        member.HouseholdID,
		Unit:               req.Unit,
		DailyGoalVolumeOz:  req.DailyGoalVolumeOz,
		Timezone:           req.Timezone,
		CelebrationEnabled: req.CelebrationEnabled,
		SoundEnabled:       req.SoundEnabled,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *HouseholdHandler) CreateInvitation(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	var req createInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	inv, err := h.svc.CreateInvitation(c.Request.Context(), member.HouseholdID, member.ID, req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

func (h *HouseholdHandler) ResetData(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}
	if !member.IsOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can reset household data"})
		return
	}

	if err := h.svc.ResetData(c.Request.Context(), member.HouseholdID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HouseholdHandler) UpdateMe(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.svc.UpdateMember(c.Request.Context(), services.UpdateMemberInput{
		MemberID:     member.ID,
		DisplayName:  req.DisplayName,
		Color:        req.Color,
		BottleSizeOz: req.BottleSizeOz,
		CardioGoal:   req.CardioGoal,
		StrengthGoal: req.StrengthGoal,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *HouseholdHandler) RemoveMember(c *gin.Context) {
	member := h.currentMember(c)
	if member == nil {
		return
	}

	targetID := c.Param("id")
	if targetID != member.ID && !member.IsOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can remove other members"})
		return
	}

	if err := h.svc.RemoveMember(c.Request.Context(), targetID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
