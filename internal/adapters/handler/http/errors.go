package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http/middleware"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
)

// currentMemberFor resolves the authenticated account to its household
// member profile. A nil return means the response has already been written.
func currentMemberFor(c *gin.Context, svc *services.HouseholdService) *domain.HouseholdUser {
	authUserID, ok := middleware.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}

	member, err := svc.CurrentMember(c.Request.Context(), authUserID)
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no household joined yet"})
			return nil
		}
		handleError(c, err)
		return nil
	}
	return member
}

// handleError maps domain sentinels to HTTP statuses. Anything unrecognized
// is logged and hidden behind a 500.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrHouseholdNotFound),
		errors.Is(err, domain.ErrHouseholdUserNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrAlreadyMember):
		c.JSON(http.StatusConflict, gin.H{"error": "account already belongs to a household"})

	case errors.Is(err, domain.ErrInvitationExpired):
		c.JSON(http.StatusGone, gin.H{"error": "invitation has expired"})

	case errors.Is(err, domain.ErrNonPositiveVolume),
		errors.Is(err, domain.ErrInvalidWorkoutType),
		errors.Is(err, domain.ErrNonPositiveDuration),
		errors.Is(err, domain.ErrNotesTooLong),
		errors.Is(err, domain.ErrHouseholdNameEmpty),
		errors.Is(err, domain.ErrHouseholdNameLong),
		errors.Is(err, domain.ErrDisplayNameEmpty),
		errors.Is(err, domain.ErrDisplayNameTooLong),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrInvalidBottleSize),
		errors.Is(err, domain.ErrNegativeGoalHours),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrInvalidDailyGoal),
		errors.Is(err, domain.ErrInvalidTimezone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
