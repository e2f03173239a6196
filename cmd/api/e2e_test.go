package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http"
	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/repository"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/workers"
)

// buildTestApp wires the full router against in-memory repositories, so the
// lifecycle test exercises real JWT auth and every handler without external
// infrastructure.
func buildTestApp() *gin.Engine {
	userRepo := repository.NewInMemoryUserRepository()
	householdRepo := repository.NewInMemoryHouseholdRepository()
	memberRepo := repository.NewInMemoryHouseholdUserRepository()
	invitationRepo := repository.NewInMemoryInvitationRepository()
	settingsRepo := repository.NewInMemorySettingsRepository()
	celebrationRepo := repository.NewInMemoryCelebrationRepository()
	intakeRepo := repository.NewInMemoryIntakeRepository()
	workoutRepo := repository.NewInMemoryWorkoutRepository()

	tokenService := services.NewTokenService("e2e-test-secret", "watertracker-test", time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	householdService := services.NewHouseholdService(householdRepo, memberRepo, invitationRepo, settingsRepo, intakeRepo, workoutRepo)

	goalWorker := workers.NewGoalWorker(settingsRepo, intakeRepo, memberRepo, celebrationRepo)

	intakeService := services.NewIntakeService(intakeRepo, memberRepo, goalWorker)
	workoutService := services.NewWorkoutService(workoutRepo, memberRepo)
	statsService := services.NewStatsService(memberRepo, settingsRepo, intakeRepo, workoutRepo)

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService),
		HouseholdHandler: adapterHTTP.NewHouseholdHandler(householdService),
		IntakeHandler:    adapterHTTP.NewIntakeHandler(intakeService, householdService),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(workoutService, householdService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService, householdService),
		TokenService:     tokenService,
		StartTime:        time.Now(),
	})
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_HouseholdLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := buildTestApp()

	var token string
	var entryID string

	t.Run("1. Register", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/register",
			"", `{"email": "alice@example.com", "password": "supersecret"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("2. Login", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login",
			"", `{"email": "alice@example.com", "password": "supersecret"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		token = resp.Token
	})

	t.Run("3. No household yet", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/households/me", token, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("4. Create household", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/households", token,
			`{"household_name": "Campbell House", "display_name": "Alice", "color": "#2E86DE", "bottle_size_oz": 24}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"is_owner":true`)
	})

	t.Run("5. Log intake", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/intake", token,
			`{"volume_oz": 16}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.ID)
		entryID = resp.ID
	})

	t.Run("6. Log bottles", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/intake/bottles", token,
			`{"bottles": 2}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"volume_oz":48`)
	})

	t.Run("7. Daily stats include today's total", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/stats/daily?range=week", token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_volume":64`)
	})

	t.Run("8. Log workout", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/workouts", token,
			`{"workout_type": "cardio", "duration_hours": 1.5}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("9. Delete intake entry", func(t *testing.T) {
		require.NotEmpty(t, entryID, "Log step failed, cannot delete")

		w := doJSON(router, http.MethodDelete, "/api/v1/intake/"+entryID, token, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("10. Verify delete", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/intake?range=week", token, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), entryID)
	})

	t.Run("11. Validation error", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/intake", token,
			`{"volume_oz": -5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("12. Auth error", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/intake", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("13. Health without a database", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})
}
