package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http"
	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/handler/http/middleware"
	"github.com/andycampbellcrowe-del/watertracker/internal/adapters/repository"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/services"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/workers"
)

// testEnv wires the full handler stack against in-memory repositories. The
// auth middleware is replaced by one that trusts the X-Auth-User-ID header.
type testEnv struct {
	router *gin.Engine

	users        *repository.InMemoryUserRepository
	households   *repository.InMemoryHouseholdRepository
	members      *repository.InMemoryHouseholdUserRepository
	invitations  *repository.InMemoryInvitationRepository
	settings     *repository.InMemorySettingsRepository
	intake       *repository.InMemoryIntakeRepository
	workouts     *repository.InMemoryWorkoutRepository
	celebrations *repository.InMemoryCelebrationRepository

	householdSvc *services.HouseholdService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:        repository.NewInMemoryUserRepository(),
		households:   repository.NewInMemoryHouseholdRepository(),
		members:      repository.NewInMemoryHouseholdUserRepository(),
		invitations:  repository.NewInMemoryInvitationRepository(),
		settings:     repository.NewInMemorySettingsRepository(),
		intake:       repository.NewInMemoryIntakeRepository(),
		workouts:     repository.NewInMemoryWorkoutRepository(),
		celebrations: repository.NewInMemoryCelebrationRepository(),
	}

	worker := workers.NewGoalWorker(env.settings, env.intake, env.members, env.celebrations)

	env.householdSvc = services.NewHouseholdService(
		env.households, env.members, env.invitations, env.settings, env.intake, env.workouts)
	intakeSvc := services.NewIntakeService(env.intake, env.members, worker)
	workoutSvc := services.NewWorkoutService(env.workouts, env.members)
	statsSvc := services.NewStatsService(env.members, env.settings, env.intake, env.workouts)

	r := gin.New()

	r.Use(func(c *gin.Context) {
		if authUserID := c.GetHeader("X-Auth-User-ID"); authUserID != "" {
			c.Set(middleware.ContextAuthUserIDKey, authUserID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	adapterHTTP.NewHouseholdHandler(env.householdSvc).RegisterRoutes(api)
	adapterHTTP.NewIntakeHandler(intakeSvc, env.householdSvc).RegisterRoutes(api)
	adapterHTTP.NewWorkoutHandler(workoutSvc, env.householdSvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc, env.householdSvc).RegisterRoutes(api)

	env.router = r
	return env
}

// seedMember onboards an auth user into a fresh household and returns the
// created member profile.
func (env *testEnv) seedMember(t *testing.T, authUserID, name string) *domain.HouseholdUser {
	t.Helper()

	_, member, err := env.householdSvc.CreateHousehold(context.Background(), services.CreateHouseholdInput{
		AuthUserID:    authUserID,
		HouseholdName: name + "'s House",
		DisplayName:   name,
		Color:         "#3B82F6",
		BottleSizeOz:  24,
	})
	require.NoError(t, err)
	return member
}

func (env *testEnv) do(t *testing.T, method, path, authUserID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authUserID != "" {
		req.Header.Set("X-Auth-User-ID", authUserID)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
