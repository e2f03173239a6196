package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockHouseholdRepo struct {
	mock.Mock
}

func (m *MockHouseholdRepo) Create(ctx context.Context, h *domain.Household) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHouseholdRepo) GetByID(ctx context.Context, id string) (*domain.Household, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Household), args.Error(1)
}

func (m *MockHouseholdRepo) GetByInviteCode(ctx context.Context, code string) (*domain.Household, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Household), args.Error(1)
}

func (m *MockHouseholdRepo) Update(ctx context.Context, h *domain.Household) error {
	return m.Called(ctx, h).Error(0)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, u *domain.HouseholdUser) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.HouseholdUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HouseholdUser), args.Error(1)
}

func (m *MockMemberRepo) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.HouseholdUser, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HouseholdUser), args.Error(1)
}

func (m *MockMemberRepo) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HouseholdUser), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, u *domain.HouseholdUser) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvitationRepo) GetPendingByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) Update(ctx context.Context, inv *domain.Invitation) error {
	return m.Called(ctx, inv).Error(0)
}

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context, householdID string) (*domain.Settings, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Upsert(ctx context.Context, settings *domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

type MockIntakeRepo struct {
	mock.Mock
}

func (m *MockIntakeRepo) Create(ctx context.Context, e *domain.IntakeEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockIntakeRepo) GetByID(ctx context.Context, id string) (*domain.IntakeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeEntry), args.Error(1)
}

func (m *MockIntakeRepo) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.IntakeEntry, error) {
	args := m.Called(ctx, householdID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeEntry), args.Error(1)
}

func (m *MockIntakeRepo) Delete(ctx context.Context, id, householdUserID string) error {
	return m.Called(ctx, id, householdUserID).Error(0)
}

func (m *MockIntakeRepo) DeleteByHouseholdID(ctx context.Context, householdID string) error {
	return m.Called(ctx, householdID).Error(0)
}

type MockWorkoutRepo struct {
	mock.Mock
}

func (m *MockWorkoutRepo) Create(ctx context.Context, e *domain.WorkoutEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepo) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.WorkoutEntry, error) {
	args := m.Called(ctx, householdID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepo) Delete(ctx context.Context, id, householdUserID string) error {
	return m.Called(ctx, id, householdUserID).Error(0)
}

func (m *MockWorkoutRepo) DeleteByHouseholdID(ctx context.Context, householdID string) error {
	return m.Called(ctx, householdID).Error(0)
}
