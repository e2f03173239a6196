package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

// In-memory repositories back the handler tests and local development
// without a database. Each one mirrors the semantics of its Postgres
// counterpart, including soft deletes on entries.

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{store: make(map[string]*domain.User)}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type InMemoryHouseholdRepository struct {
	store map[string]*domain.Household

	mu sync.RWMutex
}

func NewInMemoryHouseholdRepository() *InMemoryHouseholdRepository {
	return &InMemoryHouseholdRepository{store: make(map[string]*domain.Household)}
}

func (r *InMemoryHouseholdRepository) Create(ctx context.Context, h *domain.Household) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[h.ID] = h
	return nil
}

func (r *InMemoryHouseholdRepository) GetByID(ctx context.Context, id string) (*domain.Household, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHouseholdNotFound
	}
	return h, nil
}

func (r *InMemoryHouseholdRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Household, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.store {
		if h.InviteCode == code {
			return h, nil
		}
	}
	return nil, domain.ErrHouseholdNotFound
}

func (r *InMemoryHouseholdRepository) Update(ctx context.Context, h *domain.Household) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[h.ID]; !ok {
		return domain.ErrHouseholdNotFound
	}
	r.store[h.ID] = h
	return nil
}

type InMemoryHouseholdUserRepository struct {
	store map[string]*domain.HouseholdUser

	mu sync.RWMutex
}

func NewInMemoryHouseholdUserRepository() *InMemoryHouseholdUserRepository {
	return &InMemoryHouseholdUserRepository{store: make(map[string]*domain.HouseholdUser)}
}

func (r *InMemoryHouseholdUserRepository) Create(ctx context.Context, user *domain.HouseholdUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.AuthUserID == user.AuthUserID {
			return domain.ErrAlreadyMember
		}
	}
	r.store[user.ID] = user
	return nil
}

func (r *InMemoryHouseholdUserRepository) GetByID(ctx context.Context, id string) (*domain.HouseholdUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHouseholdUserNotFound
	}
	return user, nil
}

func (r *InMemoryHouseholdUserRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.HouseholdUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.AuthUserID == authUserID {
			return u, nil
		}
	}
	return nil, domain.ErrHouseholdUserNotFound
}

func (r *InMemoryHouseholdUserRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*domain.HouseholdUser
	for _, u := range r.store {
		if u.HouseholdID == householdID {
			users = append(users, u)
		}
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (r *InMemoryHouseholdUserRepository) Update(ctx context.Context, user *domain.HouseholdUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return domain.ErrHouseholdUserNotFound
	}
	r.store[user.ID] = user
	return nil
}

func (r *InMemoryHouseholdUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHouseholdUserNotFound
	}
	delete(r.store, id)
	return nil
}

type InMemoryInvitationRepository struct {
	store map[string]*domain.Invitation

	mu sync.RWMutex
}

func NewInMemoryInvitationRepository() *InMemoryInvitationRepository {
	return &InMemoryInvitationRepository{store: make(map[string]*domain.Invitation)}
}

func (r *InMemoryInvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[inv.ID] = inv
	return nil
}

func (r *InMemoryInvitationRepository) GetPendingByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inv := range r.store {
		if inv.InviteCode == code && inv.Status == domain.InvitationStatusPending {
			return inv, nil
		}
	}
	return nil, domain.ErrInvitationNotFound
}

func (r *InMemoryInvitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[inv.ID]; !ok {
		return domain.ErrInvitationNotFound
	}
	r.store[inv.ID] = inv
	return nil
}

type InMemorySettingsRepository struct {
	store map[string]*domain.Settings

	mu sync.RWMutex
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{store: make(map[string]*domain.Settings)}
}

func (r *InMemorySettingsRepository) Get(ctx context.Context, householdID string) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.store[householdID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	return settings, nil
}

func (r *InMemorySettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[settings.HouseholdID] = settings
	return nil
}

type InMemoryCelebrationRepository struct {
	store map[string]map[string]bool // householdID -> dateKey

	mu sync.RWMutex
}

func NewInMemoryCelebrationRepository() *InMemoryCelebrationRepository {
	return &InMemoryCelebrationRepository{store: make(map[string]map[string]bool)}
}

func (r *InMemoryCelebrationRepository) Mark(ctx context.Context, householdID, dateKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store[householdID] == nil {
		r.store[householdID] = make(map[string]bool)
	}
	r.store[householdID][dateKey] = true
	return nil
}

func (r *InMemoryCelebrationRepository) IsMarked(ctx context.Context, householdID, dateKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store[householdID][dateKey], nil
}

func (r *InMemoryCelebrationRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dates := []string{}
	for key := range r.store[householdID] {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates, nil
}

type InMemoryIntakeRepository struct {
	store map[string]*domain.IntakeEntry

	mu sync.RWMutex
}

func NewInMemoryIntakeRepository() *InMemoryIntakeRepository {
	return &InMemoryIntakeRepository{store: make(map[string]*domain.IntakeEntry)}
}

func (r *InMemoryIntakeRepository) Create(ctx context.Context, entry *domain.IntakeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.store[entry.ID] = entry
	return nil
}

func (r *InMemoryIntakeRepository) GetByID(ctx context.Context, id string) (*domain.IntakeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (r *InMemoryIntakeRepository) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.IntakeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.IntakeEntry{}
	for _, e := range r.store {
		if e.HouseholdID != householdID || e.DeletedAt != nil {
			continue
		}
		if e.RecordedAt.Before(from) || e.RecordedAt.After(to) {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})

	return entries, nil
}

func (r *InMemoryIntakeRepository) Delete(ctx context.Context, id, householdUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil || entry.HouseholdUserID != householdUserID {
		return domain.ErrEntryNotFound
	}

	now := time.Now().UTC()
	entry.DeletedAt = &now
	entry.UpdatedAt = now
	return nil
}

func (r *InMemoryIntakeRepository) DeleteByHouseholdID(ctx context.Context, householdID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, e := range r.store {
		if e.HouseholdID == householdID && e.DeletedAt == nil {
			e.DeletedAt = &now
			e.UpdatedAt = now
		}
	}
	return nil
}

type InMemoryWorkoutRepository struct {
	store map[string]*domain.WorkoutEntry

	mu sync.RWMutex
}

func NewInMemoryWorkoutRepository() *InMemoryWorkoutRepository {
	return &InMemoryWorkoutRepository{store: make(map[string]*domain.WorkoutEntry)}
}

func (r *InMemoryWorkoutRepository) Create(ctx context.Context, entry *domain.WorkoutEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.store[entry.ID] = entry
	return nil
}

func (r *InMemoryWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (r *InMemoryWorkoutRepository) ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.WorkoutEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.WorkoutEntry{}
	for _, e := range r.store {
		if e.HouseholdID != householdID || e.DeletedAt != nil {
			continue
		}
		if e.RecordedAt.Before(from) || e.RecordedAt.After(to) {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})

	return entries, nil
}

func (r *InMemoryWorkoutRepository) Delete(ctx context.Context, id, householdUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil || entry.HouseholdUserID != householdUserID {
		return domain.ErrEntryNotFound
	}

	now := time.Now().UTC()
	entry.DeletedAt = &now
	entry.UpdatedAt = now
	return nil
}

func (r *InMemoryWorkoutRepository) DeleteByHouseholdID(ctx context.Context, householdID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, e := range r.store {
		if e.HouseholdID == householdID && e.DeletedAt == nil {
			e.DeletedAt = &now
			e.UpdatedAt = now
		}
	}
	return nil
}
