package workers

import (
	"context"
	"log"
	"time"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/analytics"
	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, householdID string) (*domain.Settings, error)
}

type EntryRepository interface {
	ListByHouseholdID(ctx context.Context, householdID string, from, to time.Time) ([]*domain.IntakeEntry, error)
}

type MemberRepository interface {
	ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error)
}

type CelebrationRepository interface {
	Mark(ctx context.Context, householdID, dateKey string) error
	IsMarked(ctx context.Context, householdID, dateKey string) (bool, error)
}

type GoalJob struct {
	HouseholdID string
}

// GoalWorker re-evaluates a household's current day after each intake write
// and records a celebration the first time the daily goal is met. Running it
// off the request path keeps logging water a single fast insert.
type GoalWorker struct {
	settings     SettingsRepository
	entries      EntryRepository
	members      MemberRepository
	celebrations CelebrationRepository
	jobs         chan GoalJob

	now func() time.Time
}

func NewGoalWorker(settings SettingsRepository, entries EntryRepository, members MemberRepository, celebrations CelebrationRepository) *GoalWorker {
	return &GoalWorker{
		settings:     settings,
		entries:      entries,
		members:      members,
		celebrations: celebrations,
		jobs:         make(chan GoalJob, 100),
		now:          time.Now,
	}
}

func (w *GoalWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Goal Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Goal Worker shutting down...")
				return
			}
		}
	}()
}

func (w *GoalWorker) Enqueue(householdID string) {
	select {
	case w.jobs <- GoalJob{HouseholdID: householdID}:
	default:
		log.Printf("Goal Worker queue full! Dropping job for household %s", householdID)
	}
}

func (w *GoalWorker) processJob(ctx context.Context, job GoalJob) {
	settings, err := w.settings.Get(ctx, job.HouseholdID)
	if err != nil {
		log.Printf("Worker Error fetching settings for %s: %v", job.HouseholdID, err)
		return
	}
	if !settings.CelebrationEnabled {
		return
	}

	loc := settings.Location()
	now := w.now()
	todayKey := analytics.LocalDateKey(now, loc)

	marked, err := w.celebrations.IsMarked(ctx, job.HouseholdID, todayKey)
	if err != nil {
		log.Printf("Worker Error checking celebration for %s: %v", job.HouseholdID, err)
		return
	}
	if marked {
		return
	}

	users, err := w.members.ListByHouseholdID(ctx, job.HouseholdID)
	if err != nil {
		log.Printf("Worker Error fetching members for %s: %v", job.HouseholdID, err)
		return
	}

	dayStart := analytics.StartOfDay(now, loc)
	entries, err := w.entries.ListByHouseholdID(ctx, job.HouseholdID, dayStart.AddDate(0, 0, -1), dayStart.AddDate(0, 0, 2))
	if err != nil {
		log.Printf("Worker Error fetching entries for %s: %v", job.HouseholdID, err)
		return
	}

	stats := analytics.ComputeDayStats(entries, todayKey, settings.DailyGoalVolumeOz, users, loc)
	if !stats.GoalMet {
		return
	}

	if err := w.celebrations.Mark(ctx, job.HouseholdID, todayKey); err != nil {
		log.Printf("Worker Failed to mark celebration for %s: %v", job.HouseholdID, err)
		return
	}
	log.Printf("Daily goal met for household %s on %s (%.0f oz)", job.HouseholdID, todayKey, stats.TotalVolume)
}
