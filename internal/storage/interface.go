package storage

import "github.com/hearthhq/hearth/internal/models"

// Provider is the durable store behind the scoring engine. The engine itself
// is pure; commands load a snapshot through this interface, run a transition,
// and write the result back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Members
	AddMember(models.Member) error
	GetMember(id string) (models.Member, error)
	GetMemberByName(name string) (models.Member, error)
	GetAllMembers(includeDeleted bool) ([]models.Member, error)
	DeleteMember(id string) error
	// ApplyPointsDelta is the single write path for member point totals. Both
	// the toggle path and the ledger path land here, which is what keeps the
	// two from double-applying the same logical event.
	ApplyPointsDelta(memberID string, delta int) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	GetHabitsForMember(memberID string) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Submissions
	AddSubmission(models.SubmissionEntry) error
	GetSubmission(id string) (models.SubmissionEntry, error)
	GetSubmissionsForHabit(habitID, startDay, endDay string) ([]models.SubmissionEntry, error)
	GetSubmissionsForDay(day string) ([]models.SubmissionEntry, error)
	UpdateSubmission(models.SubmissionEntry) error
	DeleteSubmission(id string) error
	RestoreSubmission(id string) error

	// Utils
	GetConfigPath() string
}
