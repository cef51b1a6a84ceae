package system

import (
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/migration"
	"github.com/hearthhq/hearth/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	checks := []struct {
		name string
		fn   func(*cli.Context) error
	}{
		{"Schema version", checkSchemaVersion},
		{"Habit integrity", checkHabitIntegrity},
		{"Submission integrity", checkSubmissionIntegrity},
		{"Timestamp health", checkTimestampHealth},
	}
	for _, check := range checks {
		if !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", check.name)
			continue
		}
		if err := check.fn(ctx); err != nil {
			fmt.Printf("❌ %s: FAIL\n", check.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ %s: OK\n", check.name)
		}
	}

	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}
	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}
	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	migrationFS, err := store.MigrationFS()
	if err != nil {
		return err
	}
	return migration.NewRunner(db, migrationFS).ValidateVersion()
}

// checkHabitIntegrity re-validates every stored habit against the write-time
// rules, catching rows written by older builds or edited out of band.
func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	seen := make(map[string]bool)
	for _, h := range habits {
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true

		if err := validation.ValidateHabit(h); err != nil {
			return fmt.Errorf("habit %q failed validation: %w", h.Name, err)
		}
		if h.Count > h.TotalCount {
			return fmt.Errorf("habit %q has period count %d exceeding lifetime count %d", h.Name, h.Count, h.TotalCount)
		}
	}
	return nil
}

func checkSubmissionIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	habitIDs := make(map[string]bool, len(habits))
	for _, h := range habits {
		habitIDs[h.ID] = true
	}

	now := time.Now()
	entries, err := ctx.Store.GetSubmissionsForDay(now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to get today's submissions: %w", err)
	}
	for _, e := range entries {
		if !habitIDs[e.HabitID] {
			return fmt.Errorf("submission %s references non-existent habit %s", e.ID, e.HabitID)
		}
		if e.Count <= 0 {
			return fmt.Errorf("submission %s has non-positive count %d", e.ID, e.Count)
		}
	}
	return nil
}

// checkTimestampHealth reports habits whose last-updated stamp could not be
// parsed. Such habits still work — the staleness detector treats them as
// stale — but their period counters will reset on the next action.
func checkTimestampHealth(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	var broken []string
	for _, h := range habits {
		if !h.LastUpdated.Valid() {
			broken = append(broken, h.Name)
		}
	}
	if len(broken) > 0 {
		return fmt.Errorf("%d habit(s) have unparseable last-updated timestamps (will be treated as stale): %v", len(broken), broken)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if dbReachable {
		settings, err := ctx.Store.GetSettings()
		if err == nil && settings.Timezone != "" {
			if _, err := time.LoadLocation(settings.Timezone); err != nil && settings.Timezone != "Local" {
				return fmt.Errorf("configured timezone %q is not loadable: %w", settings.Timezone, err)
			}
		}
	}
	return nil
}
