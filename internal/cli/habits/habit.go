package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/scoring"
	"github.com/hearthhq/hearth/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Show      HabitShowCmd      `cmd:"" help:"Show a habit's current state."`
	Toggle    HabitToggleCmd    `cmd:"" help:"Record an increment (or decrement) on a habit."`
	Reset     HabitResetCmd     `cmd:"" help:"Reset a habit's current-period progress to zero."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit (soft delete)."`
	Restore   HabitRestoreCmd   `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Member      string `help:"Member the habit belongs to (default: settings default member)."`
	Category    string `help:"Free-text grouping." default:""`
	Type        string `help:"positive or negative." default:"positive" enum:"positive,negative"`
	Scoring     string `help:"incremental or threshold." default:"threshold" enum:"incremental,threshold"`
	Period      string `help:"daily or weekly." default:"daily" enum:"daily,weekly"`
	BasePoints  int    `help:"Points per completion before multipliers." default:"10"`
	Target      int    `help:"Count needed to be complete for a period." default:"1"`
	Interactive bool   `short:"i" help:"Fill in the habit details interactively."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		if err := c.promptForm(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name is required (pass it as an argument or use --interactive)")
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	member, err := resolveMember(ctx, c.Member)
	if err != nil {
		return err
	}

	now := ctx.Now()
	habit := models.Habit{
		ID:             uuid.New().String(),
		MemberID:       member.ID,
		Name:           c.Name,
		Category:       c.Category,
		Type:           models.HabitType(c.Type),
		ScoringType:    models.ScoringType(c.Scoring),
		Period:         models.Period(c.Period),
		BasePoints:     c.BasePoints,
		TargetCount:    c.Target,
		CompletedDates: []string{},
		LastUpdated:    models.NewTimestamp(now),
		CreatedAt:      now,
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s, %s, %d pts, target %d) for %s\n",
		habit.Name, habit.Type, habit.ScoringType, habit.Period,
		habit.BasePoints, habit.EffectiveTarget(), member.Name)
	return nil
}

func (c *HabitAddCmd) promptForm() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name),
			huh.NewInput().
				Title("Category").
				Value(&c.Category),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Positive (earns points)", "positive"),
					huh.NewOption("Negative (costs points)", "negative"),
				).
				Value(&c.Type),
			huh.NewSelect[string]().
				Title("Scoring").
				Options(
					huh.NewOption("Threshold (points on crossing the target)", "threshold"),
					huh.NewOption("Incremental (points on every action)", "incremental"),
				).
				Value(&c.Scoring),
			huh.NewSelect[string]().
				Title("Period").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
				).
				Value(&c.Period),
		),
	)
	return form.Run()
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := ctx.Now()
	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		streak := scoring.CalculateStreak(habit.CompletedDates, now)
		fmt.Printf("%-24s %s/%s  %d/%d this period, streak %d%s\n",
			habit.Name, habit.Type, habit.Period, habit.Count,
			habit.EffectiveTarget(), streak, status)
	}

	return nil
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	habit, err := ctx.ResolveHabit(c.Name, now)
	if err != nil {
		return err
	}

	streak := scoring.CalculateStreak(habit.CompletedDates, now)
	mult := scoring.Multiplier(streak, habit.IsPositive())

	fmt.Printf("%s\n", habit.Name)
	if habit.Category != "" {
		fmt.Printf("  Category:     %s\n", habit.Category)
	}
	fmt.Printf("  Type:         %s\n", habit.Type)
	fmt.Printf("  Scoring:      %s\n", habit.ScoringType)
	fmt.Printf("  Period:       %s\n", habit.Period)
	fmt.Printf("  Base points:  %d\n", habit.BasePoints)
	fmt.Printf("  Target:       %d\n", habit.EffectiveTarget())
	fmt.Printf("  Progress:     %d this period, %d lifetime\n", habit.Count, habit.TotalCount)
	fmt.Printf("  Streak:       %d day(s), %.1fx multiplier\n", streak, mult)
	if len(habit.CompletedDates) > 0 {
		recent := habit.CompletedDates
		if len(recent) > 7 {
			recent = recent[:7]
		}
		fmt.Printf("  Recent days:  %s\n", strings.Join(recent, ", "))
	}
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Down bool   `help:"Decrement instead of increment."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	habit, err := ctx.ResolveHabit(c.Name, now)
	if err != nil {
		return err
	}

	dir := scoring.DirectionUp
	if c.Down {
		dir = scoring.DirectionDown
	}

	result := scoring.ProcessToggle(habit, dir, now)
	if result == nil {
		// benign rejection, not a failure
		fmt.Printf("Nothing to undo: %s is already at 0 for this period.\n", habit.Name)
		return nil
	}

	if err := ctx.Store.UpdateHabit(result.Habit); err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	if err := ctx.ApplyPoints(result.Habit.MemberID, result.PointsChange); err != nil {
		return err
	}

	fmt.Printf("%s: %d/%d this period, streak %d",
		result.Habit.Name, result.Habit.Count, result.Habit.EffectiveTarget(),
		result.Habit.StreakDays)
	if result.PointsChange != 0 {
		fmt.Printf(", %+d points (%.1fx)", result.PointsChange, result.Multiplier)
	}
	fmt.Println()
	return nil
}

type HabitResetCmd struct {
	Name string `arg:"" help:"Habit name."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitResetCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	habit, err := ctx.ResolveHabit(c.Name, now)
	if err != nil {
		return err
	}

	if habit.Count == 0 {
		fmt.Printf("%s already has no progress this period.\n", habit.Name)
		return nil
	}

	delta := scoring.CalculateResetPoints(habit, now)

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Reset %s? This discards %d completion(s) and applies %+d points.",
				habit.Name, habit.Count, delta)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	habit = scoring.ApplyReset(habit, now)
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	if err := ctx.ApplyPoints(habit.MemberID, delta); err != nil {
		return err
	}

	fmt.Printf("Reset %s (%+d points).\n", habit.Name, delta)
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Name == c.Name {
			if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Unarchived habit: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("habit %q not found", c.Name)
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s (restore with 'hearth habit restore %s')\n", c.Name, c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Name == c.Name && habit.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("no deleted habit named %q found", c.Name)
}

func resolveMember(ctx *cli.Context, name string) (models.Member, error) {
	if name == "" {
		settings, err := ctx.Store.GetSettings()
		if err == nil && settings.DefaultMember != "" {
			name = settings.DefaultMember
		}
	}
	if name == "" {
		return models.Member{}, fmt.Errorf("no member given and no default member configured (add one with 'hearth member add <name> --default')")
	}
	member, err := ctx.Store.GetMemberByName(name)
	if err != nil {
		return models.Member{}, fmt.Errorf("member %q not found", name)
	}
	return member, nil
}
