package submissions

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/constants"
	"github.com/hearthhq/hearth/internal/ledger"
	"github.com/hearthhq/hearth/internal/utils"
	"github.com/hearthhq/hearth/internal/validation"
)

type SubmissionCmd struct {
	Add    SubmissionAddCmd    `cmd:"" help:"Record a submission against a habit."`
	Edit   SubmissionEditCmd   `cmd:"" help:"Correct the count on an existing submission."`
	Delete SubmissionDeleteCmd `cmd:"" help:"Delete a submission and reverse its points."`
	List   SubmissionListCmd   `cmd:"" help:"List submissions for a habit."`
}

type SubmissionAddCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Count int    `help:"Number of completions being recorded." default:"1"`
	Date  string `help:"Backdate the submission (YYYY-MM-DD, default: now)."`
	By    string `help:"Who recorded the entry." default:"${created_by}"`
}

func (c *SubmissionAddCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateSubmissionCount(c.Count); err != nil {
		return err
	}

	now := ctx.Now()
	habit, err := ctx.ResolveHabit(c.Habit, now)
	if err != nil {
		return err
	}

	at := now
	if c.Date != "" {
		parsed, err := utils.ParseDate(c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected %s", c.Date, constants.DateFormat)
		}
		at = parsed
	}

	svc := ledger.NewService(ctx.Store)
	result, err := svc.Add(habit.ID, c.Count, at, c.By, now)
	if err != nil {
		return err
	}
	if err := ctx.ApplyPoints(habit.MemberID, result.PointsDelta); err != nil {
		return err
	}

	fmt.Printf("Recorded %d × %s on %s: %+d points (%.1fx, streak %d)\n",
		result.Entry.Count, habit.Name, result.Entry.Date,
		result.Entry.PointsEarned, result.Entry.MultiplierApplied,
		result.Entry.StreakDaysAtTime)
	fmt.Printf("  id: %s\n", result.Entry.ID)
	return nil
}

type SubmissionEditCmd struct {
	ID    string `arg:"" help:"Submission id."`
	Count int    `arg:"" help:"Corrected count."`
}

func (c *SubmissionEditCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateSubmissionCount(c.Count); err != nil {
		return err
	}

	svc := ledger.NewService(ctx.Store)
	result, err := svc.UpdateCount(c.ID, c.Count)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabit(result.Entry.HabitID)
	if err != nil {
		return err
	}
	if err := ctx.ApplyPoints(habit.MemberID, result.PointsDelta); err != nil {
		return err
	}

	fmt.Printf("Updated submission %s: count %d, points %d (net %+d)\n",
		result.Entry.ID, result.Entry.Count, result.Entry.PointsEarned, result.PointsDelta)
	return nil
}

type SubmissionDeleteCmd struct {
	ID  string `arg:"" help:"Submission id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *SubmissionDeleteCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetSubmission(c.ID)
	if err != nil {
		return fmt.Errorf("submission %s not found", c.ID)
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete submission from %s (%d completion(s), %+d points)?",
				entry.Date, entry.Count, entry.PointsEarned)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	svc := ledger.NewService(ctx.Store)
	result, err := svc.Delete(c.ID)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabit(result.Entry.HabitID)
	if err != nil {
		return err
	}
	if err := ctx.ApplyPoints(habit.MemberID, result.PointsDelta); err != nil {
		return err
	}

	fmt.Printf("Deleted submission %s (%+d points reversed)\n", result.Entry.ID, result.PointsDelta)
	return nil
}

type SubmissionListCmd struct {
	Habit string `arg:"" help:"Habit name."`
	From  string `help:"Start day, inclusive (YYYY-MM-DD, default: 30 days ago)."`
	To    string `help:"End day, inclusive (YYYY-MM-DD, default: today)."`
}

func (c *SubmissionListCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	from := c.From
	if from == "" {
		from = utils.DateOf(now.AddDate(0, 0, -30))
	}
	to := c.To
	if to == "" {
		to = utils.DateOf(now)
	}
	if err := validation.ValidateDateRange(from, to); err != nil {
		return err
	}

	entries, err := ctx.Store.GetSubmissionsForHabit(habit.ID, from, to)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No submissions for %s between %s and %s.\n", habit.Name, from, to)
		return nil
	}

	total := 0
	for _, e := range entries {
		total += e.PointsEarned
		fmt.Printf("%s  %s  count %-3d %+5d pts  %.1fx  streak %-3d %s\n",
			e.ID, e.Date, e.Count, e.PointsEarned, e.MultiplierApplied,
			e.StreakDaysAtTime, e.CreatedBy)
	}
	fmt.Printf("Total: %+d points over %d entries\n", total, len(entries))
	return nil
}
