package points

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/scoring"
	"github.com/hearthhq/hearth/internal/utils"
	"github.com/hearthhq/hearth/internal/validation"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	gainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type PointsCmd struct {
	Today TodayCmd `cmd:"" default:"1" help:"Points attributable to today."`
	Date  DateCmd  `cmd:"" help:"Points attributable to a single past date."`
	Range RangeCmd `cmd:"" help:"Points attributable to an inclusive date range."`
}

type TodayCmd struct {
	Member string `help:"Restrict to one member's habits."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	habits, err := habitsFor(ctx, c.Member)
	if err != nil {
		return err
	}
	today := utils.DateOf(now)
	total := scoring.PointsForDate(habits, today, now)
	printTotal(fmt.Sprintf("Points for %s", today), total)
	return nil
}

type DateCmd struct {
	Date   string `arg:"" help:"Date to reconstruct (YYYY-MM-DD)."`
	Member string `help:"Restrict to one member's habits."`
}

func (c *DateCmd) Run(ctx *cli.Context) error {
	if !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", c.Date)
	}
	now := ctx.Now()
	habits, err := habitsFor(ctx, c.Member)
	if err != nil {
		return err
	}
	total := scoring.PointsForDate(habits, c.Date, now)
	printTotal(fmt.Sprintf("Points for %s", c.Date), total)
	return nil
}

type RangeCmd struct {
	From   string `arg:"" help:"Start day, inclusive (YYYY-MM-DD)."`
	To     string `arg:"" help:"End day, inclusive (YYYY-MM-DD)."`
	Member string `help:"Restrict to one member's habits."`
}

func (c *RangeCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateDateRange(c.From, c.To); err != nil {
		return err
	}
	now := ctx.Now()
	habits, err := habitsFor(ctx, c.Member)
	if err != nil {
		return err
	}
	total := scoring.PointsForRange(habits, c.From, c.To, now)
	printTotal(fmt.Sprintf("Points for %s .. %s", c.From, c.To), total)
	return nil
}

func habitsFor(ctx *cli.Context, memberName string) ([]models.Habit, error) {
	if memberName == "" {
		return ctx.Store.GetAllHabits(false, false)
	}
	member, err := ctx.Store.GetMemberByName(memberName)
	if err != nil {
		return nil, fmt.Errorf("member %q not found", memberName)
	}
	return ctx.Store.GetHabitsForMember(member.ID)
}

func printTotal(label string, total int) {
	value := mutedStyle.Render("0")
	if total > 0 {
		value = gainStyle.Render(fmt.Sprintf("+%d", total))
	} else if total < 0 {
		value = lossStyle.Render(fmt.Sprintf("%d", total))
	}
	fmt.Printf("%s: %s\n", headerStyle.Render(label), value)
}
