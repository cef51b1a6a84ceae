package members

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth/internal/cli"
	"github.com/hearthhq/hearth/internal/models"
)

type MemberCmd struct {
	Add  MemberAddCmd  `cmd:"" help:"Add a household member."`
	List MemberListCmd `cmd:"" help:"List household members and their point totals."`
}

type MemberAddCmd struct {
	Name    string `arg:"" help:"Member name."`
	Default bool   `help:"Make this the default member for new habits."`
}

func (c *MemberAddCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("member name is required")
	}
	if _, err := ctx.Store.GetMemberByName(name); err == nil {
		return fmt.Errorf("member %q already exists", name)
	}

	member := models.Member{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: ctx.Now(),
	}
	if err := ctx.Store.AddMember(member); err != nil {
		return err
	}

	if c.Default {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		settings.DefaultMember = name
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
	}

	fmt.Printf("Added member: %s\n", name)
	return nil
}

type MemberListCmd struct {
	Deleted bool `help:"Include deleted members."`
}

func (c *MemberListCmd) Run(ctx *cli.Context) error {
	members, err := ctx.Store.GetAllMembers(c.Deleted)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("No members found.")
		return nil
	}

	settings, _ := ctx.Store.GetSettings()
	for _, m := range members {
		marker := ""
		if m.Name == settings.DefaultMember {
			marker = " (default)"
		}
		if m.DeletedAt != nil {
			marker += " [DELETED]"
		}
		fmt.Printf("%-24s %6d pts%s\n", m.Name, m.Points, marker)
	}
	return nil
}
