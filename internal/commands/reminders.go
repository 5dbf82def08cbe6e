package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/output"
	"healthyou/internal/records"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&RemindersCmd{})
	Register(&AddReminderCmd{})
	Register(&RmReminderCmd{})
}

// RemindersCmd lists the reminders.
type RemindersCmd struct{}

func (c *RemindersCmd) Name() string      { return "reminders" }
func (c *RemindersCmd) Aliases() []string { return []string{"pengingat"} }
func (c *RemindersCmd) Synopsis() string  { return "List reminders" }
func (c *RemindersCmd) Usage() string     { return "healthyou reminders [common flags]" }
func (c *RemindersCmd) NeedsAuth() bool   { return true }

func (c *RemindersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemindersCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	p, err := openPage(ctx, cfg, gate, svc.Reminders())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	items := p.Store().Items()
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no reminders found")
		}
		return exitcode.Success
	}
	for _, r := range items {
		output.FormatReminder(out, r)
	}
	return exitcode.Success
}

// AddReminderCmd creates a reminder.
type AddReminderCmd struct {
	time     string
	category string
	via      string
	contact  string
}

// SetFields sets the flag values (for testing).
func (c *AddReminderCmd) SetFields(time, category, via, contact string) {
	c.time, c.category, c.via, c.contact = time, category, via, contact
}

func (c *AddReminderCmd) Name() string      { return "addreminder" }
func (c *AddReminderCmd) Aliases() []string { return nil }
func (c *AddReminderCmd) Synopsis() string  { return "Create a reminder" }
func (c *AddReminderCmd) Usage() string {
	return "healthyou addreminder --time <HH:MM> --category <makan|minum|tidur> --via <email|whatsapp> --contact <addr> <text...>"
}
func (c *AddReminderCmd) NeedsAuth() bool { return true }

func (c *AddReminderCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.time, "time", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.via, "via", records.ContactEmail, "")
	fs.StringVar(&c.contact, "contact", "", "")
}

func (c *AddReminderCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	rem := records.Reminder{
		Text:        strings.TrimSpace(strings.Join(args, " ")),
		Time:        strings.TrimSpace(c.time),
		Category:    strings.ToLower(strings.TrimSpace(c.category)),
		ContactType: strings.ToLower(strings.TrimSpace(c.via)),
		Contact:     strings.TrimSpace(c.contact),
	}
	if err := rem.Validate(); err != nil {
		return report(errOut, err)
	}

	p, err := openPage(ctx, cfg, gate, svc.Reminders())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	created, err := p.Store().Create(ctx, rem)
	if err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", created.ID)
	}
	return exitcode.Success
}

// RmReminderCmd deletes a reminder by id.
type RmReminderCmd struct{}

func (c *RmReminderCmd) Name() string      { return "rmreminder" }
func (c *RmReminderCmd) Aliases() []string { return nil }
func (c *RmReminderCmd) Synopsis() string  { return "Delete a reminder" }
func (c *RmReminderCmd) Usage() string     { return "healthyou rmreminder [common flags] <id>" }
func (c *RmReminderCmd) NeedsAuth() bool   { return true }

func (c *RmReminderCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmReminderCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	return runRemove(ctx, cfg, gate, svc.Reminders(), "reminder", args, out, errOut)
}
