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
	Register(&ProfilesCmd{})
	Register(&AddProfileCmd{})
	Register(&EditProfileCmd{})
	Register(&RmProfileCmd{})
}

// profileFlags are the editable profile fields.
type profileFlags struct {
	name, age, height, weight, avatar string
}

func (f *profileFlags) register(fs *flag.FlagSet) {
	*f = profileFlags{}
	fs.StringVar(&f.name, "name", "", "")
	fs.StringVar(&f.age, "age", "", "")
	fs.StringVar(&f.height, "height", "", "")
	fs.StringVar(&f.weight, "weight", "", "")
	fs.StringVar(&f.avatar, "avatar", "", "")
}

// apply overwrites the fields of p that were given.
func (f profileFlags) apply(p records.Profile) records.Profile {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&p.Name, f.name)
	set(&p.Age, f.age)
	set(&p.Height, f.height)
	set(&p.Weight, f.weight)
	set(&p.Avatar, f.avatar)
	return p
}

func (f profileFlags) empty() bool {
	return f == profileFlags{}
}

// ProfilesCmd lists the profiles.
type ProfilesCmd struct{}

func (c *ProfilesCmd) Name() string      { return "profiles" }
func (c *ProfilesCmd) Aliases() []string { return []string{"profil"} }
func (c *ProfilesCmd) Synopsis() string  { return "List profiles" }
func (c *ProfilesCmd) Usage() string     { return "healthyou profiles [common flags]" }
func (c *ProfilesCmd) NeedsAuth() bool   { return true }

func (c *ProfilesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProfilesCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	p, err := openPage(ctx, cfg, gate, svc.Profiles())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	items := p.Store().Items()
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no profiles found")
		}
		return exitcode.Success
	}
	for _, pr := range items {
		output.FormatProfile(out, pr)
	}
	return exitcode.Success
}

// AddProfileCmd creates a profile.
type AddProfileCmd struct {
	flags profileFlags
}

// SetFields sets the flag values (for testing).
func (c *AddProfileCmd) SetFields(name, age, height, weight string) {
	c.flags = profileFlags{name: name, age: age, height: height, weight: weight}
}

func (c *AddProfileCmd) Name() string      { return "addprofile" }
func (c *AddProfileCmd) Aliases() []string { return nil }
func (c *AddProfileCmd) Synopsis() string  { return "Create a profile" }
func (c *AddProfileCmd) Usage() string {
	return "healthyou addprofile --name <name> [--age <n>] [--height <cm>] [--weight <kg>] [--avatar <url>]"
}
func (c *AddProfileCmd) NeedsAuth() bool { return true }

func (c *AddProfileCmd) RegisterFlags(fs *flag.FlagSet) { c.flags.register(fs) }

func (c *AddProfileCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	prof := c.flags.apply(records.Profile{})
	if err := prof.Validate(); err != nil {
		return report(errOut, err)
	}

	p, err := openPage(ctx, cfg, gate, svc.Profiles())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	created, err := p.Store().Create(ctx, prof)
	if err != nil {
		return report(errOut, err)
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", created.ID)
	}
	return exitcode.Success
}

// EditProfileCmd changes the given fields of a profile.
type EditProfileCmd struct {
	flags profileFlags
}

// SetFields sets the flag values (for testing).
func (c *EditProfileCmd) SetFields(name, age, height, weight string) {
	c.flags = profileFlags{name: name, age: age, height: height, weight: weight}
}

func (c *EditProfileCmd) Name() string      { return "editprofile" }
func (c *EditProfileCmd) Aliases() []string { return nil }
func (c *EditProfileCmd) Synopsis() string  { return "Edit a profile" }
func (c *EditProfileCmd) Usage() string {
	return "healthyou editprofile [--name <name>] [--age <n>] [--height <cm>] [--weight <kg>] [--avatar <url>] <id>"
}
func (c *EditProfileCmd) NeedsAuth() bool { return true }

func (c *EditProfileCmd) RegisterFlags(fs *flag.FlagSet) { c.flags.register(fs) }

func (c *EditProfileCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: profile id required")
		return exitcode.UserError
	}
	if c.flags.empty() {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}
	id := args[0]

	p, err := openPage(ctx, cfg, gate, svc.Profiles())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	cur, ok := p.Store().Find(id)
	if !ok {
		fmt.Fprintf(errOut, "error: profile not found: %s\n", id)
		return exitcode.UserError
	}

	next := c.flags.apply(cur)
	if err := next.Validate(); err != nil {
		return report(errOut, err)
	}
	if _, err := p.Store().Update(ctx, id, next); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// RmProfileCmd deletes a profile by id.
type RmProfileCmd struct{}

func (c *RmProfileCmd) Name() string      { return "rmprofile" }
func (c *RmProfileCmd) Aliases() []string { return nil }
func (c *RmProfileCmd) Synopsis() string  { return "Delete a profile" }
func (c *RmProfileCmd) Usage() string     { return "healthyou rmprofile [common flags] <id>" }
func (c *RmProfileCmd) NeedsAuth() bool   { return true }

func (c *RmProfileCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmProfileCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	return runRemove(ctx, cfg, gate, svc.Profiles(), "profile", args, out, errOut)
}
