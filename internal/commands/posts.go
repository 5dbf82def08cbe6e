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
	"healthyou/internal/share"
)

func init() {
	Register(&PostsCmd{})
	Register(&PostCmd{})
	Register(&RmPostCmd{})
	Register(&SharePostCmd{})
	Register(&TemplatesCmd{})
}

// PostsCmd lists the social posts.
type PostsCmd struct{}

func (c *PostsCmd) Name() string      { return "posts" }
func (c *PostsCmd) Aliases() []string { return nil }
func (c *PostsCmd) Synopsis() string  { return "List posts" }
func (c *PostsCmd) Usage() string     { return "healthyou posts [common flags]" }
func (c *PostsCmd) NeedsAuth() bool   { return true }

func (c *PostsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PostsCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	p, err := openPage(ctx, cfg, gate, svc.Posts())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	items := p.Store().Items()
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no posts found")
		}
		return exitcode.Success
	}
	for _, post := range items {
		output.FormatPost(out, post)
	}
	return exitcode.Success
}

// PostCmd publishes a post, either free text or a numbered template.
type PostCmd struct {
	image    string
	template int
}

// SetOptions sets the flag values (for testing).
func (c *PostCmd) SetOptions(image string, template int) {
	c.image, c.template = image, template
}

func (c *PostCmd) Name() string      { return "post" }
func (c *PostCmd) Aliases() []string { return nil }
func (c *PostCmd) Synopsis() string  { return "Publish a post" }
func (c *PostCmd) Usage() string {
	return "healthyou post [--image <url>] [--template <n>] <text...>"
}
func (c *PostCmd) NeedsAuth() bool { return true }

func (c *PostCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.image, "image", "", "")
	fs.IntVar(&c.template, "template", 0, "")
}

func (c *PostCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	text := strings.TrimSpace(strings.Join(args, " "))
	if c.template != 0 {
		if text != "" {
			fmt.Fprintln(errOut, "error: use either text or --template")
			return exitcode.UserError
		}
		t, err := share.Template(c.template)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		text = t
	}

	post := records.Post{Text: text, Image: strings.TrimSpace(c.image)}
	if err := post.Validate(); err != nil {
		return report(errOut, err)
	}

	p, err := openPage(ctx, cfg, gate, svc.Posts())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	created, err := p.Store().Create(ctx, post)
	if err != nil {
		return report(errOut, err)
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", created.ID)
	}
	return exitcode.Success
}

// RmPostCmd deletes a post by id.
type RmPostCmd struct{}

func (c *RmPostCmd) Name() string      { return "rmpost" }
func (c *RmPostCmd) Aliases() []string { return nil }
func (c *RmPostCmd) Synopsis() string  { return "Delete a post" }
func (c *RmPostCmd) Usage() string     { return "healthyou rmpost [common flags] <id>" }
func (c *RmPostCmd) NeedsAuth() bool   { return true }

func (c *RmPostCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmPostCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	return runRemove(ctx, cfg, gate, svc.Posts(), "post", args, out, errOut)
}

// SharePostCmd prints the share text and links of a post.
type SharePostCmd struct{}

func (c *SharePostCmd) Name() string      { return "sharepost" }
func (c *SharePostCmd) Aliases() []string { return []string{"share"} }
func (c *SharePostCmd) Synopsis() string  { return "Print share links for a post" }
func (c *SharePostCmd) Usage() string     { return "healthyou sharepost [common flags] <id>" }
func (c *SharePostCmd) NeedsAuth() bool   { return true }

func (c *SharePostCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SharePostCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: post id required")
		return exitcode.UserError
	}

	p, err := openPage(ctx, cfg, gate, svc.Posts())
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	post, ok := p.Store().Find(args[0])
	if !ok {
		fmt.Fprintf(errOut, "error: post not found: %s\n", args[0])
		return exitcode.UserError
	}
	output.FormatShare(out, share.For(post.Text))
	return exitcode.Success
}

// TemplatesCmd lists the ready-made post messages.
type TemplatesCmd struct{}

func (c *TemplatesCmd) Name() string      { return "templates" }
func (c *TemplatesCmd) Aliases() []string { return nil }
func (c *TemplatesCmd) Synopsis() string  { return "List post templates" }
func (c *TemplatesCmd) Usage() string     { return "healthyou templates" }
func (c *TemplatesCmd) NeedsAuth() bool   { return false }

func (c *TemplatesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TemplatesCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	for i, t := range share.Templates {
		output.FormatTemplate(out, i+1, t)
	}
	return exitcode.Success
}
