// Package cli answers ssh sessions that ask for a command instead of a
// terminal, e.g. `ssh portfolio projects --tag RAG`.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
)

const Program = "portfolio"

type Args struct {
	About *struct{} `arg:"subcommand:about" help:"who this portfolio belongs to"`

	Links *struct{} `arg:"subcommand:links" help:"list social links"`

	Projects *struct {
		Tag string `arg:"--tag" help:"only list projects carrying this tag"`
	} `arg:"subcommand:projects" help:"list featured projects"`

	Themes *struct {
		CSS bool `arg:"--css" help:"include the css custom properties of each palette"`
	} `arg:"subcommand:themes" help:"list the available color themes"`
}

type Command struct {
	Portfolio content.Portfolio
	Palettes  []theme.Palette
}

// Runs the command line in args and returns the exit code.
func (c Command) Run(stdout, stderr io.Writer, args []string) int {
	var parsed Args
	if retcode, consumed := ParseArgs(stdout, stderr, Program, args, &parsed); consumed {
		return retcode
	}

	switch {
	case parsed.Links != nil:
		c.links(stdout)

	case parsed.Projects != nil:
		if !c.projects(stdout, parsed.Projects.Tag) {
			fmt.Fprintf(stderr, "error: no projects tagged %q\n", parsed.Projects.Tag)
			return 1
		}

	case parsed.Themes != nil:
		c.themes(stdout, parsed.Themes.CSS)

	default:
		c.about(stdout)
	}

	return 0
}

func (c Command) about(w io.Writer) {
	profile := c.Portfolio.Profile

	fmt.Fprintln(w, profile.Name)
	fmt.Fprintln(w, profile.Headline)
	if len(profile.Highlights) > 0 {
		fmt.Fprintln(w, strings.Join(profile.Highlights, " • "))
	}
	if profile.Bio != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, profile.Bio)
	}
}

func (c Command) links(w io.Writer) {
	width := 0
	for _, link := range c.Portfolio.Links {
		width = max(width, runewidth.StringWidth(link.Label))
	}

	for _, link := range c.Portfolio.Links {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(link.Label, width), link.Href)
	}
}

// Returns false when the filter left nothing to print.
func (c Command) projects(w io.Writer, tag string) bool {
	printed := 0
	for _, project := range c.Portfolio.Projects {
		if tag != "" && !project.HasTag(tag) {
			continue
		}

		if printed > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, project.Title)
		fmt.Fprintf(w, "  %s\n", project.Description)
		fmt.Fprintf(w, "  tags: %s\n", strings.Join(project.Tags, ", "))
		fmt.Fprintf(w, "  %s\n", project.Link)
		printed++
	}
	return printed > 0
}

func (c Command) themes(w io.Writer, css bool) {
	for i, palette := range c.Palettes {
		fmt.Fprintf(w, "%d. %s\n", i+1, palette)
		if !css {
			continue
		}

		variables := theme.Derive(palette).CSSVariables()
		for _, name := range theme.CSSVariableNames {
			fmt.Fprintf(w, "   %s: %s;\n", name, variables[name])
		}
	}
}
