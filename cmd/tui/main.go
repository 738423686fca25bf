package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/shivamrai009/portfolio/internal/tui"
)

type options struct {
	Content string `arg:"--content,env:CONTENT_PATH" help:"yaml file replacing the bundled portfolio"`
}

func (options) Description() string {
	return "Shows the portfolio in the current terminal."
}

func main() {
	var opts options
	arg.MustParse(&opts)

	portfolio, err := content.Load(opts.Content)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	engine, err := theme.NewBuiltinEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	model, err := tui.NewModel(engine, portfolio, nil, tui.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
