package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/barisgit/fwselect/internal/catalog"
	"github.com/barisgit/fwselect/internal/runner"
	"github.com/barisgit/fwselect/internal/selection"
	"github.com/barisgit/fwselect/internal/ui"
)

// App bundles the collaborators the commands need
type App struct {
	Catalog  *catalog.Catalog
	Prompter selection.Prompter
	Executor runner.Executor
	Spinner  runner.Spinner
	Stdout   io.Writer
	Stderr   io.Writer
	// Hostname returns the name used to greet the user
	Hostname func() string
}

// NewApp wires the terminal prompts, spinner and shell executor
func NewApp() (*App, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:  c,
		Prompter: ui.NewPrompter(),
		Executor: runner.NewShellExecutor(),
		Spinner:  ui.NewSpinner(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Hostname: selection.ShortHostname,
	}, nil
}

// ExitError carries a process exit status whose cause was already reported
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
