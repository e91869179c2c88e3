// Package selection runs the interactive questions that decide what gets
// scaffolded.
package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/barisgit/fwselect/internal/catalog"
)

// ErrCancelled is returned when the user aborts a prompt
var ErrCancelled = errors.New("selection cancelled")

// Option is one entry of a multi-choice prompt
type Option struct {
	Value string
	Label string
}

// Prompter asks the user questions. Implementations return ErrCancelled
// (possibly wrapped) when the user aborts.
type Prompter interface {
	Select(message string, options []string) (string, error)
	MultiSelect(message string, options []Option) ([]string, error)
	Confirm(message string, def bool) (bool, error)
}

// Record is the user's choices for one run
type Record struct {
	Framework      catalog.Framework
	PackageManager catalog.PackageManager
	WantsExtras    bool
	Extras         []string
}

// Flow asks the framework, package manager and extras questions in order
type Flow struct {
	Catalog  *catalog.Catalog
	Prompter Prompter
	// Greeting is the name used in the first question
	Greeting string
}

// Run executes the prompts and returns the completed record.
// A cancelled flow returns ErrCancelled and no record.
func (f *Flow) Run(ctx context.Context) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := f.Prompter.Select(
		fmt.Sprintf("👋 Hi %s! Which framework are we building with today?", f.greeting()),
		f.Catalog.FrameworkNames(),
	)
	if err != nil {
		return nil, promptError("framework", err)
	}
	if name == "" {
		return nil, ErrCancelled
	}
	framework, ok := f.Catalog.Framework(name)
	if !ok {
		return nil, fmt.Errorf("unknown framework %q", name)
	}

	managers := make([]string, len(catalog.PackageManagers))
	for i, pm := range catalog.PackageManagers {
		managers[i] = pm.String()
	}
	answer, err := f.Prompter.Select("📦 Which package manager do you want to use?", managers)
	if err != nil {
		return nil, promptError("package manager", err)
	}
	if answer == "" {
		return nil, ErrCancelled
	}
	pm, err := catalog.ParsePackageManager(answer)
	if err != nil {
		return nil, err
	}

	wantsExtras, err := f.Prompter.Confirm("Do you want to include popular libraries?", false)
	if err != nil {
		return nil, promptError("extras confirmation", err)
	}

	record := &Record{
		Framework:      framework,
		PackageManager: pm,
		WantsExtras:    wantsExtras,
	}
	if !wantsExtras {
		return record, nil
	}

	var options []Option
	for _, extra := range f.Catalog.Extras() {
		options = append(options, Option{Value: extra.ID, Label: extra.Label})
	}
	extras, err := f.Prompter.MultiSelect("Select the additional libraries (space to toggle):", options)
	if err != nil {
		return nil, promptError("extras", err)
	}
	record.Extras = extras

	return record, nil
}

func (f *Flow) greeting() string {
	if f.Greeting == "" {
		return "dev"
	}
	return f.Greeting
}

func promptError(step string, err error) error {
	if errors.Is(err, ErrCancelled) {
		return ErrCancelled
	}
	return fmt.Errorf("%s prompt failed: %w", step, err)
}
