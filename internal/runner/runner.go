// Package runner launches the scaffolding command chosen by the user and,
// when it succeeds, the follow-up command that adds extra libraries.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/barisgit/fwselect/internal/catalog"
	"github.com/barisgit/fwselect/internal/resolve"
	"github.com/barisgit/fwselect/internal/selection"
	"github.com/barisgit/fwselect/internal/ui"
)

// DefaultDelay separates stopping the spinner from launching the child
const DefaultDelay = 100 * time.Millisecond

// Spinner is a transient busy indicator
type Spinner interface {
	Start(message string)
	Stop()
}

// Result is how one spawned command ended
type Result struct {
	Command string
	Code    int
	Err     error
}

// Succeeded reports whether the command ran and exited with code 0
func (r Result) Succeeded() bool {
	return r.Err == nil && r.Code == 0
}

// Outcome is the result of a whole installation run.
// Extras is nil when no extras step was attempted.
type Outcome struct {
	Primary Result
	Extras  *Result
}

// ExitCode maps the outcome to a process exit status
func (o Outcome) ExitCode() int {
	if !o.Primary.Succeeded() {
		return 1
	}
	if o.Extras != nil && !o.Extras.Succeeded() {
		return 1
	}
	return 0
}

// Runner executes a selection record
type Runner struct {
	Catalog  *catalog.Catalog
	Executor Executor
	Log      *ui.Logger
	Spinner  Spinner
	// Delay is waited between stopping the spinner and the first spawn
	Delay time.Duration
}

// Run resolves and spawns the primary command, then the extras command if
// the primary one succeeded and extras were requested.
func (r *Runner) Run(ctx context.Context, record *selection.Record) Outcome {
	name := record.Framework.Name
	command := resolve.Resolve(record.Framework, record.PackageManager)

	r.Log.Step(fmt.Sprintf("🚀 Preparing %s installation with %s...", ui.Bold(name), record.PackageManager))
	r.busy(ctx, fmt.Sprintf("🔧 Installing %s...", ui.Green(name)))

	outcome := Outcome{Primary: r.spawn(ctx, command)}
	if !outcome.Primary.Succeeded() {
		r.reportFailure(name, outcome.Primary)
		return outcome
	}
	r.Log.Success(fmt.Sprintf("🎉 %s was installed successfully.", name))

	if !record.WantsExtras || len(record.Extras) == 0 {
		r.Log.Outro("✨ Done! You can start coding with your new framework.")
		return outcome
	}

	extras := r.spawnExtras(ctx, record)
	outcome.Extras = &extras
	if !extras.Succeeded() {
		r.reportFailure("additional libraries", extras)
		return outcome
	}
	r.Log.Outro("✨ Done! You can start coding with your custom stack.")

	return outcome
}

func (r *Runner) spawnExtras(ctx context.Context, record *selection.Record) Result {
	verb := string(record.PackageManager) + " add"
	if r.Catalog != nil {
		verb = r.Catalog.AddVerb(record.PackageManager)
	}
	command := resolve.Extras(verb, record.Extras)

	r.Log.Step(fmt.Sprintf("📦 Installing additional libraries: %s", strings.Join(record.Extras, ", ")))
	return r.spawn(ctx, command)
}

func (r *Runner) spawn(ctx context.Context, command string) Result {
	r.Log.Command(command)
	code, err := r.Executor.Run(ctx, command)
	return Result{Command: command, Code: code, Err: err}
}

// busy shows the spinner for Delay and stops it before anything is spawned
func (r *Runner) busy(ctx context.Context, message string) {
	if r.Spinner != nil {
		r.Spinner.Start(message)
		defer r.Spinner.Stop()
	}
	if r.Delay <= 0 {
		return
	}

	timer := time.NewTimer(r.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (r *Runner) reportFailure(what string, result Result) {
	if result.Err != nil {
		r.Log.Error(fmt.Sprintf("❌ Installation of %s failed: %v", what, result.Err))
		return
	}
	r.Log.Error(fmt.Sprintf("❌ Installation of %s failed (code: %d).", what, result.Code))
}
