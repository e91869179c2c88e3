package selection

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/barisgit/fwselect/internal/catalog"
)

// scriptedPrompter answers prompts from queues and records what was asked
type scriptedPrompter struct {
	selects  []string
	confirms []bool
	multi    []string

	selectErr  error
	confirmErr error
	multiErr   error

	asked        []string
	multiOptions []Option
}

func (p *scriptedPrompter) Select(message string, options []string) (string, error) {
	p.asked = append(p.asked, "select:"+message)
	if p.selectErr != nil {
		return "", p.selectErr
	}
	if len(p.selects) == 0 {
		return "", fmt.Errorf("unexpected select %q", message)
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

func (p *scriptedPrompter) MultiSelect(message string, options []Option) ([]string, error) {
	p.asked = append(p.asked, "multi:"+message)
	p.multiOptions = options
	if p.multiErr != nil {
		return nil, p.multiErr
	}
	return p.multi, nil
}

func (p *scriptedPrompter) Confirm(message string, def bool) (bool, error) {
	p.asked = append(p.asked, "confirm:"+message)
	if p.confirmErr != nil {
		return false, p.confirmErr
	}
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm %q", message)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func newFlow(p Prompter) *Flow {
	return &Flow{Catalog: catalog.MustLoad(), Prompter: p, Greeting: "tester"}
}

func TestFlowWithoutExtras(t *testing.T) {
	p := &scriptedPrompter{
		selects:  []string{"Vite", "npm"},
		confirms: []bool{false},
		multi:    []string{"eslint"},
	}

	record, err := newFlow(p).Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.Framework.Name != "Vite" {
		t.Errorf("Expected framework Vite, got %s", record.Framework.Name)
	}
	if record.PackageManager != catalog.NPM {
		t.Errorf("Expected package manager npm, got %s", record.PackageManager)
	}
	if record.WantsExtras {
		t.Error("Expected WantsExtras to be false")
	}
	if len(record.Extras) != 0 {
		t.Errorf("Expected no extras, got %v", record.Extras)
	}
	if len(p.asked) != 3 {
		t.Errorf("Expected 3 prompts, got %d: %v", len(p.asked), p.asked)
	}
	if !strings.Contains(p.asked[0], "tester") {
		t.Errorf("Expected greeting in first prompt, got %q", p.asked[0])
	}
}

func TestFlowWithExtras(t *testing.T) {
	p := &scriptedPrompter{
		selects:  []string{"Next.js", "pnpm"},
		confirms: []bool{true},
		multi:    []string{"eslint", "prettier"},
	}

	record, err := newFlow(p).Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !record.WantsExtras {
		t.Error("Expected WantsExtras to be true")
	}
	if !reflect.DeepEqual(record.Extras, []string{"eslint", "prettier"}) {
		t.Errorf("Expected extras [eslint prettier], got %v", record.Extras)
	}
	if len(p.multiOptions) != 5 || p.multiOptions[2].Value != "tailwind" || p.multiOptions[2].Label != "Tailwind CSS" {
		t.Errorf("Expected catalog extras as options, got %v", p.multiOptions)
	}
	if len(p.asked) != 4 {
		t.Errorf("Expected 4 prompts, got %d", len(p.asked))
	}
}

func TestFlowWithExtrasNoneSelected(t *testing.T) {
	p := &scriptedPrompter{
		selects:  []string{"Astro", "bun"},
		confirms: []bool{true},
	}

	record, err := newFlow(p).Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !record.WantsExtras || len(record.Extras) != 0 {
		t.Errorf("Expected WantsExtras with no extras, got %v %v", record.WantsExtras, record.Extras)
	}
}

func TestFlowCancelledAtFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    *scriptedPrompter
	}{
		{"interrupt", &scriptedPrompter{selectErr: ErrCancelled}},
		{"wrapped interrupt", &scriptedPrompter{selectErr: fmt.Errorf("prompt: %w", ErrCancelled)}},
		{"empty answer", &scriptedPrompter{selects: []string{""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := newFlow(tt.p).Run(context.Background())
			if !errors.Is(err, ErrCancelled) {
				t.Fatalf("Expected ErrCancelled, got %v", err)
			}
			if record != nil {
				t.Errorf("Expected no record, got %+v", record)
			}
			if len(tt.p.asked) != 1 {
				t.Errorf("Expected no prompts after cancellation, got %v", tt.p.asked)
			}
		})
	}
}

func TestFlowCancelledLater(t *testing.T) {
	p := &scriptedPrompter{
		selects:  []string{"Qwik", "yarn"},
		confirms: []bool{true},
		multiErr: ErrCancelled,
	}

	record, err := newFlow(p).Run(context.Background())
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Expected ErrCancelled, got %v", err)
	}
	if record != nil {
		t.Errorf("Expected no record, got %+v", record)
	}
}

func TestFlowPromptFailure(t *testing.T) {
	p := &scriptedPrompter{
		selects:    []string{"Vite", "npm"},
		confirmErr: errors.New("terminal gone"),
	}

	_, err := newFlow(p).Run(context.Background())
	if err == nil || errors.Is(err, ErrCancelled) {
		t.Fatalf("Expected a non-cancellation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "extras confirmation") {
		t.Errorf("Expected error to name the failing prompt, got %v", err)
	}
}

func TestFlowUnknownFramework(t *testing.T) {
	p := &scriptedPrompter{selects: []string{"Ember"}}

	if _, err := newFlow(p).Run(context.Background()); err == nil {
		t.Fatal("Expected error for unknown framework")
	}
}

func TestFlowContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedPrompter{}
	if _, err := newFlow(p).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("Expected no prompts, got %v", p.asked)
	}
}

func TestShorten(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"alice-laptop-01": "alice",
		"buildbox":        "buildbox",
		"-weird":          "dev",
		"":                "dev",
	}
	for input, want := range tests {
		if got := shorten(input); got != want {
			t.Errorf("shorten(%q) = %q, want %q", input, got, want)
		}
	}
}
