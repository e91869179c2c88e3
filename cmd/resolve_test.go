package cmd

import (
	"strings"
	"testing"
)

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{[]string{"Vite", "npm"}, "npm create vite@latest", false},
		{[]string{"next.js", "PNPM"}, "pnpm create next-app@latest", false},
		{[]string{"Ember", "npm"}, "", true},
		{[]string{"Vite", "deno"}, "", true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()
			app, stdout, _ := newTestApp(&fakePrompter{}, &fakeExecutor{})

			err := execute(app, append([]string{"resolve"}, tt.args...)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve %v error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got := strings.TrimSpace(stdout.String()); !tt.wantErr && got != tt.want {
				t.Errorf("resolve %v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
