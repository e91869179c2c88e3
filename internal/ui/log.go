// Package ui provides the terminal pieces of fwselect: leveled messages,
// banners, a progress spinner and the interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

var (
	introStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	outroStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Logger writes leveled, styled messages.
// Info, step, success and banners go to out; warnings, errors and debug
// output go to errOut.
type Logger struct {
	out    io.Writer
	errOut io.Writer
	debug  bool
}

// New creates a logger. Colors are downsampled to what each writer supports,
// so plain buffers receive no escape sequences.
func New(out, errOut io.Writer, debug bool) *Logger {
	return &Logger{
		out:    colorprofile.NewWriter(out, os.Environ()),
		errOut: colorprofile.NewWriter(errOut, os.Environ()),
		debug:  debug,
	}
}

// Intro prints the session banner
func (l *Logger) Intro(message string) {
	fmt.Fprintf(l.out, "┌  %s\n│\n", introStyle.Render(message))
}

// Outro prints the closing banner
func (l *Logger) Outro(message string) {
	fmt.Fprintf(l.out, "│\n└  %s\n", outroStyle.Render(message))
}

func (l *Logger) Info(message string) {
	l.line(l.out, infoStyle, "●", message)
}

func (l *Logger) Step(message string) {
	l.line(l.out, stepStyle, "◇", message)
}

func (l *Logger) Success(message string) {
	l.line(l.out, successStyle, "◆", message)
}

func (l *Logger) Warn(message string) {
	l.line(l.errOut, warnStyle, "▲", message)
}

func (l *Logger) Error(message string) {
	l.line(l.errOut, errorStyle, "■", message)
}

// Debug prints only when debug output is enabled
func (l *Logger) Debug(message string) {
	if l.debug {
		l.line(l.errOut, dimStyle, "·", message)
	}
}

// Command echoes an external command before it runs.
// Only prints when debug output is enabled.
func (l *Logger) Command(command string) {
	if l.debug {
		fmt.Fprintln(l.errOut, dimStyle.Render("$ "+command))
	}
}

// Writer returns the writer used for regular output
func (l *Logger) Writer() io.Writer {
	return l.out
}

func (l *Logger) line(w io.Writer, style lipgloss.Style, symbol, message string) {
	fmt.Fprintf(w, "%s  %s\n", style.Render(symbol), message)
}

// Bold highlights a value inside a message
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Green highlights a value inside a message
func Green(s string) string {
	return greenStyle.Render(s)
}
