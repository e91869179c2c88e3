package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/sahilm/fuzzy"

	"github.com/barisgit/fwselect/internal/selection"
)

// SurveyPrompter asks questions on the terminal
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewPrompter creates a prompter with fuzzy option filtering
func NewPrompter() *SurveyPrompter {
	return &SurveyPrompter{
		opts: []survey.AskOpt{survey.WithFilter(fuzzyFilter)},
	}
}

// Select asks for exactly one of options
func (p *SurveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

// MultiSelect asks for zero or more of options and returns their values in
// option order
func (p *SurveyPrompter) MultiSelect(message string, options []selection.Option) ([]string, error) {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message:  message,
		Options:  labels,
		PageSize: len(labels),
	}
	if err := survey.AskOne(prompt, &picked, p.opts...); err != nil {
		return nil, translate(err)
	}

	return valuesFor(options, picked), nil
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return false, translate(err)
	}
	return answer, nil
}

func valuesFor(options []selection.Option, labels []string) []string {
	chosen := make(map[string]bool, len(labels))
	for _, label := range labels {
		chosen[label] = true
	}

	var values []string
	for _, option := range options {
		if chosen[option.Label] {
			values = append(values, option.Value)
		}
	}
	return values
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return selection.ErrCancelled
	}
	return err
}

func fuzzyFilter(filter, value string, _ int) bool {
	if filter == "" {
		return true
	}
	return len(fuzzy.Find(filter, []string{value})) > 0
}
