package prompt

import (
	"context"
	"fmt"
	"sync"
)

// Answer is one scripted reply. Exactly one of the value fields is used, depending on the
// prompt it answers.
type Answer struct {
	Text   string
	Index  int
	Yes    bool
	UseDef bool
}

// Text answers an Input prompt.
func Text(s string) Answer { return Answer{Text: s} }

// Choose answers a Select prompt with the option at index i.
func Choose(i int) Answer { return Answer{Index: i} }

// Yes answers a Confirm prompt with yes.
func Yes() Answer { return Answer{Yes: true} }

// No answers a Confirm prompt with no.
func No() Answer { return Answer{} }

// Default accepts the prompt's default.
func Default() Answer { return Answer{UseDef: true} }

var _ Driver = (*ScriptedDriver)(nil)

// ScriptedDriver replays answers in order. It records every prompt message and every Info
// message so flows can be asserted on without a terminal.
type ScriptedDriver struct {
	mu       sync.Mutex
	answers  []Answer
	pos      int
	Prompts  []string
	Messages []string
}

// NewScriptedDriver creates a driver replaying answers.
func NewScriptedDriver(answers ...Answer) *ScriptedDriver {
	return &ScriptedDriver{answers: answers}
}

// Remaining returns the number of answers not consumed yet.
func (d *ScriptedDriver) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.answers) - d.pos
}

func (d *ScriptedDriver) next(message string) (Answer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Prompts = append(d.Prompts, message)
	if d.pos >= len(d.answers) {
		return Answer{}, fmt.Errorf("no answer scripted for %q", message)
	}
	a := d.answers[d.pos]
	d.pos++

	return a, nil
}

// Input implements Driver. Validators run on the scripted text.
func (d *ScriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a, err := d.next(cfg.Message)
	if err != nil {
		return "", err
	}

	out := a.Text
	if a.UseDef {
		out = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}

	return out, nil
}

// Confirm implements Driver.
func (d *ScriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a, err := d.next(cfg.Message)
	if err != nil {
		return false, err
	}
	if a.UseDef {
		return cfg.Default, nil
	}

	return a.Yes, nil
}

// Select implements Driver.
func (d *ScriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a, err := d.next(cfg.Message)
	if err != nil {
		return 0, err
	}

	idx := a.Index
	if a.UseDef {
		idx = cfg.DefaultIndex
	}
	if idx < 0 || idx >= len(cfg.Options) {
		return 0, fmt.Errorf("scripted option %d out of range for %q", idx, cfg.Message)
	}

	return idx, nil
}

// Info implements Driver.
func (d *ScriptedDriver) Info(_ context.Context, msg string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Messages = append(d.Messages, msg)

	return nil
}
