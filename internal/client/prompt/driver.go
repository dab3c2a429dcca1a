// Package prompt asks the user for field values and confirmations. A survey
// based driver is used on terminals and a plain line reader everywhere else.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrAborted is returned when the user interrupts a prompt or input ends.
var ErrAborted = errors.New("prompt aborted")

type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Multiline bool
}

type ConfirmConfig struct {
	Message string
	Default bool
}

type SelectConfig struct {
	Message string
	Options []string
	Default string
}

// Driver abstracts the prompt implementation so command handlers can be
// tested without a terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (string, error)
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// New picks the survey driver when in is a terminal and the line driver
// over r otherwise. r must be the same reader the caller reads commands from.
func New(in *os.File, out *os.File, r *bufio.Reader) Driver {
	if isTerminal(int(in.Fd())) {
		return NewSurveyDriver(in, out)
	}
	return NewLineDriver(r, out)
}

// Confirmer adapts a Driver to the screen's confirmation interface.
type Confirmer struct {
	Driver Driver
}

func (c Confirmer) Confirm(ctx context.Context, message string) (bool, error) {
	return c.Driver.Confirm(ctx, ConfirmConfig{Message: message})
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}

