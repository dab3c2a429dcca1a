package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type lineDriver struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineDriver reads answers line by line from r and writes prompts to w.
func NewLineDriver(r *bufio.Reader, w io.Writer) Driver {
	return &lineDriver{r: r, w: w}
}

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err != nil && len(lines) == 0 {
				return "", err
			}
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func aborted(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

func label(message, def string) string {
	if def == "" {
		return message
	}
	return fmt.Sprintf("%s [%s]", message, def)
}

func (d *lineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	read := GetSimpleText
	if cfg.Multiline {
		read = GetMultiline
	}
	v, err := read(d.r, label(cfg.Message, cfg.Default), d.w)
	if err != nil {
		return "", aborted(err)
	}
	if v == "" {
		return cfg.Default, nil
	}
	return v, nil
}

func (d *lineDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	hint := "y/N"
	if cfg.Default {
		hint = "Y/n"
	}
	v, err := GetSimpleText(d.r, fmt.Sprintf("%s (%s)", cfg.Message, hint), d.w)
	if err != nil {
		return false, aborted(err)
	}
	switch strings.ToLower(v) {
	case "":
		return cfg.Default, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select accepts either an option's 1-based number or its exact text and
// asks again on anything else.
func (d *lineDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	var b strings.Builder
	b.WriteString(label(cfg.Message, cfg.Default))
	for i, o := range cfg.Options {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, o)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := GetSimpleText(d.r, b.String(), d.w)
		if err != nil {
			return "", aborted(err)
		}
		if v == "" && indexOf(cfg.Options, cfg.Default) >= 0 {
			return cfg.Default, nil
		}
		if i := indexOf(cfg.Options, v); i >= 0 {
			return v, nil
		}
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(cfg.Options) {
			return cfg.Options[n-1], nil
		}
		fmt.Fprintf(d.w, "%q is not one of the options\n", v)
	}
}
