package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type surveyDriver struct {
	opts []survey.AskOpt
}

func NewSurveyDriver(in *os.File, out *os.File) Driver {
	return &surveyDriver{opts: []survey.AskOpt{survey.WithStdio(in, out, out)}}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	var p survey.Prompt
	if cfg.Multiline {
		p = &survey.Multiline{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}
	} else {
		p = &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}
	}
	if err := survey.AskOne(p, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	p := &survey.Confirm{Message: cfg.Message, Default: cfg.Default}
	if err := survey.AskOne(p, &out, d.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Select{Message: cfg.Message, Options: cfg.Options}
	if indexOf(cfg.Options, cfg.Default) >= 0 {
		p.Default = cfg.Default
	}
	if err := survey.AskOne(p, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
