package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storeadmin/internal/client/form"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/prompt"
	"github.com/dmitrijs2005/storeadmin/internal/client/screen"
)

// clearValue entered at a field prompt empties the field; an empty answer
// keeps the shown value.
const clearValue = "-"

// fillForm prompts every field of the open form and submits it. After a
// rejected submit the draft is kept and the user may edit it again.
func (a *App) fillForm(ctx context.Context, s *screen.Screen, success string) error {
	f := s.Form()
	for {
		for _, fd := range f.Fields() {
			v, err := a.ask(ctx, fd, f.Draft()[fd.Name])
			if err != nil {
				s.Cancel()
				printlnFn(a.cat.Cancelled)
				return err
			}
			if err := f.Change(fd.Name, v); err != nil {
				s.Cancel()
				return report(err)
			}
		}

		err := s.Submit(ctx)
		if err == nil {
			printlnFn(success)
			a.render(s)
			return nil
		}

		var verr *form.ValidationError
		var serr *form.SubmitError
		switch {
		case errors.As(err, &verr):
			printlnFn(a.cat.Invalid)
			for _, fd := range f.Fields() {
				if msg, ok := verr.Fields[fd.Name]; ok {
					printlnFn("  " + fd.DisplayLabel() + ": " + msg)
				}
			}
		case errors.As(err, &serr):
			printlnFn(serr.Message)
		default:
			s.Cancel()
			return report(err)
		}

		again, cerr := a.driver.Confirm(ctx, prompt.ConfirmConfig{Message: a.cat.Retry, Default: true})
		if cerr != nil || !again {
			s.Cancel()
			printlnFn(a.cat.Cancelled)
			return err
		}
	}
}

func (a *App) ask(ctx context.Context, fd models.Field, current string) (string, error) {
	msg := fd.DisplayLabel()
	if fd.Required {
		msg += " *"
	}

	if fd.Kind == models.FieldEnum {
		def := current
		if def == "" {
			def = fd.Default
		}
		return a.driver.Select(ctx, prompt.SelectConfig{Message: msg, Options: fd.Options, Default: def})
	}

	v, err := a.driver.Input(ctx, prompt.InputConfig{
		Message:   msg,
		Default:   current,
		Help:      "enter " + clearValue + " to clear",
		Multiline: fd.Kind == models.FieldTextArea,
	})
	if err != nil {
		return "", err
	}
	if v == clearValue {
		return "", nil
	}
	return v, nil
}
