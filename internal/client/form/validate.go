package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// tags returns the validator tag for f, or "" when the field has no native
// constraint beyond Min.
func tags(f models.Field) string {
	var t []string
	if f.Required {
		t = append(t, "required")
	} else {
		t = append(t, "omitempty")
	}
	switch f.Kind {
	case models.FieldEmail:
		t = append(t, "email")
	case models.FieldNumber, models.FieldInteger:
		t = append(t, "numeric")
	case models.FieldEnum:
		quoted := make([]string, len(f.Options))
		for i, o := range f.Options {
			quoted[i] = "'" + o + "'"
		}
		t = append(t, "oneof="+strings.Join(quoted, " "))
	}
	if len(t) == 1 && t[0] == "omitempty" {
		return ""
	}
	return strings.Join(t, ",")
}

func message(f models.Field, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "numeric":
		if f.Kind == models.FieldInteger {
			return "must be a whole number"
		}
		return "must be a number"
	case "oneof":
		return "must be one of " + strings.Join(f.Options, ", ")
	default:
		return "is invalid"
	}
}

// parse converts a validated numeric value. Empty input yields ok == false.
func parse(f models.Field, v string) (any, bool, error) {
	if v == "" {
		return nil, false, nil
	}
	if f.Kind == models.FieldInteger {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("must be a whole number")
		}
		return n, true, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, false, fmt.Errorf("must be a number")
	}
	return n, true, nil
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func checkDraft(v *validator.Validate, fields []models.Field, d models.Draft) error {
	verr := &ValidationError{}
	for _, f := range fields {
		value := d[f.Name]
		if tag := tags(f); tag != "" {
			if err := v.Var(value, tag); err != nil {
				if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
					verr.add(f.Name, message(f, errs[0]))
				} else {
					verr.add(f.Name, "is invalid")
				}
				continue
			}
		}
		if !f.Numeric() {
			continue
		}
		n, ok, err := parse(f, value)
		if err != nil {
			verr.add(f.Name, err.Error())
			continue
		}
		if ok && f.Min != nil && asFloat(n) < *f.Min {
			verr.add(f.Name, "must be at least "+strconv.FormatFloat(*f.Min, 'f', -1, 64))
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
