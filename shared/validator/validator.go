package validator

import (
	"sync"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate
	once     sync.Once
)

func instance() *val.Validate {
	once.Do(func() {
		validate = val.New(val.WithRequiredStructEnabled())
	})

	return validate
}

// Field checks value against tag and records a human readable message for
// name in errs when the check fails. It reports whether the value passed.
func Field(errs FieldErrors, name string, value any, tag string) bool {
	if err := instance().Var(value, tag); err != nil {
		errs.Add(name, message(err, value))

		return false
	}

	return true
}

// FieldWithMessage behaves like Field but records msg instead of the
// generic message for the failed tag.
func FieldWithMessage(errs FieldErrors, name string, value any, tag, msg string) bool {
	if err := instance().Var(value, tag); err != nil {
		errs.Add(name, msg)

		return false
	}

	return true
}
