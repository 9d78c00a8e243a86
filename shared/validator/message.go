package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "This field is required.",
		"oneof":    "Select a valid choice. {value} is not one of the available choices.",
		"max":      "Ensure this value has at most {param} characters.",
		"min":      "Ensure this value has at least {param} characters.",
		"datetime": "Invalid date format. Please use {param}.",
	}
)

func message(err error, value any) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())
				errStr = strings.ReplaceAll(errStr, "{value}", fmt.Sprintf("%v", value))

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
