package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingMessage turns a gin binding failure into the human-readable
// message the API contract promises. Validator field errors are spelled
// out per field; anything else (malformed JSON, wrong types) gets a
// generic description.
func BindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid request body"
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("`%s` is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("`%s` is shorter than the minimum allowed length (%s)", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("`%s` is longer than the maximum allowed length (%s)", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("`%s` is invalid", field))
		}
	}
	return strings.Join(parts, ", ")
}
