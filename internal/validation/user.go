package validation

import (
	"strings"

	"task-manager-api/internal/domain"
)

const (
	MsgNameRequired  = "Name is required and must be a non-empty string"
	MsgNameTooLong   = "Name must be less than 100 characters"
	MsgEmailRequired = "Email is required and must be a string"
	MsgEmailInvalid  = "Email must be a valid email address"
	MsgEmailTooLong  = "Email must be less than 255 characters"
)

// User validates a create or full-replace user payload.
func User(raw map[string]any) (domain.UserInput, Errors) {
	var errs Errors

	name, ok := nonEmptyString(raw["name"])
	if !ok {
		errs.add(MsgNameRequired)
	} else if charLen(strings.TrimSpace(name)) > maxNameLen {
		errs.add(MsgNameTooLong)
	}

	email, ok := raw["email"].(string)
	switch trimmed := strings.TrimSpace(email); {
	case !ok || email == "":
		errs.add(MsgEmailRequired)
	case !emailPattern.MatchString(trimmed):
		errs.add(MsgEmailInvalid)
	case charLen(trimmed) > maxEmailLen:
		errs.add(MsgEmailTooLong)
	}

	if len(errs) > 0 {
		return domain.UserInput{}, errs
	}
	return domain.UserInput{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}, nil
}
