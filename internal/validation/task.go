package validation

import (
	"strings"

	"task-manager-api/internal/domain"
)

const (
	MsgTitleRequired       = "Title is required and must be a non-empty string"
	MsgTitleEmpty          = "Title must be a non-empty string"
	MsgTitleTooLong        = "Title must be less than 200 characters"
	MsgDescriptionType     = "Description must be a string"
	MsgDescriptionTooLong  = "Description must be less than 1000 characters"
	MsgDeadlineInvalid     = "Deadline must be a valid date in YYYY-MM-DD format"
	MsgUserIDRequired      = "User ID is required"
	MsgUserIDInvalid       = "User ID must be a positive integer"
	MsgUpdateNeedsOneField = "At least one field (title, description, status, deadline) must be provided for update"
)

func MsgStatusInvalid() string { return "Status must be one of: " + domain.StatusList() }

// Task validates a creation payload. Title and user_id are mandatory.
func Task(raw map[string]any) (domain.TaskInput, Errors) {
	var (
		errs Errors
		in   domain.TaskInput
	)

	if title, ok := nonEmptyString(raw["title"]); !ok {
		errs.add(MsgTitleRequired)
	} else if t := strings.TrimSpace(title); charLen(t) > maxTitleLen {
		errs.add(MsgTitleTooLong)
	} else {
		in.Title = t
	}

	if v, present := raw["description"]; present {
		if d, ok := checkDescription(v, &errs); ok {
			in.Description = d
		}
	}

	if v, present := raw["status"]; present {
		if st, ok := validStatus(v); ok {
			in.Status = st
		} else {
			errs.add(MsgStatusInvalid())
		}
	}

	if v, present := raw["deadline"]; present {
		if d, ok := optionalDate(v); ok {
			in.Deadline = d
		} else {
			errs.add(MsgDeadlineInvalid)
		}
	}

	if v := raw["user_id"]; !truthy(v) {
		errs.add(MsgUserIDRequired)
	} else if id, ok := positiveInt(v); !ok {
		errs.add(MsgUserIDInvalid)
	} else {
		in.UserID = id
	}

	if len(errs) > 0 {
		return domain.TaskInput{}, errs
	}
	return in, nil
}

// TaskUpdate validates a partial update. Every field is optional but at least
// one of title, description, status or deadline must carry a value. user_id is
// not updatable and is ignored.
func TaskUpdate(raw map[string]any) (domain.TaskPatch, Errors) {
	var (
		errs  Errors
		patch domain.TaskPatch
	)

	if !truthy(raw["title"]) && !truthy(raw["description"]) && !truthy(raw["status"]) && !truthy(raw["deadline"]) {
		errs.add(MsgUpdateNeedsOneField)
	}

	if v, present := raw["title"]; present {
		if title, ok := nonEmptyString(v); !ok {
			errs.add(MsgTitleEmpty)
		} else if t := strings.TrimSpace(title); charLen(t) > maxTitleLen {
			errs.add(MsgTitleTooLong)
		} else {
			patch.Title = domain.Some(t)
		}
	}

	if v, present := raw["description"]; present {
		if d, ok := checkDescription(v, &errs); ok {
			patch.Description = domain.Some(d)
		}
	}

	if v, present := raw["status"]; present {
		if st, ok := validStatus(v); ok {
			patch.Status = domain.Some(st)
		} else {
			errs.add(MsgStatusInvalid())
		}
	}

	if v, present := raw["deadline"]; present {
		if d, ok := optionalDate(v); ok {
			patch.Deadline = domain.Some(d)
		} else {
			errs.add(MsgDeadlineInvalid)
		}
	}

	if len(errs) > 0 {
		return domain.TaskPatch{}, errs
	}
	return patch, nil
}

// checkDescription applies the length limit to the value as sent, before trimming.
func checkDescription(v any, errs *Errors) (*string, bool) {
	s, ok := v.(string)
	if !ok {
		errs.add(MsgDescriptionType)
		return nil, false
	}
	if charLen(s) > maxDescriptionLen {
		errs.add(MsgDescriptionTooLong)
		return nil, false
	}
	return description(s), true
}
