package validation

import (
	"net/url"

	"task-manager-api/internal/domain"
)

const (
	MsgDeadlineFilterInvalid = "Deadline filter must be a valid date in YYYY-MM-DD format"
	MsgUserIDFilterInvalid   = "User ID filter must be a positive integer"
	MsgPageInvalid           = "Page must be a positive integer"
	MsgLimitInvalid          = "Limit must be a positive integer between 1 and 100"
	MsgIDInvalid             = "ID must be a positive integer"

	DefaultPage  = 1
	DefaultLimit = 10
)

func MsgStatusFilterInvalid() string { return "Status filter must be one of: " + domain.StatusList() }

// ListQuery validates the filter and pagination parameters of a task listing.
// Empty parameters count as absent.
func ListQuery(q url.Values) (domain.ListQuery, Errors) {
	var errs Errors
	out := domain.ListQuery{Page: DefaultPage, Limit: DefaultLimit}

	if s := q.Get("status"); s != "" {
		if st := domain.TaskStatus(s); st.Valid() {
			out.Filter.Status = st
		} else {
			errs.add(MsgStatusFilterInvalid())
		}
	}

	if s := q.Get("deadline"); s != "" {
		if d, ok := domain.ParseDate(s); ok {
			out.Filter.Deadline = &d
		} else {
			errs.add(MsgDeadlineFilterInvalid)
		}
	}

	if s := q.Get("user_id"); s != "" {
		if id, ok := parsePositiveInt(s); ok {
			out.Filter.UserID = id
		} else {
			errs.add(MsgUserIDFilterInvalid)
		}
	}

	if s := q.Get("page"); s != "" {
		if n, ok := parsePositiveInt(s); ok && n <= maxSafeInt/maxPageSize {
			out.Page = int(n)
		} else {
			errs.add(MsgPageInvalid)
		}
	}

	if s := q.Get("limit"); s != "" {
		if n, ok := parsePositiveInt(s); ok && n <= maxPageSize {
			out.Limit = int(n)
		} else {
			errs.add(MsgLimitInvalid)
		}
	}

	if len(errs) > 0 {
		return domain.ListQuery{}, errs
	}
	return out, nil
}

// ID validates a path identifier.
func ID(raw string) (uint64, Errors) {
	id, ok := parsePositiveInt(raw)
	if !ok {
		return 0, Errors{MsgIDInvalid}
	}
	return id, nil
}
