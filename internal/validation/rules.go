// Package validation checks raw request input and produces normalized domain
// values. Nothing here touches the store.
package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"task-manager-api/internal/domain"
)

const (
	maxNameLen        = 100
	maxEmailLen       = 255
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxPageSize       = 100

	// largest integer a JSON number carries exactly
	maxSafeInt = 1<<53 - 1
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors lists violated rules in field declaration order.
type Errors []string

func (e Errors) Error() string { return strings.Join(e, "; ") }

func (e *Errors) add(msg string) { *e = append(*e, msg) }

func charLen(s string) int { return utf8.RuneCountInString(s) }

// nonEmptyString reports the value as a string when it is one and not blank.
func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// truthy treats absent, null, "", 0 and false as not supplied.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	}
	return true
}

// positiveInt accepts JSON numbers and numeric strings holding a whole number > 0.
func positiveInt(v any) (uint64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		p, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		return parsePositiveInt(x)
	default:
		return 0, false
	}
	return wholePositive(f)
}

func parsePositiveInt(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return wholePositive(f)
}

func wholePositive(f float64) (uint64, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) || f <= 0 || f > maxSafeInt {
		return 0, false
	}
	return uint64(f), true
}

func validDate(v any) (domain.Date, bool) {
	s, ok := v.(string)
	if !ok {
		return domain.Date{}, false
	}
	return domain.ParseDate(s)
}

// optionalDate accepts null as "no deadline".
func optionalDate(v any) (*domain.Date, bool) {
	if v == nil {
		return nil, true
	}
	d, ok := validDate(v)
	if !ok {
		return nil, false
	}
	return &d, true
}

func validStatus(v any) (domain.TaskStatus, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	st := domain.TaskStatus(s)
	return st, st.Valid()
}

// description normalizes to nil when blank after trimming.
func description(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
