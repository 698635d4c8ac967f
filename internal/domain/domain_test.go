package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		page, limit int
		total       int64
		want        PageMeta
	}{
		{1, 10, 0, PageMeta{CurrentPage: 1, TotalPages: 0, TotalCount: 0, Limit: 10}},
		{1, 10, 10, PageMeta{CurrentPage: 1, TotalPages: 1, TotalCount: 10, Limit: 10}},
		{1, 10, 11, PageMeta{CurrentPage: 1, TotalPages: 2, TotalCount: 11, HasNextPage: true, Limit: 10}},
		{2, 10, 11, PageMeta{CurrentPage: 2, TotalPages: 2, TotalCount: 11, HasPrevPage: true, Limit: 10}},
		{5, 3, 7, PageMeta{CurrentPage: 5, TotalPages: 3, TotalCount: 7, HasPrevPage: true, Limit: 3}},
		{1, 1, 1, PageMeta{CurrentPage: 1, TotalPages: 1, TotalCount: 1, Limit: 1}},
	}
	for _, tc := range cases {
		if got := NewPageMeta(tc.page, tc.limit, tc.total); got != tc.want {
			t.Errorf("NewPageMeta(%d, %d, %d) = %+v, want %+v", tc.page, tc.limit, tc.total, got, tc.want)
		}
	}
}

func TestNewPageMeta_CeilProperty(t *testing.T) {
	for total := int64(0); total <= 50; total++ {
		for limit := 1; limit <= 12; limit++ {
			m := NewPageMeta(1, limit, total)
			if int64(m.TotalPages)*int64(limit) < total || (m.TotalPages > 0 && int64(m.TotalPages-1)*int64(limit) >= total) {
				t.Fatalf("total=%d limit=%d pages=%d is not the ceiling", total, limit, m.TotalPages)
			}
			if m.HasNextPage != (1 < m.TotalPages) {
				t.Fatalf("total=%d limit=%d hasNext=%v", total, limit, m.HasNextPage)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	want := NewDate(2024, time.December, 31)
	for _, s := range []string{"2024-12-31", "2024-12-31T10:00:00Z", "2024-12-31T23:30:00-05:00", "12/31/2024", "Dec 31, 2024", "2024/12/31"} {
		got, ok := ParseDate(s)
		if !ok || !got.Equal(want.Time) {
			t.Errorf("ParseDate(%q) = %v, %v", s, got, ok)
		}
	}
	for _, s := range []string{"", "invalid-date", "2024-13-01", "2023-02-29", "31/12/2024"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) accepted", s)
		}
	}
}

func TestDate_JSONAndScan(t *testing.T) {
	d := NewDate(2025, time.March, 4)
	b, err := json.Marshal(struct {
		D *Date `json:"d"`
	}{&d})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"d":"2025-03-04"}` {
		t.Errorf("json = %s", b)
	}

	var s Date
	for _, src := range []any{"2025-03-04", []byte("2025-03-04 00:00:00+00:00"), time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)} {
		if err := s.Scan(src); err != nil || s.String() != "2025-03-04" {
			t.Errorf("Scan(%v) = %v, %v", src, s, err)
		}
	}
	if v, _ := d.Value(); v != "2025-03-04" {
		t.Errorf("Value = %v", v)
	}
}

func TestErrorKind(t *testing.T) {
	wrapped := fmt.Errorf("op: %w", NotFound("Task not found"))
	if KindOf(wrapped) != KindNotFound {
		t.Errorf("kind = %v", KindOf(wrapped))
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("foreign errors should be internal")
	}
	cause := errors.New("db down")
	if !errors.Is(Internal("failed", cause), cause) {
		t.Error("internal error should unwrap to its cause")
	}
}

func TestTaskStatus(t *testing.T) {
	if StatusList() != "pending, in_progress, completed" {
		t.Errorf("list = %q", StatusList())
	}
	if TaskStatus("done").Valid() {
		t.Error("done should be invalid")
	}
}
