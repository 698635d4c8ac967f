package database

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{
			name: "native passes through",
			in:   "root:pw@tcp(localhost:3306)/tasks?parseTime=true",
			want: "root:pw@tcp(localhost:3306)/tasks?parseTime=true",
		},
		{
			name: "url form",
			in:   "mysql://root:pw@db:3306/tasks",
			want: "root:pw@tcp(db:3306)/tasks?charset=utf8mb4&parseTime=true",
		},
		{
			name: "jdbc with overrides",
			in:   "jdbc:mysql://db:3306/tasks?useSSL=false&serverTimezone=UTC&characterEncoding=utf8",
			user: "app", pass: "secret",
			want: "app:secret@tcp(db:3306)/tasks?charset=utf8&loc=UTC&parseTime=true&tls=false",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMySQLDSN(tc.in, tc.user, tc.pass); got != tc.want {
				t.Errorf("got  %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestMaskDSN(t *testing.T) {
	if got := maskDSN("root:pw@tcp(db:3306)/tasks"); got != "root:****@tcp(db:3306)/tasks" {
		t.Errorf("got %s", got)
	}
	if got := maskDSN("file:test.db"); got != "file:test.db" {
		t.Errorf("got %s", got)
	}
}

func TestNewGorm(t *testing.T) {
	if _, err := NewGorm(Opts{Driver: "oracle"}); !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("err = %v", err)
	}

	db, err := NewGorm(Opts{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, LogLevel: "silent"})
	if err != nil {
		t.Fatal(err)
	}
	defer Close(db)
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	for _, table := range []string{"users", "tasks"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing", table)
		}
	}
}
