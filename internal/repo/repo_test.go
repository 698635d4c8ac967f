package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"task-manager-api/internal/core/database"
	"task-manager-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func datePtr(d domain.Date) *domain.Date { return &d }

func mustUser(t *testing.T, r *UserRepo, name, email string) *domain.User {
	t.Helper()
	u, err := r.Create(context.Background(), domain.UserInput{Name: name, Email: email})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func mustTask(t *testing.T, r *TaskRepo, in domain.TaskInput) *domain.Task {
	t.Helper()
	tk, err := r.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return tk
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "Ada", "ada@example.com")
	if u.ID == 0 || u.CreatedAt.IsZero() {
		t.Fatalf("store did not assign id/timestamps: %+v", u)
	}

	got, err := users.FindByID(ctx, u.ID)
	if err != nil || got == nil || got.Email != "ada@example.com" {
		t.Fatalf("FindByID = %+v, %v", got, err)
	}
	got, err = users.FindByEmail(ctx, "ada@example.com")
	if err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("FindByEmail = %+v, %v", got, err)
	}

	missing, err := users.FindByID(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("FindByID(missing) = %+v, %v", missing, err)
	}
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	mustUser(t, users, "Ada", "ada@example.com")
	_, err := users.Create(ctx, domain.UserInput{Name: "Other", Email: "ada@example.com"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("create err = %v, want ErrDuplicateEmail", err)
	}

	b := mustUser(t, users, "Bob", "bob@example.com")
	_, err = users.Update(ctx, b.ID, domain.UserInput{Name: "Bob", Email: "ada@example.com"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("update err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserRepo_UpdateDeleteExists(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "Ada", "ada@example.com")
	upd, err := users.Update(ctx, u.ID, domain.UserInput{Name: "Ada L", Email: "lovelace@example.com"})
	if err != nil || upd == nil {
		t.Fatalf("Update = %+v, %v", upd, err)
	}
	if upd.Name != "Ada L" || upd.Email != "lovelace@example.com" {
		t.Errorf("Update did not replace fields: %+v", upd)
	}
	if upd.UpdatedAt.Before(u.UpdatedAt) {
		t.Errorf("updated_at went backwards")
	}

	none, err := users.Update(ctx, 999, domain.UserInput{Name: "x", Email: "x@example.com"})
	if err != nil || none != nil {
		t.Errorf("Update(missing) = %+v, %v", none, err)
	}

	ok, err := users.Exists(ctx, u.ID)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	deleted, err := users.Delete(ctx, u.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}
	deleted, err = users.Delete(ctx, u.ID)
	if err != nil || deleted {
		t.Errorf("second Delete = %v, %v", deleted, err)
	}
	ok, _ = users.Exists(ctx, u.ID)
	if ok {
		t.Error("user still exists after delete")
	}
}

func TestUserRepo_FindAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepo(db)
	for i := 0; i < 3; i++ {
		mustUser(t, users, fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@example.com", i))
	}
	all, err := users.FindAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Name != "u2" || all[2].Name != "u0" {
		t.Errorf("order = %v", all)
	}
}

func TestTaskRepo_CreateDefaultsAndJoin(t *testing.T) {
	db := setupTestDB(t)
	users, tasks := NewUserRepo(db), NewTaskRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "Ada", "ada@example.com")
	d := domain.NewDate(2030, 12, 31)
	tk := mustTask(t, tasks, domain.TaskInput{Title: "Write", Deadline: &d, UserID: u.ID})
	if tk.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", tk.Status)
	}
	if tk.Description != nil {
		t.Errorf("description = %v, want nil", *tk.Description)
	}

	got, err := tasks.FindByID(ctx, tk.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID = %+v, %v", got, err)
	}
	if got.User.ID != u.ID || got.User.Email != "ada@example.com" || got.User.Name != "Ada" {
		t.Errorf("owner = %+v", got.User)
	}
	if got.Deadline == nil || got.Deadline.String() != "2030-12-31" {
		t.Errorf("deadline = %v", got.Deadline)
	}
}

func TestTaskRepo_FiltersAndPagination(t *testing.T) {
	db := setupTestDB(t)
	users, tasks := NewUserRepo(db), NewTaskRepo(db)
	ctx := context.Background()

	a := mustUser(t, users, "A", "a@example.com")
	b := mustUser(t, users, "B", "b@example.com")
	d := domain.NewDate(2030, 1, 1)
	for i := 0; i < 5; i++ {
		mustTask(t, tasks, domain.TaskInput{Title: fmt.Sprintf("a%d", i), UserID: a.ID})
	}
	mustTask(t, tasks, domain.TaskInput{Title: "b-done", Status: domain.StatusCompleted, Deadline: &d, UserID: b.ID})

	all, err := tasks.FindAll(ctx, domain.TaskFilter{}, domain.Page{})
	if err != nil || len(all) != 6 {
		t.Fatalf("FindAll = %d, %v", len(all), err)
	}
	if all[0].Title != "b-done" {
		t.Errorf("first = %q, want newest", all[0].Title)
	}

	done, _ := tasks.FindAll(ctx, domain.TaskFilter{Status: domain.StatusCompleted, Deadline: &d}, domain.Page{})
	if len(done) != 1 || done[0].User.ID != b.ID {
		t.Errorf("status+deadline filter = %v", done)
	}

	mine, _ := tasks.FindAll(ctx, domain.TaskFilter{UserID: a.ID}, domain.Page{Limit: 2, Offset: 2})
	if len(mine) != 2 || mine[0].Title != "a2" || mine[1].Title != "a1" {
		t.Errorf("page 2 = %v", mine)
	}

	// offset alone is not applied
	noLimit, _ := tasks.FindAll(ctx, domain.TaskFilter{UserID: a.ID}, domain.Page{Offset: 3})
	if len(noLimit) != 5 {
		t.Errorf("offset without limit returned %d rows", len(noLimit))
	}

	n, err := tasks.Count(ctx, domain.TaskFilter{UserID: a.ID})
	if err != nil || n != 5 {
		t.Errorf("Count = %d, %v", n, err)
	}
}

func TestTaskRepo_OrphanedTasks(t *testing.T) {
	db := setupTestDB(t)
	users, tasks := NewUserRepo(db), NewTaskRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "A", "a@example.com")
	tk := mustTask(t, tasks, domain.TaskInput{Title: "left behind", UserID: u.ID})
	if _, err := users.Delete(ctx, u.ID); err != nil {
		t.Fatal(err)
	}

	got, err := tasks.FindByID(ctx, tk.ID)
	if err != nil || got != nil {
		t.Errorf("FindByID(orphan) = %+v, %v", got, err)
	}
	list, _ := tasks.FindAll(ctx, domain.TaskFilter{}, domain.Page{})
	if len(list) != 0 {
		t.Errorf("listing includes orphan: %v", list)
	}
	n, _ := tasks.Count(ctx, domain.TaskFilter{})
	if n != 1 {
		t.Errorf("Count = %d, want orphan counted", n)
	}
	ok, _ := tasks.Exists(ctx, tk.ID)
	if !ok {
		t.Error("orphan row should remain in storage")
	}
}

func TestTaskRepo_PartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	users, tasks := NewUserRepo(db), NewTaskRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "A", "a@example.com")
	tk := mustTask(t, tasks, domain.TaskInput{Title: "old", Description: strPtr("keep"), UserID: u.ID})

	upd, err := tasks.Update(ctx, tk.ID, domain.TaskPatch{Status: domain.Some(domain.StatusInProgress)})
	if err != nil || upd == nil {
		t.Fatalf("Update = %+v, %v", upd, err)
	}
	if upd.Title != "old" || upd.Description == nil || *upd.Description != "keep" {
		t.Errorf("absent fields changed: %+v", upd)
	}
	if upd.Status != domain.StatusInProgress || upd.UserID != u.ID {
		t.Errorf("status = %q user_id = %d", upd.Status, upd.UserID)
	}

	cleared, err := tasks.Update(ctx, tk.ID, domain.TaskPatch{
		Description: domain.Some[*string](nil),
		Deadline:    domain.Some(datePtr(domain.NewDate(2031, 2, 3))),
	})
	if err != nil || cleared == nil {
		t.Fatalf("Update = %+v, %v", cleared, err)
	}
	if cleared.Description != nil {
		t.Errorf("description not cleared: %q", *cleared.Description)
	}
	if cleared.Deadline == nil || cleared.Deadline.String() != "2031-02-03" {
		t.Errorf("deadline = %v", cleared.Deadline)
	}

	undated, err := tasks.Update(ctx, tk.ID, domain.TaskPatch{Deadline: domain.Some[*domain.Date](nil)})
	if err != nil || undated == nil {
		t.Fatalf("Update = %+v, %v", undated, err)
	}
	if undated.Deadline != nil {
		t.Errorf("deadline not cleared: %v", undated.Deadline)
	}
	if undated.Status != domain.StatusInProgress {
		t.Errorf("status changed to %q", undated.Status)
	}

	if _, err := tasks.Update(ctx, tk.ID, domain.TaskPatch{}); !errors.Is(err, domain.ErrNoFieldsProvided) {
		t.Errorf("empty patch err = %v", err)
	}
	none, err := tasks.Update(ctx, 999, domain.TaskPatch{Title: domain.Some("x")})
	if err != nil || none != nil {
		t.Errorf("Update(missing) = %+v, %v", none, err)
	}
}

func TestTaskRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	users, tasks := NewUserRepo(db), NewTaskRepo(db)
	ctx := context.Background()

	u := mustUser(t, users, "A", "a@example.com")
	tk := mustTask(t, tasks, domain.TaskInput{Title: "x", UserID: u.ID})
	ok, err := tasks.Delete(ctx, tk.ID)
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	ok, _ = tasks.Delete(ctx, tk.ID)
	if ok {
		t.Error("second delete reported a row")
	}
}

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"mysql dup", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1452, Message: "fk"}, false},
		{"sqlite text", errors.New("UNIQUE constraint failed: users.email"), true},
		{"other", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isDuplicateKey(tc.err); got != tc.want {
				t.Errorf("isDuplicateKey(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
