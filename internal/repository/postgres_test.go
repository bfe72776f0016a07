package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/jaekwang-park/todo-board/internal/model"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *sql.NullTime:
			if v, ok := r.values[i].(time.Time); ok {
				*p = sql.NullTime{Time: v, Valid: true}
			}
		case *sql.NullString:
			if v, ok := r.values[i].(string); ok {
				*p = sql.NullString{String: v, Valid: true}
			}
		}
	}
	return nil
}

func TestScanTodo(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	todo, err := scanTodo(fakeRow{values: []any{"todo-1", "Title", "", due, "cat-work", true, created, created}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.DueDate == nil || todo.DueDate.String() != "2025-06-15" {
		t.Errorf("expected due date 2025-06-15, got %v", todo.DueDate)
	}
	if !todo.HasCategory("cat-work") || !todo.Completed {
		t.Errorf("unexpected todo: %+v", todo)
	}

	todo, err = scanTodo(fakeRow{values: []any{"todo-2", "Title", "", nil, nil, false, created, created}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.DueDate != nil || todo.CategoryID != nil {
		t.Errorf("expected null due date and category, got %+v", todo)
	}

	if _, err := scanTodo(fakeRow{err: sql.ErrNoRows}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected wrapped sql.ErrNoRows, got %v", err)
	}
}

func TestMapPostgresError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"foreign key", &pq.Error{Code: foreignKeyViolation, Message: "violates foreign key"}, ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPostgresError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	other := errors.New("connection reset")
	if got := mapPostgresError(other); got != other {
		t.Errorf("expected error unchanged, got %v", got)
	}
}

func TestDueDateArg(t *testing.T) {
	if dueDateArg(nil) != nil {
		t.Error("expected nil for missing due date")
	}
	d := model.NewDate(2025, time.June, 15)
	if got := dueDateArg(&d); got != "2025-06-15" {
		t.Errorf("expected 2025-06-15, got %v", got)
	}
}
