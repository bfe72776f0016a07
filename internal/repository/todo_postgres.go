package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jaekwang-park/todo-board/internal/model"
)

const todoColumns = `id, title, description, due_date, category_id, completed, created_at, updated_at`

type PostgresTodoRepository struct {
	db *sql.DB
}

func NewPostgresTodo(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description, due_date, category_id, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + todoColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), todo.Title, todo.Description,
		dueDateArg(todo.DueDate), todo.CategoryID, todo.Completed,
	)

	created, err := scanTodo(row)
	if err != nil {
		return model.Todo{}, mapPostgresError(err)
	}
	return created, nil
}

func (r *PostgresTodoRepository) GetByID(ctx context.Context, todoID string) (model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, todoID))
	if err != nil {
		return model.Todo{}, mapPostgresError(err)
	}
	return todo, nil
}

func (r *PostgresTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}
	return todos, nil
}

func (r *PostgresTodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, category_id = $4, completed = $5, updated_at = now()
		WHERE id = $6
		RETURNING ` + todoColumns

	row := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Description, dueDateArg(todo.DueDate), todo.CategoryID, todo.Completed, todo.ID,
	)

	updated, err := scanTodo(row)
	if err != nil {
		return model.Todo{}, mapPostgresError(err)
	}
	return updated, nil
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, todoID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, todoID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTodo(row scannable) (model.Todo, error) {
	var (
		t          model.Todo
		dueDate    sql.NullTime
		categoryID sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &dueDate,
		&categoryID, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	if dueDate.Valid {
		d := model.DateOf(dueDate.Time)
		t.DueDate = &d
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.String
	}
	return t, nil
}

func dueDateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Format(model.DateLayout)
}

// foreignKeyViolation is the SQLSTATE Postgres reports for a dangling reference.
const foreignKeyViolation = "23503"

func mapPostgresError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Message)
	}
	return err
}

var _ TodoRepository = (*PostgresTodoRepository)(nil)
