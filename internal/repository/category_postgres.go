package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaekwang-park/todo-board/internal/model"
)

const categoryColumns = `id, name, color, icon`

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategory(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `
		INSERT INTO categories (id, name, color, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), category.Name, category.Color, category.Icon,
	)

	created, err := scanCategory(row)
	if err != nil {
		return model.Category{}, mapPostgresError(err)
	}
	return created, nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, categoryID string) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, categoryID))
	if err != nil {
		return model.Category{}, mapPostgresError(err)
	}
	return category, nil
}

func (r *PostgresCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, color = $2, icon = $3
		WHERE id = $4
		RETURNING ` + categoryColumns

	row := r.db.QueryRowContext(ctx, query, category.Name, category.Color, category.Icon, category.ID)

	updated, err := scanCategory(row)
	if err != nil {
		return model.Category{}, mapPostgresError(err)
	}
	return updated, nil
}

// Delete clears the reference on every todo pointing at the category and
// removes the category in one transaction.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, categoryID string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`UPDATE todos SET category_id = NULL, updated_at = now() WHERE category_id = $1`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear category from todos: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		err = ErrNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}
	return nil
}

func scanCategory(row scannable) (model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
		return model.Category{}, fmt.Errorf("failed to scan category: %w", err)
	}
	return c, nil
}

var _ CategoryRepository = (*PostgresCategoryRepository)(nil)
