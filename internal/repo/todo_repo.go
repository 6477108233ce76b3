package repo

import (
	"context"
	"time"

	dom "todoapi/internal/domain"
	"todoapi/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, patch dom.TodoPatch, now time.Time) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGTodoRepo struct {
	db *storage.Provider
}

func NewPGTodoRepo(db *storage.Provider) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, created_at, updated_at`
	var out dom.Todo
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, t.Title, t.Description, t.CreatedAt, t.UpdatedAt).Scan(
			&out.ID, &out.Title, &out.Description, &out.CreatedAt, &out.UpdatedAt,
		)
	})
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, id).Scan(
			&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
		)
	})
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM todos ORDER BY id`
	var list []dom.Todo
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var t dom.Todo
			if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return err
			}
			list = append(list, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update applies the patch in a single statement: unset fields keep their
// stored values, so two concurrent updates of different fields do not
// clobber each other.
func (r *PGTodoRepo) Update(ctx context.Context, id int64, patch dom.TodoPatch, now time.Time) (dom.Todo, error) {
	query := `
		UPDATE todos
		SET title = COALESCE($2, title),
		    description = CASE WHEN $3 THEN $4 ELSE description END,
		    updated_at = $5
		WHERE id = $1
		RETURNING id, title, description, created_at, updated_at`
	var t dom.Todo
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, id, patch.Title, patch.DescriptionSet, patch.Description, now).Scan(
			&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
		)
	})
	return t, err
}

// Delete removes the row permanently. Returns false when no row matched.
func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	return deleted, err
}
