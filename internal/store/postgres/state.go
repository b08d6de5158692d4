package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/harborwind/clientstate/internal/model"
)

var _ model.Store = (*StateRepository)(nil)

// StateRepository persists client state entries in Postgres.
type StateRepository struct {
	db *Connection
}

func NewStateRepository(db *Connection) *StateRepository {
	return &StateRepository{
		db: db,
	}
}

func (r *StateRepository) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM client_state WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", err
	}

	return value, nil
}

func (r *StateRepository) Set(ctx context.Context, key string, value string) error {
	const query = `
		INSERT INTO client_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, key, value)
	return err
}

func (r *StateRepository) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM client_state WHERE key = $1`

	// Removing an absent key is a no-op, so RowsAffected is not checked.
	_, err := r.db.Exec(ctx, query, key)
	return err
}

func (r *StateRepository) Keys(ctx context.Context) ([]string, error) {
	const query = `SELECT key FROM client_state ORDER BY key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}
