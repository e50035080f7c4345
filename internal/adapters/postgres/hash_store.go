package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HashStore keeps hashes as rows of the rate_hashes table, one row per field. Query
// errors are returned as pgx reports them.
type HashStore struct {
	pool *pgxpool.Pool
}

func (s *HashStore) Get(ctx context.Context, key, field string) (string, bool, error) {
	const q = `select value from rate_hashes where hash_key = $1 and field = $2;`

	var value string
	if err := s.pool.QueryRow(ctx, q, key, field).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *HashStore) Set(ctx context.Context, key, field, value string) error {
	const q = `
		insert into rate_hashes(hash_key, field, value, updated_at)
		values ($1, $2, $3, now())
		on conflict (hash_key, field) do update
		  set value = excluded.value, updated_at = now();
	`

	_, err := s.pool.Exec(ctx, q, key, field, value)
	return err
}

func (s *HashStore) GetAll(ctx context.Context, key string) (map[string]string, error) {
	const q = `select field, value from rate_hashes where hash_key = $1;`

	rows, err := s.pool.Query(ctx, q, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var field, value string
		if err = rows.Scan(&field, &value); err != nil {
			return nil, err
		}
		values[field] = value
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

type hashRow struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SetAll replaces the whole hash in one transaction.
func (s *HashStore) SetAll(ctx context.Context, key string, values map[string]string) error {
	payload := make([]hashRow, 0, len(values))
	for field, value := range values {
		payload = append(payload, hashRow{Field: field, Value: value})
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal hash %q: %w", key, err)
	}

	const deleteQ = `delete from rate_hashes where hash_key = $1;`
	const insertQ = `
		insert into rate_hashes(hash_key, field, value, updated_at)
		select $1, r.field, r.value, now()
		from json_to_recordset($2::json) as r(field text, value text);
	`

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, deleteQ, key); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err = tx.Exec(ctx, insertQ, key, json.RawMessage(payloadJSON)); err != nil {
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return err
	}
	return nil
}

func NewHashStore(pool *pgxpool.Pool) *HashStore {
	return &HashStore{pool: pool}
}
