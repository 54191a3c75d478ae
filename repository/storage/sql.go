package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/micromarket/repository/tx"
)

type SQL struct {
	conn      *sqlx.DB
	txRepo    txrepo.TxRepository
	namespace string
}

// NewSQLRepository returns a Repository backed by the client_storage table.
// namespace separates clients sharing one database.
func NewSQLRepository(conn *sqlx.DB, txRepo txrepo.TxRepository, namespace string) *SQL {
	return &SQL{conn: conn, txRepo: txRepo, namespace: namespace}
}

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS client_storage (
	namespace VARCHAR(64) NOT NULL,
	storage_key VARCHAR(64) NOT NULL,
	storage_value TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	PRIMARY KEY (namespace, storage_key)
)`
	upsertQuery = `INSERT INTO client_storage (namespace, storage_key, storage_value, updated_at) VALUES (?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value), updated_at = NOW()`
	selectQuery = `SELECT storage_key, storage_value FROM client_storage WHERE namespace = ? AND storage_key IN (?)`
	deleteQuery = `DELETE FROM client_storage WHERE namespace = ? AND storage_key IN (?)`
)

type row struct {
	Key   string `db:"storage_key"`
	Value string `db:"storage_value"`
}

// EnsureSchema creates the storage table when missing.
func (s *SQL) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, createTableQuery)
	return err
}

func (s *SQL) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(selectQuery, s.namespace, keys)
	if err != nil {
		return nil, err
	}
	var rows []row
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

func (s *SQL) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		for k, v := range values {
			if _, err := tx.ExecContext(ctx, upsertQuery, s.namespace, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQL) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(deleteQuery, s.namespace, keys)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	return err
}
