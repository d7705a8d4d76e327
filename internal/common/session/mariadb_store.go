package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const createStorageTable = `
	CREATE TABLE IF NOT EXISTS Portal_Local_Storage (
		Namespace  CHAR(64)     NOT NULL,
		Item_Key   VARCHAR(64)  NOT NULL,
		Item_Value MEDIUMTEXT   NOT NULL,
		Updated_At DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (Namespace, Item_Key),
		INDEX idx_updated_at (Updated_At)
	)
`

// MariaDBStore menyimpan local storage di tabel Portal_Local_Storage.
type MariaDBStore struct {
	DB *sql.DB
}

func NewMariaDBStore(db *sql.DB) *MariaDBStore {
	return &MariaDBStore{DB: db}
}

// EnsureSchema membuat tabel bila belum ada.
func (s *MariaDBStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, createStorageTable); err != nil {
		return fmt.Errorf("create Portal_Local_Storage: %w", err)
	}
	return nil
}

func (s *MariaDBStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	var v string
	err := s.DB.QueryRowContext(ctx,
		"SELECT Item_Value FROM Portal_Local_Storage WHERE Namespace = ? AND Item_Key = ?",
		ns, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *MariaDBStore) Set(ctx context.Context, ns, key, value string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO Portal_Local_Storage (Namespace, Item_Key, Item_Value, Updated_At)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE Item_Value = VALUES(Item_Value), Updated_At = NOW()`,
		ns, key, value)
	return err
}

func (s *MariaDBStore) Remove(ctx context.Context, ns, key string) error {
	_, err := s.DB.ExecContext(ctx,
		"DELETE FROM Portal_Local_Storage WHERE Namespace = ? AND Item_Key = ?", ns, key)
	return err
}

func (s *MariaDBStore) Clear(ctx context.Context, ns string) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM Portal_Local_Storage WHERE Namespace = ?", ns)
	return err
}

// Purge menghapus namespace yang tidak disentuh sejak olderThan.
func (s *MariaDBStore) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM Portal_Local_Storage
		WHERE Namespace IN (
			SELECT Namespace FROM (
				SELECT Namespace FROM Portal_Local_Storage
				GROUP BY Namespace
				HAVING MAX(Updated_At) < ?
			) AS stale
		)`, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
