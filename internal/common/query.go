package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// QueryRows runs query and scans every row with scan. It never returns a nil slice on success.
func QueryRows[T any](ctx context.Context, db *sql.DB, scan func(RowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// NoRows turns sql.ErrNoRows into ErrRecordNotFound and passes everything else through constraints.
func NoRows(err error, constraints ConstraintErrors) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrRecordNotFound
	default:
		return constraints.Translate(err)
	}
}

// DeleteByID removes the row with id from table. Constraint violations go through constraints.
func DeleteByID(ctx context.Context, db *sql.DB, table string, id int, constraints ConstraintErrors) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return constraints.Translate(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// RequireRow returns ErrRecordNotFound unless table has a row with id.
func RequireRow(ctx context.Context, db *sql.DB, table string, id int) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)

	var found bool
	if err := db.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		return err
	}

	if !found {
		return ErrRecordNotFound
	}

	return nil
}

// IntPtr converts a nullable column into an optional int.
func IntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
