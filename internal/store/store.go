// Package store persists the Register of Information in PostgreSQL.
// Every write goes through the schema validator first; a row that fails
// validation or referential integrity is never persisted, not even
// partially.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"opendora/internal/schema"
)

// Common errors
var (
	// ErrRowRejected marks an insert refused because the row failed
	// validation; the accompanying ValidationResult lists every violation.
	ErrRowRejected = errors.New("row rejected by validation")
	// ErrRowNotFound is returned by GetRow when no row matches the key.
	ErrRowNotFound = errors.New("row not found")
)

// Store wraps the register database.
type Store struct {
	db *sqlx.DB
}

// NewStore opens a connection to the register database.
func NewStore(connString string) (*Store, error) {
	db, err := sqlx.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if pingErr := db.Ping(); pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}
	return &Store{db: db}, nil
}

// NewStoreFromDB constructs a Store from an existing *sql.DB. Useful for tests.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: sqlx.NewDb(db, "postgres")}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitDB creates the register schema, all tables and the submission log.
func (s *Store) InitDB(ctx context.Context) error {
	stmts, err := schemaSQL()
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute DDL: %w", err)
		}
	}
	return nil
}

// Exists reports whether a row with the given key columns exists in the
// identified table. It satisfies schema.LookupFunc.
func (s *Store) Exists(ctx context.Context, tableID string, key schema.Row) (bool, error) {
	return existsIn(ctx, s.db, tableID, key)
}

func existsIn(ctx context.Context, q sqlx.QueryerContext, tableID string, key schema.Row) (bool, error) {
	t, err := schema.Describe(tableID)
	if err != nil {
		return false, err
	}
	cols := make([]string, 0, len(key))
	for col := range key {
		if t.Column(col) == nil {
			return false, fmt.Errorf("existence check on %s: unknown key column %q", tableID, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	conds := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		conds[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args[i] = key[col]
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)",
		physicalTable(tableID), strings.Join(conds, " AND "))

	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, query, args...); err != nil {
		return false, fmt.Errorf("existence check on %s: %w", tableID, err)
	}
	return exists, nil
}

// insertSQL builds the INSERT statement covering every column of the
// table in schema order, plus a binder mapping a normalized row to
// arguments. Empty optional values bind as NULL.
func insertSQL(t *schema.Table) (string, func(schema.Row) []any) {
	names := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		physicalTable(t.ID), strings.Join(names, ", "), strings.Join(marks, ", "))

	bind := func(row schema.Row) []any {
		args := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			if v := row[c.Name]; v != "" {
				args[i] = v
			}
		}
		return args
	}
	return query, bind
}

// InsertRow validates the row, checks its references against the
// current register content and persists it. On validation failure the
// returned result carries every violation, the error wraps
// ErrRowRejected and nothing is written.
func (s *Store) InsertRow(ctx context.Context, tableID string, row schema.Row) (schema.ValidationResult, error) {
	return insertRow(ctx, s.db, tableID, row)
}

func insertRow(ctx context.Context, q sqlx.ExtContext, tableID string, row schema.Row) (schema.ValidationResult, error) {
	t, err := schema.Describe(tableID)
	if err != nil {
		return schema.ValidationResult{}, err
	}

	norm, err := schema.NormalizeRow(tableID, row)
	if err != nil {
		return schema.ValidationResult{}, err
	}

	res, err := schema.ValidateRow(tableID, norm)
	if err != nil {
		return res, err
	}
	if !res.OK() {
		return res, fmt.Errorf("%w: %s", ErrRowRejected, tableID)
	}

	lookup := func(ctx context.Context, refTable string, key schema.Row) (bool, error) {
		return existsIn(ctx, q, refTable, key)
	}
	refs, err := schema.CheckReferentialIntegrity(ctx, tableID, norm, lookup)
	if err != nil {
		return refs, err
	}
	if !refs.OK() {
		return refs, fmt.Errorf("%w: %s", ErrRowRejected, tableID)
	}

	query, bind := insertSQL(t)
	if _, err := q.ExecContext(ctx, query, bind(norm)...); err != nil {
		return res, fmt.Errorf("failed to insert into %s: %w", tableID, err)
	}
	return res, nil
}

// RejectedRow reports one row of a batch that was not persisted.
type RejectedRow struct {
	Index  int
	Result schema.ValidationResult
}

// SubmissionReport summarizes one batch import.
type SubmissionReport struct {
	SubmissionID string
	TableID      string
	Accepted     int
	Rejected     []RejectedRow
}

// ImportBatch validates and inserts a batch of rows for one table in a
// single transaction, so rows may reference earlier rows of the same
// batch. Invalid rows are skipped and reported; accepted rows commit
// together with a submission log entry. A database failure rolls back
// the whole batch.
func (s *Store) ImportBatch(ctx context.Context, tableID string, rows []schema.Row) (*SubmissionReport, error) {
	if _, err := schema.Describe(tableID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	report := &SubmissionReport{
		SubmissionID: uuid.New().String(),
		TableID:      tableID,
	}
	for i, row := range rows {
		res, err := insertRow(ctx, tx, tableID, row)
		if err != nil {
			if errors.Is(err, ErrRowRejected) {
				report.Rejected = append(report.Rejected, RejectedRow{Index: i, Result: res})
				continue
			}
			return nil, err
		}
		report.Accepted++
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO `+pgSchema+`.submissions (submission_id, table_id, accepted, rejected) VALUES ($1, $2, $3, $4)`,
		report.SubmissionID, tableID, report.Accepted, len(report.Rejected)); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}
	return report, nil
}

// MarkEntityDeleted records the logical removal of a financial entity
// from the register. Rows are never physically deleted; the deletion
// date marks the end of the entity's presence in the reporting scope.
func (s *Store) MarkEntityDeleted(ctx context.Context, lei string, deletionDate time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE `+physicalTable(schema.TableRegisterEntity)+` SET deletion_date = $1 WHERE lei = $2`,
		deletionDate.Format(schema.DateLayout), lei)
	if err != nil {
		return fmt.Errorf("failed to mark entity deleted: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no register entity with lei %s", lei)
	}
	return nil
}

// CountRows returns the number of rows currently held for a table.
func (s *Store) CountRows(ctx context.Context, tableID string) (int, error) {
	if _, err := schema.Describe(tableID); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+physicalTable(tableID)); err != nil {
		return 0, fmt.Errorf("count on %s: %w", tableID, err)
	}
	return n, nil
}

// GetRow fetches a single row by its full primary key, converted back
// to the text representation the validator accepts. Every primary-key
// column of the table must be present in the key.
func (s *Store) GetRow(ctx context.Context, tableID string, key schema.Row) (schema.Row, error) {
	t, err := schema.Describe(tableID)
	if err != nil {
		return nil, err
	}

	pk := t.PrimaryKey()
	if len(key) != len(pk) {
		return nil, fmt.Errorf("key for %s must name exactly the primary-key columns %v", tableID, pk)
	}
	args := make([]any, len(pk))
	conds := make([]string, len(pk))
	for i, col := range pk {
		v, ok := key[col]
		if !ok {
			return nil, fmt.Errorf("key for %s is missing primary-key column %q", tableID, col)
		}
		conds[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args[i] = v
	}

	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(names, ", "), physicalTable(t.ID), strings.Join(conds, " AND "))

	raw := map[string]any{}
	if err := s.db.QueryRowxContext(ctx, query, args...).MapScan(raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %v", ErrRowNotFound, tableID, args)
		}
		return nil, fmt.Errorf("get on %s: %w", tableID, err)
	}
	return rowFromScan(t, raw), nil
}

// ListRows returns the persisted rows of a table in primary-key order,
// converted back to the text representation the validator accepts.
func (s *Store) ListRows(ctx context.Context, tableID string) ([]schema.Row, error) {
	t, err := schema.Describe(tableID)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(names, ", "), physicalTable(t.ID), strings.Join(t.PrimaryKey(), ", "))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list on %s: %w", tableID, err)
	}
	defer rows.Close()

	var out []schema.Row
	for rows.Next() {
		raw := map[string]any{}
		if err := rows.MapScan(raw); err != nil {
			return nil, fmt.Errorf("scan on %s: %w", tableID, err)
		}
		out = append(out, rowFromScan(t, raw))
	}
	return out, rows.Err()
}

// rowFromScan converts scanned database values back to the text form of
// a submission, so an exported row validates and round-trips.
func rowFromScan(t *schema.Table, raw map[string]any) schema.Row {
	row := schema.Row{}
	for i := range t.Columns {
		c := &t.Columns[i]
		v, ok := raw[c.Name]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []byte:
			row[c.Name] = strings.TrimSpace(string(val))
		case string:
			row[c.Name] = strings.TrimSpace(val)
		case time.Time:
			row[c.Name] = val.Format(schema.DateLayout)
		case bool:
			row[c.Name] = fmt.Sprintf("%t", val)
		case int64:
			row[c.Name] = fmt.Sprintf("%d", val)
		default:
			row[c.Name] = fmt.Sprintf("%v", val)
		}
	}
	return row
}
