// Package sqlsource adapts a single database/sql table to the source
// contract. The adapter is driver-agnostic; examples and tests pair it with
// modernc.org/sqlite.
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/source"
)

// Source maps one table's rows to source.Record values. Column names come
// from the entity schema so the adapter never selects columns the renderers
// do not know about.
type Source struct {
	db       *sql.DB
	table    string
	columns  []string
	idColumn string
}

var _ source.QuerySource = (*Source)(nil)

// New builds a table adapter. The schema's field names double as column
// names; an "id" field is required and serves as the lookup key.
func New(db *sql.DB, table string, schema entity.Schema) (*Source, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlsource: db is required")
	}
	table = strings.TrimSpace(table)
	if table == "" {
		return nil, fmt.Errorf("sqlsource: table name is required")
	}
	if len(schema.Fields) == 0 {
		return nil, fmt.Errorf("sqlsource: schema %q declares no fields", schema.Name)
	}

	columns := make([]string, 0, len(schema.Fields))
	hasID := false
	for _, field := range schema.Fields {
		if field.Type == entity.TypeReverseRelation {
			continue
		}
		if field.Name == "id" {
			hasID = true
		}
		columns = append(columns, field.Name)
	}
	if !hasID {
		return nil, fmt.Errorf("sqlsource: schema %q has no id field", schema.Name)
	}

	return &Source{db: db, table: table, columns: columns, idColumn: "id"}, nil
}

func (s *Source) All(ctx context.Context) ([]source.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		s.columnList(), quoteIdent(s.table), quoteIdent(s.idColumn))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlsource all: %w", err)
	}
	defer rows.Close()

	var records []source.Record
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlsource all: %w", err)
	}
	return records, nil
}

func (s *Source) Get(ctx context.Context, id string) (source.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		s.columnList(), quoteIdent(s.table), quoteIdent(s.idColumn))

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("sqlsource get %q: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("sqlsource get %q: %w", id, err)
		}
		return nil, fmt.Errorf("sqlsource get %q: %w", id, source.ErrNotFound)
	}
	return s.scanRecord(rows)
}

func (s *Source) Insert(ctx context.Context, record source.Record) (source.Record, error) {
	columns, args := s.writableValues(record)
	if len(columns) == 0 {
		return nil, fmt.Errorf("sqlsource insert: record carries no known columns")
	}

	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quoteIdent(column)
		marks[i] = "?"
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(s.table), strings.Join(quoted, ", "), strings.Join(marks, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlsource insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlsource insert: read generated id: %w", err)
	}
	return s.Get(ctx, fmt.Sprint(id))
}

func (s *Source) Update(ctx context.Context, id string, record source.Record) (source.Record, error) {
	columns, args := s.writableValues(record)
	if len(columns) == 0 {
		return s.Get(ctx, id)
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = quoteIdent(column) + " = ?"
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quoteIdent(s.table), strings.Join(assignments, ", "), quoteIdent(s.idColumn))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlsource update %q: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlsource update %q: %w", id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("sqlsource update %q: %w", id, source.ErrNotFound)
	}
	return s.Get(ctx, id)
}

func (s *Source) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
		quoteIdent(s.table), quoteIdent(s.idColumn))

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("sqlsource delete %q: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlsource delete %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlsource delete %q: %w", id, source.ErrNotFound)
	}
	return nil
}

func (s *Source) columnList() string {
	quoted := make([]string, len(s.columns))
	for i, column := range s.columns {
		quoted[i] = quoteIdent(column)
	}
	return strings.Join(quoted, ", ")
}

// writableValues extracts record values for known non-id columns in a
// deterministic order so generated SQL is stable.
func (s *Source) writableValues(record source.Record) ([]string, []any) {
	known := make(map[string]struct{}, len(s.columns))
	for _, column := range s.columns {
		known[column] = struct{}{}
	}

	names := make([]string, 0, len(record))
	for name := range record {
		if name == s.idColumn || name == "pk" {
			continue
		}
		if _, ok := known[name]; !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = record[name]
	}
	return names, args
}

func (s *Source) scanRecord(rows *sql.Rows) (source.Record, error) {
	values := make([]any, len(s.columns))
	targets := make([]any, len(s.columns))
	for i := range values {
		targets[i] = &values[i]
	}
	if err := rows.Scan(targets...); err != nil {
		return nil, fmt.Errorf("sqlsource scan: %w", err)
	}

	record := make(source.Record, len(s.columns))
	for i, column := range s.columns {
		record[column] = normalizeValue(values[i])
	}
	return record, nil
}

// normalizeValue keeps records display-friendly: byte slices become strings,
// everything else passes through as the driver returned it.
func normalizeValue(value any) any {
	if raw, ok := value.([]byte); ok {
		return string(raw)
	}
	return value
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
