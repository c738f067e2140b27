package schema

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"db2compare/pkg/catalog"
)

// ErrMalformedRecord marks a raw catalog record that is missing a required
// identity field (schema or object name). The offending object is skipped and
// reported; normalization of the remaining records continues.
var ErrMalformedRecord = errors.New("record missing required identity field")

// Issue is one skipped object, surfaced in the run summary instead of being
// silently dropped.
type Issue struct {
	Category Category
	Err      error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %v", i.Category.Singular(), i.Err)
}

func malformed(category Category, format string, args ...any) Issue {
	return Issue{Category: category, Err: errors.Wrapf(ErrMalformedRecord, format, args...)}
}

// ident extracts a required identity field. Catalog NULLs and blank strings
// both count as missing.
func ident(ns sql.NullString) (string, bool) {
	if !ns.Valid {
		return "", false
	}
	s := strings.TrimSpace(ns.String)
	return s, s != ""
}

// normalizeText canonicalizes a routine or view body: line endings unified to
// LF, leading/trailing whitespace trimmed. No semantic SQL reformatting is
// done; after this the text is compared verbatim.
func normalizeText(ns sql.NullString) Value {
	if !ns.Valid {
		return Absent
	}
	s := strings.ReplaceAll(ns.String, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return String(strings.TrimSpace(s))
}

func isYes(ns sql.NullString) bool {
	return ns.Valid && strings.TrimSpace(ns.String) == "Y"
}

// NormalizeTables groups raw table/column rows into table entities keyed by
// schema-qualified name. A row missing its table identity is skipped; a row
// missing its column name poisons the whole table (the definition would be
// incomplete), which is then reported as unparsable.
func NormalizeTables(rows []catalog.TableColumnRow, excl *Exclusion) (Collection, []Issue) {
	var issues []Issue
	columns := make(map[ObjectKey][]ColumnDef)
	bad := make(map[ObjectKey]struct{})

	for _, r := range rows {
		schemaName, ok := ident(r.Schema)
		if !ok {
			issues = append(issues, malformed(CategoryTable, "table column row missing schema (table %q, column %q)",
				strings.TrimSpace(r.Table.String), strings.TrimSpace(r.Column.String)))
			continue
		}
		tableName, ok := ident(r.Table)
		if !ok {
			issues = append(issues, malformed(CategoryTable, "table column row missing table name (schema %q, column %q)",
				schemaName, strings.TrimSpace(r.Column.String)))
			continue
		}
		if excl.Match(schemaName) {
			continue
		}

		key := NewObjectKey(schemaName, tableName)
		colName, ok := ident(r.Column)
		if !ok {
			if _, seen := bad[key]; !seen {
				bad[key] = struct{}{}
				issues = append(issues, malformed(CategoryTable, "table %s has a column row missing its name", key))
			}
			continue
		}

		generated := strings.TrimSpace(r.Generated.String)
		if generated == "" {
			generated = "N"
		}

		columns[key] = append(columns[key], ColumnDef{
			Name:      colName,
			Position:  r.ColNo,
			Type:      strings.TrimSpace(r.TypeName.String),
			Length:    r.Length,
			Scale:     r.Scale,
			Nullable:  isYes(r.Nulls),
			Default:   NullString(r.Default),
			Identity:  isYes(r.Identity),
			Generated: generated,
		})
	}

	out := make(Collection, len(columns))
	for key, cols := range columns {
		if _, poisoned := bad[key]; poisoned {
			continue
		}
		sort.SliceStable(cols, func(i, j int) bool { return cols[i].Position < cols[j].Position })
		out[key] = newTableEntity(key, cols)
	}
	return out, issues
}

// NormalizeProcedures canonicalizes raw procedure rows.
func NormalizeProcedures(rows []catalog.ProcedureRow, excl *Exclusion) (Collection, []Issue) {
	var issues []Issue
	out := make(Collection, len(rows))

	for _, r := range rows {
		key, issue, ok := objectKey(CategoryProcedure, r.Schema, r.Name, excl)
		if !ok {
			if issue != nil {
				issues = append(issues, *issue)
			}
			continue
		}
		out[key] = newEntity(key, CategoryProcedure, []Value{
			NullString(r.Language),
			Int(r.ParamCount),
			NullString(r.Deterministic),
			NullString(r.NullCall),
			Int(r.ResultSets),
			normalizeText(r.Text),
		})
	}
	return out, issues
}

// NormalizeTriggers canonicalizes raw trigger rows.
func NormalizeTriggers(rows []catalog.TriggerRow, excl *Exclusion) (Collection, []Issue) {
	var issues []Issue
	out := make(Collection, len(rows))

	for _, r := range rows {
		key, issue, ok := objectKey(CategoryTrigger, r.Schema, r.Name, excl)
		if !ok {
			if issue != nil {
				issues = append(issues, *issue)
			}
			continue
		}

		tableRef := Absent
		if ts, ok := ident(r.TableSchema); ok {
			if tn, ok := ident(r.TableName); ok {
				tableRef = String(NewObjectKey(ts, tn).String())
			}
		}

		out[key] = newEntity(key, CategoryTrigger, []Value{
			tableRef,
			NullString(r.TrigTime),
			NullString(r.TrigEvent),
			NullString(r.Granularity),
			NullString(r.Valid),
			NullString(r.Enabled),
			normalizeText(r.Text),
		})
	}
	return out, issues
}

// NormalizeFunctions canonicalizes raw function rows.
func NormalizeFunctions(rows []catalog.FunctionRow, excl *Exclusion) (Collection, []Issue) {
	var issues []Issue
	out := make(Collection, len(rows))

	for _, r := range rows {
		key, issue, ok := objectKey(CategoryFunction, r.Schema, r.Name, excl)
		if !ok {
			if issue != nil {
				issues = append(issues, *issue)
			}
			continue
		}
		out[key] = newEntity(key, CategoryFunction, []Value{
			NullString(r.ReturnType),
			Int(r.ParamCount),
			NullString(r.Language),
			NullString(r.Deterministic),
			NullString(r.NullCall),
			normalizeText(r.Text),
		})
	}
	return out, issues
}

// NormalizeViews canonicalizes raw view rows.
func NormalizeViews(rows []catalog.ViewRow, excl *Exclusion) (Collection, []Issue) {
	var issues []Issue
	out := make(Collection, len(rows))

	for _, r := range rows {
		key, issue, ok := objectKey(CategoryView, r.Schema, r.Name, excl)
		if !ok {
			if issue != nil {
				issues = append(issues, *issue)
			}
			continue
		}
		out[key] = newEntity(key, CategoryView, []Value{
			normalizeText(r.Text),
			NullString(r.Valid),
			NullString(r.CheckOption),
			NullString(r.ReadOnly),
			NullString(r.Remarks),
		})
	}
	return out, issues
}

// objectKey validates and normalizes an object's identity. The second return
// is non-nil when the record is malformed; ok is false for both malformed and
// excluded records.
func objectKey(category Category, schemaCol, nameCol sql.NullString, excl *Exclusion) (ObjectKey, *Issue, bool) {
	schemaName, ok := ident(schemaCol)
	if !ok {
		issue := malformed(category, "%s row missing schema (name %q)", category.Singular(), strings.TrimSpace(nameCol.String))
		return ObjectKey{}, &issue, false
	}
	name, ok := ident(nameCol)
	if !ok {
		issue := malformed(category, "%s row missing name (schema %q)", category.Singular(), schemaName)
		return ObjectKey{}, &issue, false
	}
	if excl.Match(schemaName) {
		return ObjectKey{}, nil, false
	}
	return NewObjectKey(schemaName, name), nil, true
}
