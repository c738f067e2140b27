package schema

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"db2compare/pkg/compare"
)

const (
	// CategoryTable compares base tables and their column definitions
	CategoryTable Category = "tables"
	// CategoryProcedure compares stored procedures
	CategoryProcedure Category = "procedures"
	// CategoryTrigger compares triggers
	CategoryTrigger Category = "triggers"
	// CategoryFunction compares functions
	CategoryFunction Category = "functions"
	// CategoryView compares views
	CategoryView Category = "views"
)

type (
	// Category identifies one class of database objects. Objects are only ever
	// compared within their own category.
	Category string

	// ObjectKey is the schema-qualified, case-normalized identity of an object
	// within a category. It is unique per category per database snapshot.
	ObjectKey struct {
		Schema string
		Name   string
	}

	// Value is one canonical attribute value. The zero Value is the "absent"
	// sentinel, which is distinct from an empty string so "no default" and
	// "default is ''" never collide.
	Value struct {
		Valid bool
		Str   string
	}

	// Attr is one named attribute of a canonical entity. The attribute set and
	// its order are fixed per category.
	Attr struct {
		Name  string
		Value Value
	}

	// ColumnDef is one column of a table entity. Column order is semantically
	// significant: columns are compared positionally, not by name.
	ColumnDef struct {
		Name      string
		Position  int32
		Type      string
		Length    int32
		Scale     int32
		Nullable  bool
		Default   Value
		Identity  bool
		Generated string // "N", "A" (always), "D" (by default)
	}

	// Entity is the normalized, comparison-ready representation of one
	// database object. Entities are immutable once built: each comparison run
	// produces fresh snapshots which are discarded after diffing.
	Entity struct {
		Key      ObjectKey
		Category Category
		Attrs    []Attr
		// Columns is populated for table entities only and is the source the
		// columns[i].* attributes were flattened from.
		Columns []ColumnDef
	}

	// Collection maps every object of one category in one database snapshot
	// to its canonical entity.
	Collection map[ObjectKey]*Entity
)

// Categories returns all object categories in canonical order.
func Categories() []Category {
	return []Category{CategoryTable, CategoryProcedure, CategoryTrigger, CategoryFunction, CategoryView}
}

func (c Category) String() string { return string(c) }

// Singular returns the category name for a single object ("table", "view").
func (c Category) Singular() string {
	return strings.TrimSuffix(string(c), "s")
}

// NewObjectKey builds a key from raw schema and object names, trimming
// whitespace and upper-casing both (DB2 stores catalog identifiers uppercase).
func NewObjectKey(schema, name string) ObjectKey {
	return ObjectKey{
		Schema: strings.ToUpper(strings.TrimSpace(schema)),
		Name:   strings.ToUpper(strings.TrimSpace(name)),
	}
}

func (k ObjectKey) String() string {
	return k.Schema + "." + k.Name
}

// Absent is the sentinel for attributes with no source value.
var Absent = Value{}

// String wraps a concrete string value.
func String(s string) Value {
	return Value{Valid: true, Str: s}
}

// Int wraps an integer value.
func Int(n int32) Value {
	return Value{Valid: true, Str: strconv.FormatInt(int64(n), 10)}
}

// Bool wraps a boolean as the catalog's Y/N convention.
func Bool(b bool) Value {
	if b {
		return Value{Valid: true, Str: "Y"}
	}
	return Value{Valid: true, Str: "N"}
}

// NullString wraps a nullable string column, trimming trailing catalog
// padding. NULL maps to Absent.
func NullString(ns sql.NullString) Value {
	if !ns.Valid {
		return Absent
	}
	return String(strings.TrimSpace(ns.String))
}

func (v Value) String() string {
	if !v.Valid {
		return "<none>"
	}
	return v.Str
}

// attributeNames is the fixed attribute set per category, in canonical
// comparison order. Tables are not listed: their attribute set is the ordered
// column sequence flattened through columnFields.
var attributeNames = map[Category][]string{
	CategoryProcedure: {"language", "param_count", "deterministic", "null_call", "result_sets", "text"},
	CategoryTrigger:   {"table", "timing", "event", "granularity", "valid", "enabled", "text"},
	CategoryFunction:  {"return_type", "param_count", "language", "deterministic", "null_call", "text"},
	CategoryView:      {"text", "valid", "check_option", "read_only", "remarks"},
}

// columnFields are the per-column leaf attributes of a table entity, in
// canonical order.
var columnFields = []string{"name", "type", "length", "scale", "nullable", "default", "identity", "generated"}

// AttributeNames returns the canonical attribute names for a non-table
// category.
func AttributeNames(c Category) []string {
	return attributeNames[c]
}

// ColumnFieldCount returns how many leaf attributes each table column
// contributes.
func ColumnFieldCount() int {
	return len(columnFields)
}

// ColumnPath addresses one leaf attribute of the column at the given ordinal,
// e.g. "columns[2].type".
func ColumnPath(ordinal int, field string) string {
	return fmt.Sprintf("columns[%d].%s", ordinal, field)
}

// Attr returns the value of the named attribute, or (Absent, false) when the
// entity doesn't carry it.
func (e *Entity) Attr(name string) (Value, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Absent, false
}

// Equal reports whether two entities are structurally identical.
func (e *Entity) Equal(other *Entity) bool {
	return e.Key == other.Key &&
		e.Category == other.Category &&
		compare.Slices(e.Attrs, other.Attrs, func(a, b Attr) bool { return a == b })
}

// Equal reports whether two column definitions are identical, position
// included.
func (c ColumnDef) Equal(other ColumnDef) bool {
	return c == other
}

// attrs flattens a column definition into its leaf attributes at the given
// ordinal.
func (c ColumnDef) attrs(ordinal int) []Attr {
	return []Attr{
		{Name: ColumnPath(ordinal, "name"), Value: String(c.Name)},
		{Name: ColumnPath(ordinal, "type"), Value: String(c.Type)},
		{Name: ColumnPath(ordinal, "length"), Value: Int(c.Length)},
		{Name: ColumnPath(ordinal, "scale"), Value: Int(c.Scale)},
		{Name: ColumnPath(ordinal, "nullable"), Value: Bool(c.Nullable)},
		{Name: ColumnPath(ordinal, "default"), Value: c.Default},
		{Name: ColumnPath(ordinal, "identity"), Value: Bool(c.Identity)},
		{Name: ColumnPath(ordinal, "generated"), Value: String(c.Generated)},
	}
}

// newEntity builds an entity with the category's full attribute set. values
// must line up with AttributeNames(category); this is the normalizer's
// contract with the differ.
func newEntity(key ObjectKey, category Category, values []Value) *Entity {
	names := attributeNames[category]
	attrs := make([]Attr, len(names))
	for i, name := range names {
		attrs[i] = Attr{Name: name, Value: values[i]}
	}
	return &Entity{Key: key, Category: category, Attrs: attrs}
}

// newTableEntity builds a table entity from its ordered column sequence.
func newTableEntity(key ObjectKey, columns []ColumnDef) *Entity {
	attrs := make([]Attr, 0, len(columns)*len(columnFields))
	for i, col := range columns {
		attrs = append(attrs, col.attrs(i)...)
	}
	return &Entity{Key: key, Category: CategoryTable, Attrs: attrs, Columns: columns}
}
