// Package report renders category diffs into the per-category output files
// and the final run summary. The layout is a presentation concern only; every
// field of a CategoryDiff is rendered losslessly.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"db2compare/pkg/consts"
	"db2compare/pkg/schema"
	"db2compare/pkg/schemadiff"
)

// Sink writes the four logical views of each category diff (summary, new,
// dropped, modified) into the output directory.
type Sink struct {
	dir string
}

// NewSink returns a sink writing into dir. The directory is created on first
// write.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// WriteCategory persists one category diff. The summary file is always
// written; the detail files only when they have content, matching the
// long-standing output layout.
func (s *Sink) WriteCategory(diff *schemadiff.CategoryDiff) error {
	if err := os.MkdirAll(s.dir, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", s.dir)
	}

	views := []struct {
		suffix string
		render func(io.Writer, *schemadiff.CategoryDiff) error
		skip   bool
	}{
		{suffix: "summary", render: RenderSummary},
		{suffix: "new", render: RenderNew, skip: len(diff.New) == 0},
		{suffix: "dropped", render: RenderDropped, skip: len(diff.Dropped) == 0},
		{suffix: "modified", render: RenderModified, skip: len(diff.Modified) == 0},
	}

	for _, v := range views {
		if v.skip {
			continue
		}
		var buf bytes.Buffer
		if err := v.render(&buf, diff); err != nil {
			return err
		}
		path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.log", diff.Category, v.suffix))
		if err := os.WriteFile(path, buf.Bytes(), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}

// RenderSummary writes the per-category counts and the names of every
// affected object.
func RenderSummary(w io.Writer, diff *schemadiff.CategoryDiff) error {
	added, dropped, modified := diff.Counts()
	fmt.Fprintf(w, "=== %s Comparison Summary ===\n", title(diff.Category.Singular()))
	fmt.Fprintf(w, "New %s: %d\n", diff.Category, added)
	fmt.Fprintf(w, "Dropped %s: %d\n", diff.Category, dropped)
	fmt.Fprintf(w, "Modified %s: %d\n", diff.Category, modified)

	writeNameList(w, "New "+title(string(diff.Category)), sortedKeys(diff.New))
	writeNameList(w, "Dropped "+title(string(diff.Category)), sortedKeys(diff.Dropped))
	writeNameList(w, "Modified "+title(string(diff.Category)), sortedKeys(diff.Modified))
	return nil
}

// RenderNew writes the full definition of every object only present in the
// modified database.
func RenderNew(w io.Writer, diff *schemadiff.CategoryDiff) error {
	return renderEntities(w, "New "+title(string(diff.Category)), diff.New)
}

// RenderDropped writes the full definition of every object only present in
// the baseline database.
func RenderDropped(w io.Writer, diff *schemadiff.CategoryDiff) error {
	return renderEntities(w, "Dropped "+title(string(diff.Category)), diff.Dropped)
}

// RenderModified writes, per modified object, both definitions and the
// per-field changes with their old and new values.
func RenderModified(w io.Writer, diff *schemadiff.CategoryDiff) error {
	fmt.Fprintf(w, "=== Modified %s ===\n", title(string(diff.Category)))
	for _, key := range sortedKeys(diff.Modified) {
		fmt.Fprintf(w, "\n%s:\n", key)
		fmt.Fprintf(w, "  Changes:\n")
		for _, change := range diff.Modified[key] {
			if isTextPath(change.Path) {
				fmt.Fprintf(w, "    * %s changed\n", change.Path)
				fmt.Fprintf(w, "      From:\n%s\n", indent(change.Baseline.String(), "        "))
				fmt.Fprintf(w, "      To:\n%s\n", indent(change.Modified.String(), "        "))
				continue
			}
			fmt.Fprintf(w, "    * %s: %s -> %s\n", change.Path, change.Baseline, change.Modified)
		}
	}
	return nil
}

func renderEntities(w io.Writer, header string, entities map[schema.ObjectKey]*schema.Entity) error {
	fmt.Fprintf(w, "=== %s ===\n", header)
	for _, key := range sortedKeys(entities) {
		fmt.Fprintf(w, "\n%s:\n", key)
		writeDefinition(w, entities[key])
	}
	return nil
}

// writeDefinition renders one entity the way a DBA would read it: tables as
// column definition lines, everything else as attribute lines with the body
// text last.
func writeDefinition(w io.Writer, e *schema.Entity) {
	if e.Category == schema.CategoryTable {
		for _, col := range e.Columns {
			writeColumn(w, col)
		}
		return
	}

	for _, a := range e.Attrs {
		if a.Name == "text" {
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", a.Name, a.Value)
	}
	if text, ok := e.Attr("text"); ok && text.Valid {
		fmt.Fprintf(w, "\n  Definition:\n%s\n", text.Str)
	}
}

func writeColumn(w io.Writer, col schema.ColumnDef) {
	fmt.Fprintf(w, "  %s %s", col.Name, col.Type)
	if col.Length > 0 {
		fmt.Fprintf(w, "(%d", col.Length)
		if col.Scale > 0 {
			fmt.Fprintf(w, ",%d", col.Scale)
		}
		fmt.Fprint(w, ")")
	}
	if col.Nullable {
		fmt.Fprint(w, " NULL")
	} else {
		fmt.Fprint(w, " NOT NULL")
	}
	if col.Default.Valid {
		fmt.Fprintf(w, " DEFAULT %s", col.Default.Str)
	}
	if col.Identity {
		fmt.Fprint(w, " GENERATED ALWAYS AS IDENTITY")
	} else if col.Generated == "A" {
		fmt.Fprint(w, " GENERATED ALWAYS")
	} else if col.Generated == "D" {
		fmt.Fprint(w, " GENERATED BY DEFAULT")
	}
	fmt.Fprintln(w)
}

func writeNameList(w io.Writer, header string, keys []schema.ObjectKey) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", header)
	for _, key := range keys {
		fmt.Fprintf(w, "  %s\n", key)
	}
}

// isTextPath reports whether the path addresses an opaque body attribute,
// whose full old/new values are rendered in the definition files instead of
// inline.
func isTextPath(path string) bool {
	return path == "text"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func sortedKeys[V any](m map[schema.ObjectKey]V) []schema.ObjectKey {
	keys := make([]schema.ObjectKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
