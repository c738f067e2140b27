package runner_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"db2compare/pkg/catalog"
	"db2compare/pkg/report"
	. "db2compare/pkg/runner"
	"db2compare/pkg/schema"
)

// fakeProvider serves canned rows and lets individual categories fail.
type fakeProvider struct {
	name       string
	tables     []catalog.TableColumnRow
	procedures []catalog.ProcedureRow
	triggers   []catalog.TriggerRow
	functions  []catalog.FunctionRow
	views      []catalog.ViewRow
	errs       map[schema.Category]error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) TableColumns(context.Context) ([]catalog.TableColumnRow, error) {
	return f.tables, f.errs[schema.CategoryTable]
}

func (f *fakeProvider) Procedures(context.Context) ([]catalog.ProcedureRow, error) {
	return f.procedures, f.errs[schema.CategoryProcedure]
}

func (f *fakeProvider) Triggers(context.Context) ([]catalog.TriggerRow, error) {
	return f.triggers, f.errs[schema.CategoryTrigger]
}

func (f *fakeProvider) Functions(context.Context) ([]catalog.FunctionRow, error) {
	return f.functions, f.errs[schema.CategoryFunction]
}

func (f *fakeProvider) Views(context.Context) ([]catalog.ViewRow, error) {
	return f.views, f.errs[schema.CategoryView]
}

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func newRunner(t *testing.T, baseline, modified *fakeProvider) (*Runner, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	return New(Params{
		Baseline: baseline,
		Modified: modified,
		Excluded: schema.NewExclusion(nil),
		Sink:     report.NewSink(dir),
		Logger:   zap.NewNop(),
	}), dir
}

func TestRunCanonicalOrder(t *testing.T) {
	r, _ := newRunner(t, &fakeProvider{name: "baseline"}, &fakeProvider{name: "modified"})

	results := r.Run(context.Background())
	require.Len(t, results, len(schema.Categories()))
	for i, category := range schema.Categories() {
		require.Equal(t, category, results[i].Category)
		require.False(t, results[i].Failed())
	}
}

func TestRunDetectsDifferences(t *testing.T) {
	baseline := &fakeProvider{
		name: "baseline",
		procedures: []catalog.ProcedureRow{
			{Schema: ns("S"), Name: ns("P1"), Language: ns("SQL"), Text: ns("BEGIN END")},
		},
	}
	modified := &fakeProvider{name: "modified"}

	r, dir := newRunner(t, baseline, modified)
	results := r.Run(context.Background())

	var procResult report.CategoryResult
	for _, result := range results {
		if result.Category == schema.CategoryProcedure {
			procResult = result
		}
	}
	require.False(t, procResult.Failed())
	require.Len(t, procResult.Diff.Dropped, 1)
	require.Contains(t, procResult.Diff.Dropped, schema.NewObjectKey("S", "P1"))

	_, err := os.Stat(filepath.Join(dir, "procedures_dropped.log"))
	require.NoError(t, err)
}

func TestRunIsolatesCategoryFailure(t *testing.T) {
	baseline := &fakeProvider{
		name: "baseline",
		errs: map[schema.Category]error{
			schema.CategoryView: errors.New("SQLSTATE=42501 not authorized"),
		},
	}
	modified := &fakeProvider{name: "modified"}

	r, _ := newRunner(t, baseline, modified)
	results := r.Run(context.Background())

	for _, result := range results {
		if result.Category == schema.CategoryView {
			require.True(t, result.Failed())
			require.Contains(t, result.Err.Error(), "baseline")
			continue
		}
		require.False(t, result.Failed(), "category %s should not be affected", result.Category)
	}
}

func TestRunSurfacesIssues(t *testing.T) {
	baseline := &fakeProvider{
		name: "baseline",
		procedures: []catalog.ProcedureRow{
			{Name: ns("P1")}, // missing schema
			{Schema: ns("S"), Name: ns("P2"), Text: ns("BEGIN END")},
		},
	}
	modified := &fakeProvider{
		name: "modified",
		procedures: []catalog.ProcedureRow{
			{Schema: ns("S"), Name: ns("P2"), Text: ns("BEGIN END")},
		},
	}

	r, _ := newRunner(t, baseline, modified)
	results := r.Run(context.Background())

	for _, result := range results {
		if result.Category != schema.CategoryProcedure {
			continue
		}
		require.False(t, result.Failed())
		require.Len(t, result.Issues, 1)
		require.True(t, errors.Is(result.Issues[0].Err, schema.ErrMalformedRecord))
		require.False(t, result.Diff.HasChanges())
	}
}

func TestRunAppliesExclusions(t *testing.T) {
	baseline := &fakeProvider{
		name: "baseline",
		views: []catalog.ViewRow{
			{Schema: ns("SYSIBM"), Name: ns("SYSDUMMY1"), Text: ns("...")},
		},
	}
	modified := &fakeProvider{name: "modified"}

	dir := filepath.Join(t.TempDir(), "out")
	r := New(Params{
		Baseline: baseline,
		Modified: modified,
		Excluded: schema.NewExclusion([]string{"SYS%"}),
		Sink:     report.NewSink(dir),
		Logger:   zap.NewNop(),
	})

	results := r.Run(context.Background())
	for _, result := range results {
		if result.Category == schema.CategoryView {
			require.False(t, result.Failed())
			require.False(t, result.Diff.HasChanges())
		}
	}
}
