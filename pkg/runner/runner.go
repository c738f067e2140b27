// Package runner orchestrates a comparison run: for each object category it
// fetches raw metadata from both databases, normalizes, diffs and hands the
// result to the report sink. The five categories are independent units of
// work with no shared mutable state; a failure in one never blocks or
// corrupts the others.
package runner

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"db2compare/pkg/catalog"
	"db2compare/pkg/report"
	"db2compare/pkg/schema"
	"db2compare/pkg/schemadiff"
)

type (
	// Provider supplies raw catalog metadata for one database. It is
	// implemented by catalog.Client and by test fakes.
	Provider interface {
		Name() string
		TableColumns(ctx context.Context) ([]catalog.TableColumnRow, error)
		Procedures(ctx context.Context) ([]catalog.ProcedureRow, error)
		Triggers(ctx context.Context) ([]catalog.TriggerRow, error)
		Functions(ctx context.Context) ([]catalog.FunctionRow, error)
		Views(ctx context.Context) ([]catalog.ViewRow, error)
	}

	// Params collects the collaborators a Runner needs.
	Params struct {
		Baseline Provider
		Modified Provider
		Excluded *schema.Exclusion
		Sink     *report.Sink
		Logger   *zap.Logger
	}

	// Runner compares the two configured databases category by category.
	Runner struct {
		baseline Provider
		modified Provider
		excluded *schema.Exclusion
		sink     *report.Sink
		logger   *zap.Logger
	}
)

// New builds a Runner.
func New(p Params) *Runner {
	return &Runner{
		baseline: p.Baseline,
		modified: p.Modified,
		excluded: p.Excluded,
		sink:     p.Sink,
		logger:   p.Logger,
	}
}

// Run compares all categories concurrently and returns one result per
// category, in canonical category order. Per-category failures are captured
// in the corresponding result, never propagated across categories.
func (r *Runner) Run(ctx context.Context) []report.CategoryResult {
	categories := schema.Categories()
	results := make([]report.CategoryResult, len(categories))

	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func(i int, category schema.Category) {
			defer wg.Done()
			results[i] = r.compare(ctx, category)
		}(i, category)
	}
	wg.Wait()

	return results
}

func (r *Runner) compare(ctx context.Context, category schema.Category) report.CategoryResult {
	r.logger.Info("starting comparison", zap.String("category", string(category)))

	var result report.CategoryResult
	switch category {
	case schema.CategoryTable:
		result = compareCategory(ctx, r, category, Provider.TableColumns, schema.NormalizeTables)
	case schema.CategoryProcedure:
		result = compareCategory(ctx, r, category, Provider.Procedures, schema.NormalizeProcedures)
	case schema.CategoryTrigger:
		result = compareCategory(ctx, r, category, Provider.Triggers, schema.NormalizeTriggers)
	case schema.CategoryFunction:
		result = compareCategory(ctx, r, category, Provider.Functions, schema.NormalizeFunctions)
	case schema.CategoryView:
		result = compareCategory(ctx, r, category, Provider.Views, schema.NormalizeViews)
	}

	if result.Err != nil {
		r.logger.Error("comparison failed",
			zap.String("category", string(category)),
			zap.Error(result.Err))
		return result
	}

	added, dropped, modified := result.Diff.Counts()
	r.logger.Info("comparison complete",
		zap.String("category", string(category)),
		zap.Int("new", added),
		zap.Int("dropped", dropped),
		zap.Int("modified", modified),
		zap.Int("skipped", len(result.Issues)))
	return result
}

// compareCategory runs one category end to end: both fetches concurrently,
// then normalize, diff and report once both have landed.
func compareCategory[T any](
	ctx context.Context,
	r *Runner,
	category schema.Category,
	fetch func(Provider, context.Context) ([]T, error),
	normalize func([]T, *schema.Exclusion) (schema.Collection, []schema.Issue),
) report.CategoryResult {
	var baselineRows, modifiedRows []T

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fetch(r.baseline, gctx)
		baselineRows = rows
		return errors.Wrap(err, r.baseline.Name())
	})
	g.Go(func() error {
		rows, err := fetch(r.modified, gctx)
		modifiedRows = rows
		return errors.Wrap(err, r.modified.Name())
	})
	if err := g.Wait(); err != nil {
		return report.CategoryResult{Category: category, Err: err}
	}

	baseline, baselineIssues := normalize(baselineRows, r.excluded)
	modified, modifiedIssues := normalize(modifiedRows, r.excluded)
	issues := append(baselineIssues, modifiedIssues...)

	diff, err := schemadiff.Diff(category, baseline, modified)
	if err != nil {
		return report.CategoryResult{Category: category, Issues: issues, Err: err}
	}

	if err := r.sink.WriteCategory(diff); err != nil {
		return report.CategoryResult{Category: category, Issues: issues, Err: err}
	}

	return report.CategoryResult{Category: category, Diff: diff, Issues: issues}
}
