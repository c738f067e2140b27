package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"db2compare/pkg/schema"
	"db2compare/pkg/schemadiff"
)

// CategoryResult is the outcome of one category's comparison. Exactly one of
// the three run states holds: succeeded with differences, succeeded with
// none, or failed with a reason. Issues lists objects skipped during
// normalization; they never silently disappear.
type CategoryResult struct {
	Category schema.Category
	Diff     *schemadiff.CategoryDiff
	Issues   []schema.Issue
	Err      error
}

// Failed reports whether the category's comparison could not complete.
func (r CategoryResult) Failed() bool { return r.Err != nil }

// WriteRunSummary renders the final per-category status table. No category is
// ever omitted: failed ones appear with their reason alongside the successful
// results.
func WriteRunSummary(w io.Writer, results []CategoryResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "New", "Dropped", "Modified", "Skipped", "Status"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range results {
		table.Append(summaryRow(r))
	}
	table.Render()

	for _, r := range results {
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "skipped: %s\n", issue)
		}
	}
}

func summaryRow(r CategoryResult) []string {
	if r.Failed() {
		return []string{
			string(r.Category), "-", "-", "-", strconv.Itoa(len(r.Issues)),
			color.RedString("failed: %v", r.Err),
		}
	}

	added, dropped, modified := r.Diff.Counts()
	status := color.GreenString("identical")
	if r.Diff.HasChanges() {
		status = color.YellowString("differences")
	}
	return []string{
		string(r.Category),
		strconv.Itoa(added),
		strconv.Itoa(dropped),
		strconv.Itoa(modified),
		strconv.Itoa(len(r.Issues)),
		status,
	}
}
