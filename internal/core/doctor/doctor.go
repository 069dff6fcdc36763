// Package doctor runs health checks against the local canvas-todo setup.
package doctor

import "context"

// Status represents the result status of a check item.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// CheckItem represents a single line item within a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	// Fixable marks problems that 'canvas-todo auth login' resolves.
	Fixable bool `json:"fixable,omitempty"`
}

func pass(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusPass, Detail: detail}
}

func warn(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusWarn, Detail: detail}
}

func fail(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusFail, Detail: detail}
}

// Result represents the outcome of a check containing multiple items.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

func (r *Result) add(item CheckItem) {
	r.Items = append(r.Items, item)
}

// Check defines the interface for a doctor check.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll executes checks in order. A cancelled context stops before the next
// check starts.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}
		results = append(results, check.Run(ctx))
	}
	return results
}

// Counts tallies check items by status.
type Counts struct {
	Passed  int `json:"passed"`
	Warned  int `json:"warned"`
	Failed  int `json:"failed"`
	Fixable int `json:"fixable"`
}

// Summarize counts items across all results. Fixable only counts items that
// are not passing.
func Summarize(results []Result) Counts {
	var c Counts
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				c.Passed++
				continue
			case StatusWarn:
				c.Warned++
			case StatusFail:
				c.Failed++
			}
			if item.Fixable {
				c.Fixable++
			}
		}
	}
	return c
}

// Report is the machine-readable form of a doctor run.
type Report struct {
	Healthy bool     `json:"healthy"`
	Summary Counts   `json:"summary"`
	Checks  []Result `json:"checks"`
}

// NewReport builds a Report. A run is healthy when nothing failed; warnings
// do not count against it.
func NewReport(results []Result) Report {
	counts := Summarize(results)
	return Report{
		Healthy: counts.Failed == 0,
		Summary: counts,
		Checks:  results,
	}
}
