package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/arthur-debert/assetlint/pkg/types"
)

// CategoryReport is a category's entry in the JSON report
type CategoryReport struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Packs int    `json:"packs"`
}

// Report is the document written by JSONReporter
type Report struct {
	OK         bool              `json:"ok"`
	Categories []CategoryReport  `json:"categories"`
	Issues     []types.Issue     `json:"issues"`
	Complaints []types.Complaint `json:"complaints"`
}

// JSONReporter collects events and writes them as one JSON document on Summary
type JSONReporter struct {
	mu     sync.Mutex
	out    io.Writer
	report Report
}

// NewJSONReporter creates a reporter that writes its document to out
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{
		out: out,
		report: Report{
			Categories: []CategoryReport{},
			Issues:     []types.Issue{},
			Complaints: []types.Complaint{},
		},
	}
}

// CategoryStarted records the category
func (r *JSONReporter) CategoryStarted(category types.Category, packs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Categories = append(r.report.Categories, CategoryReport{
		Name:  category.Name,
		Path:  category.Path,
		Packs: packs,
	})
}

// Issue records the issue
func (r *JSONReporter) Issue(issue types.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Issues = append(r.report.Issues, issue)
}

// Summary writes the report
func (r *JSONReporter) Summary(complaints []types.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if complaints != nil {
		r.report.Complaints = complaints
	}
	r.report.OK = len(complaints) == 0

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.report)
}
