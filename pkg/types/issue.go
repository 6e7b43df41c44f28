package types

import (
	"fmt"
)

// IssueKind categorizes a failing check
type IssueKind string

const (
	// IssueNaming flags a pack name that breaks the display-name convention
	IssueNaming IssueKind = "naming"
	// IssueMissingFile flags a required file absent from the pack
	IssueMissingFile IssueKind = "missing_file"
	// IssueMalformedMetadata flags a metadata file that cannot be parsed
	IssueMalformedMetadata IssueKind = "malformed_metadata"
	// IssueMissingField flags a required metadata field that is absent
	IssueMissingField IssueKind = "missing_field"
	// IssueInvalidURL flags a URL metadata field whose value is not a URL
	IssueInvalidURL IssueKind = "invalid_url"
)

// Issue is a single failing condition found in a pack.
//
//nolint:errname // an Issue is a finding, not a failure of the run
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Category string    `json:"category"`
	Pack     string    `json:"pack"`
	// Subject is the file or field the issue is about, empty for naming issues
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	// Err holds the underlying cause, e.g. the JSON syntax error
	Err error `json:"-"`
}

// Error implements the error interface for Issue
func (i Issue) Error() string {
	if i.Err != nil {
		return fmt.Sprintf("%s: %v", i.Message, i.Err)
	}
	return i.Message
}

// Complaint identifies a pack that failed at least one check
type Complaint struct {
	Category string `json:"category"`
	Pack     string `json:"pack"`
}

// String renders the complaint the way the summary lists it
func (c Complaint) String() string {
	return fmt.Sprintf("%s – %s", c.Category, c.Pack)
}

// PackResult collects the issues found in one pack
type PackResult struct {
	Pack   Pack
	Issues []Issue
}

// Add records an issue against the result's pack
func (r *PackResult) Add(kind IssueKind, subject, message string, err error) {
	r.Issues = append(r.Issues, Issue{
		Kind:     kind,
		Category: r.Pack.Category,
		Pack:     r.Pack.Name,
		Subject:  subject,
		Message:  message,
		Err:      err,
	})
}

// HasComplaints reports whether any check failed for the pack
func (r *PackResult) HasComplaints() bool {
	return len(r.Issues) > 0
}
