package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/assetlint/pkg/types"
	"github.com/arthur-debert/assetlint/pkg/ui/output/styles"
)

// Console messages
const (
	MsgChecking   = "%s  Checking %s…"
	MsgAllValid   = "%s All asset packs are valid."
	MsgComplaints = "%s  %d asset packs contain complaints:"
	MsgComplaint  = "%s – %s"
)

// TextReporter writes human-readable lines. Headers and the success line
// go to out, issues and the complaint summary to errOut.
type TextReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewTextReporter creates a text reporter; color enables lipgloss styling
func NewTextReporter(out, errOut io.Writer, color bool) *TextReporter {
	return &TextReporter{
		out:    out,
		errOut: errOut,
		color:  color,
	}
}

func (r *TextReporter) paint(style, text string) string {
	if !r.color {
		return text
	}
	return styles.Render(style, text)
}

func (r *TextReporter) println(w io.Writer, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(w, line)
}

// CategoryStarted prints the category header
func (r *TextReporter) CategoryStarted(category types.Category, _ int) {
	line := fmt.Sprintf(MsgChecking, SymbolChecking, category.Name)
	r.println(r.out, r.paint("Header", line))
}

// Issue prints one line for the issue, prefixed by its kind's symbol
func (r *TextReporter) Issue(issue types.Issue) {
	line := fmt.Sprintf("%s  %s", IssueSymbol(issue.Kind), issue.Message)
	r.println(r.errOut, r.paint(issueStyle(issue.Kind), line))
}

// Summary prints the success line, or the count and list of complaints
func (r *TextReporter) Summary(complaints []types.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(complaints) == 0 {
		_, err := fmt.Fprintln(r.out, r.paint("Success", fmt.Sprintf(MsgAllValid, SymbolValid)))
		return err
	}

	if _, err := fmt.Fprintln(r.errOut); err != nil {
		return err
	}
	header := fmt.Sprintf(MsgComplaints, SymbolWarning, len(complaints))
	if _, err := fmt.Fprintln(r.errOut, r.paint("Warning", header)); err != nil {
		return err
	}
	for _, c := range complaints {
		line := fmt.Sprintf(MsgComplaint, c.Category, c.Pack)
		if r.color {
			line = styles.Render("Complaint", line)
		} else {
			line = "    " + line
		}
		if _, err := fmt.Fprintln(r.errOut, line); err != nil {
			return err
		}
	}
	return nil
}
