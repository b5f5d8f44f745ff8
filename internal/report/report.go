// Package report prints the user-facing progress of a scaffold run.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Step completion messages, in the order the runner emits them.
const (
	DirectoryCreated = "Directory created."
	ComponentBuilt   = "Component built and saved to disk."
	HelpersBuilt     = "Helpers file built and saved to disk."
	IndexBuilt       = "Index file built and saved to disk."
	TestBuilt        = "Test file built and saved to disk."
)

const rule = "========================================="

// Reporter writes progress to out and problems to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a reporter.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// Intro announces the component about to be created.
func (r *Reporter) Intro(name, dir, componentType string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "✨  Creating the %s component ✨\n", name)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Directory:  %s\n", dir)
	fmt.Fprintf(r.out, "Type:       %s\n", componentType)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
}

// Item reports a completed step.
func (r *Reporter) Item(msg string) {
	fmt.Fprintf(r.out, "✅ %s\n", msg)
}

// Conclusion reports that every step finished.
func (r *Reporter) Conclusion() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "🎉 Component built! 🚀")
	fmt.Fprintln(r.out, "Thanks for using new-component.")
	fmt.Fprintln(r.out)
}

// UsageError prints a remediation message for a problem the user can fix.
func (r *Reporter) UsageError(msg string) {
	fmt.Fprintln(r.errOut)
	fmt.Fprintln(r.errOut, rule)
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintf(r.errOut, "❌ %s\n", line)
	}
	fmt.Fprintln(r.errOut, rule)
	fmt.Fprintln(r.errOut)
}

// Failure prints the full error of an aborted scaffold. Files already written
// are left in place, and the message says so.
func (r *Reporter) Failure(err error) {
	fmt.Fprintln(r.errOut)
	fmt.Fprintf(r.errOut, "💥 Scaffolding failed: %v\n", err)
	fmt.Fprintln(r.errOut, "Files written before the failure were left on disk.")
}
