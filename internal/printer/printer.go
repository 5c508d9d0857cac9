// Package printer renders a traversal event stream as indented text.
// It is a pure consumer: the same printer runs live during a walk or over
// a recorded event log, which is how the tests exercise it.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mvp-joe/callscope/internal/walker"
)

// Markers used in rendered output.
const (
	nodeMarker       = "- "
	cycleMarker      = " (cycle)"
	truncationMarker = " (depth limit)"
)

// Printer renders traversal events as indented text, two spaces per depth.
// Terminal reasons attach to the line of the node they terminate, so the
// printer holds at most one pending line; Flush must be called after the
// last event.
type Printer struct {
	w       io.Writer
	pending string
	held    bool
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Emit implements walker.Sink.
func (p *Printer) Emit(e walker.Event) {
	indent := strings.Repeat("  ", e.Depth)

	switch e.Kind {
	case walker.EventEnter:
		p.flush()
		p.hold(indent + nodeMarker + e.Signature)
	case walker.EventCycle:
		p.flush()
		p.line(indent + nodeMarker + e.Signature + cycleMarker)
	case walker.EventTruncated:
		p.flush()
		p.line(indent + nodeMarker + e.Signature + truncationMarker)
	case walker.EventTerminal:
		// Attaches to the pending enter line for the same node.
		if p.held {
			p.pending += " (" + e.Reason + ")"
			p.flush()
		} else {
			p.line(indent + nodeMarker + e.Signature + " (" + e.Reason + ")")
		}
	case walker.EventCreation:
		p.flush()
		p.line(indent + "  [new " + e.TypeName + "]")
	case walker.EventDependency:
		p.flush()
		p.line(indent + "  [dep " + e.MemberType + "]")
	}
}

// Print renders a recorded event log.
func (p *Printer) Print(events []walker.Event) {
	for _, e := range events {
		p.Emit(e)
	}
	p.Flush()
}

// Flush writes any pending line. Call once after the final event.
func (p *Printer) Flush() {
	p.flush()
}

func (p *Printer) hold(line string) {
	p.pending = line
	p.held = true
}

func (p *Printer) flush() {
	if p.held {
		fmt.Fprintln(p.w, p.pending)
		p.held = false
		p.pending = ""
	}
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}
