package walker

// EventKind identifies the type of a traversal event.
type EventKind string

const (
	EventEnter      EventKind = "enter"      // a method node is entered and will be expanded
	EventCycle      EventKind = "cycle"      // a signature was reached again; expansion suppressed
	EventTerminal   EventKind = "terminal"   // a node could not be expanded (reason attached)
	EventTruncated  EventKind = "truncated"  // the depth cap was hit before expansion
	EventCreation   EventKind = "creation"   // an object-creation annotation
	EventDependency EventKind = "dependency" // an injected-dependency annotation
)

// EdgeKind classifies how a node was reached from its caller.
type EdgeKind string

const (
	EdgeDirectInvocation     EdgeKind = "direct"
	EdgeObjectCreation       EdgeKind = "creation"
	EdgeDependencyInvocation EdgeKind = "dependency"
)

// Terminal reasons attached to EventTerminal.
const (
	ReasonNoSource = "no source"
	ReasonNoScope  = "no scope"
	ReasonFault    = "fault"
)

// Event is one traversal event. The walker produces a flat stream of these;
// consumers (printer, graph recorder) never see walker internals.
type Event struct {
	Kind       EventKind
	Signature  string   // signature key (enter, cycle, terminal, truncated)
	Depth      int      // traversal depth of the event
	Edge       EdgeKind // how the node was reached (enter events, "" for the entry)
	Reason     string   // terminal reason
	TypeName   string   // constructed type name (creation events)
	MemberType string   // declared type of the dependency member (dependency events)
}

// Sink consumes traversal events as they are produced.
type Sink interface {
	Emit(Event)
}

// Recorder is a Sink that records the full event log, so formatters can be
// run over a finished traversal and tests can assert on exact sequences.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
