package icon

// Stage describes a generator phase.
type Stage string

const (
	// StageRender is circle rasterization for one output size.
	StageRender Stage = "render"
	// StageEncode is PNG encoding and the write to disk.
	StageEncode Stage = "encode"
	// StageBundle is multi-resolution ICO assembly.
	StageBundle Stage = "bundle"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the task is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the task is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the task is done.
	StatusDone Status = "done"
	// StatusError indicates the task encountered an error.
	StatusError Status = "error"
)

// Event reports progress for one output file (or for the whole run when Name
// is empty).
type Event struct {
	Name   string
	Stage  Stage
	Status Status
	Size   int
	Err    error
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events to a channel, for UI consumers.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent implements ProgressSink.
func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

// OnEvent implements ProgressSink.
func (f SinkFunc) OnEvent(ev Event) {
	if f != nil {
		f(ev)
	}
}
