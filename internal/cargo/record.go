package cargo

// Reason values seen in a cargo JSON stream. Only compiler messages are
// interesting here; other record kinds (artifacts, build-finished markers)
// interleave freely and are ignored.
const ReasonCompilerMessage = "compiler-message"

// Diagnostic levels emitted by rustc.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Record is one newline-delimited JSON object from the stream.
type Record struct {
	Reason  string   `json:"reason"`
	Message *Message `json:"message"`
}

// Message is the rustc diagnostic payload of a compiler-message record.
type Message struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Code    *Code  `json:"code"`
	Spans   []Span `json:"spans"`
}

// Code identifies the diagnostic, e.g. "E0308". rustc emits null for
// diagnostics without a code, hence the pointer on Message.
type Code struct {
	Code string `json:"code"`
}

// Span is a source location attached to a diagnostic.
type Span struct {
	FileName    string     `json:"file_name"`
	LineStart   uint32     `json:"line_start"`
	ColumnStart uint32     `json:"column_start"`
	Text        []TextLine `json:"text"`
}

// TextLine is one highlighted source line inside a span.
type TextLine struct {
	Text           string `json:"text"`
	HighlightStart int    `json:"highlight_start"`
	HighlightEnd   int    `json:"highlight_end"`
}

// IsCompilerMessage reports whether the record carries a diagnostic payload.
func (r Record) IsCompilerMessage() bool {
	return r.Reason == ReasonCompilerMessage && r.Message != nil
}
