// Package diagfmt renders cargo diagnostic summaries. The data model here is
// already flattened for output; filtering decisions (levels, limits) belong
// to the caller.
package diagfmt

import "canviewtools/internal/cargo"

// SpanSummary is one source location of a diagnostic.
type SpanSummary struct {
	File   string           `json:"file" msgpack:"file"`
	Line   uint32           `json:"line" msgpack:"line"`
	Column uint32           `json:"column" msgpack:"column"`
	Text   []cargo.TextLine `json:"text" msgpack:"text"`
}

// Summary is one diagnostic flattened for rendering. Code is empty when the
// compiler attached none.
type Summary struct {
	Level   string        `json:"level" msgpack:"level"`
	Message string        `json:"message" msgpack:"message"`
	Code    string        `json:"code,omitempty" msgpack:"code,omitempty"`
	Spans   []SpanSummary `json:"spans" msgpack:"spans"`
}

// Report is the root document for the machine formats.
type Report struct {
	Errors []Summary `json:"errors" msgpack:"errors"`
	Count  int       `json:"count" msgpack:"count"`
}

// Summarize flattens a compiler message for output.
func Summarize(m *cargo.Message) Summary {
	s := Summary{
		Level:   m.Level,
		Message: m.Message,
	}
	if m.Code != nil {
		s.Code = m.Code.Code
	}
	s.Spans = make([]SpanSummary, 0, len(m.Spans))
	for _, sp := range m.Spans {
		text := sp.Text
		if text == nil {
			text = []cargo.TextLine{}
		}
		s.Spans = append(s.Spans, SpanSummary{
			File:   sp.FileName,
			Line:   sp.LineStart,
			Column: sp.ColumnStart,
			Text:   text,
		})
	}
	return s
}
