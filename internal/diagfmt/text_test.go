package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"canviewtools/internal/cargo"
)

func init() {
	// Keep expected output free of escape codes.
	color.NoColor = true
}

func errorMessage() *cargo.Message {
	return &cargo.Message{
		Level:   cargo.LevelError,
		Message: "mismatched types",
		Code:    &cargo.Code{Code: "E0308"},
		Spans: []cargo.Span{
			{FileName: "a.rs", LineStart: 3, ColumnStart: 5, Text: []cargo.TextLine{}},
		},
	}
}

func TestTextGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(errorMessage())); err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "Error: mismatched types\n" +
		"Code: E0308\n" +
		"File: a.rs:3:5\n" +
		"Text: []\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextNoCode(t *testing.T) {
	m := errorMessage()
	m.Code = nil
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(m)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(buf.String(), "Code: None\n") {
		t.Errorf("output = %q, want a Code: None line", buf.String())
	}
}

func TestTextEmptyCodeString(t *testing.T) {
	// rustc never emits {"code":{"code":""}}, but if it did the empty string
	// folds into the absent-code rendering.
	m := errorMessage()
	m.Code = &cargo.Code{Code: ""}
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(m)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(buf.String(), "Code: None\n") {
		t.Errorf("output = %q, want a Code: None line", buf.String())
	}
}

func TestTextSpanText(t *testing.T) {
	m := errorMessage()
	m.Spans[0].Text = []cargo.TextLine{
		{Text: `    let x: i32 = "hi";`, HighlightStart: 18, HighlightEnd: 22},
	}
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(m)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `Text: [{"text":"    let x: i32 = \"hi\";","highlight_start":18,"highlight_end":22}]`
	if !strings.Contains(buf.String(), want+"\n") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), want)
	}
}

func TestTextMultipleSpans(t *testing.T) {
	m := errorMessage()
	m.Spans = append(m.Spans, cargo.Span{FileName: "b.rs", LineStart: 10, ColumnStart: 1})
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(m)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "File: ") != 2 || strings.Count(out, "Text: ") != 2 {
		t.Errorf("output = %q, want one File/Text pair per span", out)
	}
	if !strings.Contains(out, "File: b.rs:10:1\n") {
		t.Errorf("output = %q, want second span location", out)
	}
}

func TestTextWarningLabel(t *testing.T) {
	m := errorMessage()
	m.Level = cargo.LevelWarning
	m.Message = "unused variable"
	var buf bytes.Buffer
	if err := Text(&buf, Summarize(m)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Warning: unused variable\n") {
		t.Errorf("output = %q, want a Warning label", buf.String())
	}
}
