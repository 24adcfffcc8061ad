package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestJSONReport(t *testing.T) {
	rep := Report{
		Errors: []Summary{Summarize(errorMessage())},
		Count:  1,
	}
	var buf bytes.Buffer
	if err := JSON(&buf, rep); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if decoded.Count != 1 || len(decoded.Errors) != 1 {
		t.Fatalf("decoded = %+v, want 1 error", decoded)
	}
	got := decoded.Errors[0]
	if got.Message != "mismatched types" || got.Code != "E0308" {
		t.Errorf("error = %+v, want mismatched types / E0308", got)
	}
	if len(got.Spans) != 1 || got.Spans[0].File != "a.rs" || got.Spans[0].Line != 3 || got.Spans[0].Column != 5 {
		t.Errorf("spans = %+v, want a.rs:3:5", got.Spans)
	}
}

func TestJSONEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, Report{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte(`"errors": []`)) {
		t.Errorf("output = %q, want an empty errors array, not null", out)
	}
}

func TestMsgpackReport(t *testing.T) {
	rep := Report{
		Errors: []Summary{Summarize(errorMessage())},
		Count:  1,
	}
	var buf bytes.Buffer
	if err := Msgpack(&buf, rep); err != nil {
		t.Fatalf("Msgpack: %v", err)
	}

	var decoded Report
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if decoded.Count != 1 || len(decoded.Errors) != 1 {
		t.Fatalf("decoded = %+v, want 1 error", decoded)
	}
	if decoded.Errors[0].Spans[0].File != "a.rs" {
		t.Errorf("span file = %q, want a.rs", decoded.Errors[0].Spans[0].File)
	}
}
