package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"canviewtools/internal/cargo"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
)

// Text prints one summary in the classic block form:
//
//	Error: <message>
//	Code: <code or None>
//	File: <file>:<line>:<col>
//	Text: <span text array>
//
// with one File/Text pair per span. Color follows the global color mode.
func Text(w io.Writer, s Summary) error {
	label, style := "Error", errorLabel
	if s.Level == cargo.LevelWarning {
		label, style = "Warning", warningLabel
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n", style.Sprint(label), s.Message); err != nil {
		return err
	}
	code := s.Code
	if code == "" {
		code = "None"
	}
	if _, err := fmt.Fprintf(w, "Code: %s\n", code); err != nil {
		return err
	}
	for _, sp := range s.Spans {
		if _, err := fmt.Fprintf(w, "File: %s:%d:%d\n", sp.File, sp.Line, sp.Column); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Text: %s\n", textRepr(sp.Text)); err != nil {
			return err
		}
	}
	return nil
}

// textRepr renders a span's text array compactly for console output.
func textRepr(lines []cargo.TextLine) string {
	raw, err := json.Marshal(lines)
	if err != nil {
		return "[]"
	}
	return strings.TrimSpace(string(raw))
}
