// Package cargo models the newline-delimited JSON diagnostic stream written
// by cargo/rustc (`cargo check --message-format=json`) and provides a
// permissive scanner over it.
//
// The stream is produced by an external tool and interleaves unrelated
// record kinds, so the scanner is deliberately best-effort: a line that does
// not decode as JSON yields nothing and the scan moves on. Callers filter by
// reason and level themselves.
package cargo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineBytes bounds how much of a single stream line is buffered. Rendered
// rustc messages can get long, but a megabyte is far beyond anything cargo
// emits per line; anything larger is consumed and skipped like any other
// undecodable line.
const maxLineBytes = 1 << 20

// NewReader wraps r with a UTF-16 decoder. A BOM selects the byte order;
// without one little-endian is assumed, matching how the stream is captured
// on Windows.
func NewReader(r io.Reader) io.Reader {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	return transform.NewReader(r, dec)
}

// Scan reads r line by line and calls fn for every line that decodes as a
// Record. Undecodable lines are skipped without surfacing an error; that is
// the contract, not a gap. fn returns false to stop early.
func Scan(r io.Reader, fn func(Record) bool) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, readErr := readLine(br)
		if line != nil {
			var rec Record
			if err := json.Unmarshal(line, &rec); err == nil {
				if !fn(rec) {
					return nil
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read stream: %w", readErr)
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed to its end and reported as nil, so an oversized
// record skips like a malformed one instead of aborting the scan.
func readLine(br *bufio.Reader) ([]byte, error) {
	var line []byte
	tooLong := false
	for {
		frag, err := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, frag...)
			if len(line) > maxLineBytes {
				line = nil
				tooLong = true
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err == nil {
			// PowerShell captures carry \r\n terminators.
			line = bytes.TrimSuffix(line, []byte("\n"))
			line = bytes.TrimSuffix(line, []byte("\r"))
		}
		return line, err
	}
}
