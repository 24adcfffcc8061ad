package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes the report as an indented JSON document.
func JSON(w io.Writer, rep Report) error {
	if rep.Errors == nil {
		rep.Errors = []Summary{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
