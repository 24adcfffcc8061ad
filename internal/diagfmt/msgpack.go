package diagfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes the report in MessagePack for downstream tooling that does
// not want to re-parse the raw cargo stream.
func Msgpack(w io.Writer, rep Report) error {
	if rep.Errors == nil {
		rep.Errors = []Summary{}
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
