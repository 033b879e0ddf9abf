package converters

import (
	"fmt"
	"io"

	"github.com/katalvlaran/primweight/prim_kruskal"
)

// FormatResult writes res as a single line: the weight, or "not connected".
func FormatResult(w io.Writer, res prim_kruskal.Result) error {
	if _, err := fmt.Fprintln(w, res.String()); err != nil {
		return fmt.Errorf("converters: writing result: %w", err)
	}

	return nil
}
