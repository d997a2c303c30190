// Package render holds small output helpers shared by the listing
// commands.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Rule prints a dashed separator line of the given width.
func Rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}

// Bool renders a boolean as Y or N for table columns.
func Bool(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

// JSON pretty-prints a raw JSON document.
func JSON(w io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		// Not JSON after all; print it as-is.
		_, werr := w.Write(data)
		if werr != nil {
			return werr
		}
		fmt.Fprintln(w)
		return nil
	}
	fmt.Fprintln(w, buf.String())
	return nil
}
